// Package vdom provides the in-memory element tree notifications are built from.
//
// A VNode is an element, a text node, a fragment, or raw markup. Element
// props hold both attributes and event handlers; handlers live under "on"
// prefixed keys ("onclick") and are never rendered as attributes.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("notifier-notification", "notifier-info"),
//	    Span(Class("notifier-close"), OnClick(close), "✕"),
//	    Span(Text(title)),
//	    P(Text(message)),
//	)
//
// # Queries
//
// FindByClass, FindByID and Walk search a subtree depth-first, in document
// order. HasClass and Classes read the class attribute.
package vdom
