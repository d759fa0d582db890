// Package render serializes VNode trees to HTML.
//
// All text content and attribute values are escaped. Event handlers are
// never written as attributes; elements carrying one get a
// data-on-<event>="true" marker instead so the markup shows where a handler
// is bound. KindRaw nodes are written verbatim and should only hold trusted
// markup such as generated style sheets.
//
// # Basic Usage
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(node)
//
// # Full Page Rendering
//
//	err := r.RenderPage(w, render.PageData{
//	    Title: "Notifications",
//	    Head:  []*vdom.VNode{styleNode},
//	    Body:  body,
//	})
package render
