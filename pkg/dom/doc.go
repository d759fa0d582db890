// Package dom provides the host document notifications are attached to.
//
// A Document owns a head and a body element tree built from vdom nodes.
// It offers the small set of capabilities a notification needs from its
// host: attaching and detaching nodes, updating inline styles, dispatching
// clicks to attached nodes, and observing mutations. A Document is what a
// headless test harness uses in place of a browser page, and it renders
// to a complete HTML page for previews.
//
// Documents are not safe for concurrent use. Drive them from a single
// goroutine, such as a timer.Loop.
package dom
