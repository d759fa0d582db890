// Package style holds the notification class names and the default style sheet.
//
// The sheet is registered into a document explicitly, once per document:
//
//	doc := dom.New()
//	style.Register(doc)
//
// Register builds the CSS text once per process and appends a single
// <style id="notifier-styles"> element to the document head; later calls
// are no-ops. Custom kinds get their accent colors through RegisterKind:
//
//	err := style.RegisterKind(doc, "promo", style.Theme{
//	    Accent:     "#7b2ff7",
//	    Background: "#efe5ff",
//	})
package style
