package render

import (
	"io"

	"github.com/vango-dev/notifier/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Title is the page title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Head holds extra head children (style sheets, meta tags).
	Head []*vdom.VNode

	// Body is the page body. Its tag should be "body"; any other node is
	// wrapped in one.
	Body *vdom.VNode
}

// RenderPage writes a complete HTML5 document.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	head := vdom.Head(
		vdom.Meta(vdom.Charset("utf-8")),
		vdom.Meta(vdom.NameAttr("viewport"), vdom.Content("width=device-width, initial-scale=1")),
		vdom.If(page.Title != "", vdom.Title(page.Title)),
		page.Head,
	)

	body := page.Body
	if body == nil || body.Kind != vdom.KindElement || body.Tag != "body" {
		body = vdom.Body(body)
	}

	if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
		return err
	}
	if r.config.Pretty {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return r.RenderToWriter(w, vdom.Html(vdom.Lang(lang), head, body))
}
