package notifytest

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/notifier/pkg/dom"
	"github.com/vango-dev/notifier/pkg/notifier"
	"github.com/vango-dev/notifier/pkg/render"
	"github.com/vango-dev/notifier/pkg/style"
	"github.com/vango-dev/notifier/pkg/timer"
	"github.com/vango-dev/notifier/pkg/vdom"
)

// Harness bundles a notifier with the document and clock it runs on.
type Harness struct {
	Doc      *dom.Document
	Clock    *timer.Fake
	Notifier *notifier.Notifier
}

// New creates a harness with logging discarded. Options are applied after
// the default logger, so WithLogger overrides it.
func New(opts ...notifier.Option) *Harness {
	doc := dom.New()
	clock := timer.NewFake(time.Time{})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	opts = append([]notifier.Option{notifier.WithLogger(logger)}, opts...)
	return &Harness{
		Doc:      doc,
		Clock:    clock,
		Notifier: notifier.New(doc, clock, opts...),
	}
}

// Visible returns the attached notification elements in document order.
func (h *Harness) Visible() []*vdom.VNode {
	return h.Doc.FindByClass(style.BaseClass)
}

// Advance moves the clock forward, firing due timers.
func (h *Harness) Advance(d time.Duration) {
	h.Clock.Advance(d)
}

// Close clicks the close button of note. It reports whether the click
// reached an attached element.
func (h *Harness) Close(note *notifier.Notification) bool {
	return h.Doc.Click(note.CloseButton())
}

// ExpectCount asserts how many notifications are attached.
func (h *Harness) ExpectCount(t *testing.T, want int) {
	t.Helper()
	if got := len(h.Visible()); got != want {
		t.Errorf("expected %d notifications, got %d", want, got)
	}
}

// RenderToString renders a VNode and returns the HTML string, or an empty
// string if rendering fails.
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
func ExpectContains(t *testing.T, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t *testing.T, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
func ExpectAttribute(t *testing.T, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
