package notifier

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/notifier/pkg/dom"
	"github.com/vango-dev/notifier/pkg/style"
	"github.com/vango-dev/notifier/pkg/timer"
	"github.com/vango-dev/notifier/pkg/vdom"
)

type harness struct {
	doc   *dom.Document
	clock *timer.Fake
	n     *Notifier
}

func newHarness(opts ...Option) *harness {
	doc := dom.New()
	clock := timer.NewFake(time.Time{})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	opts = append([]Option{WithLogger(logger)}, opts...)
	return &harness{doc: doc, clock: clock, n: New(doc, clock, opts...)}
}

func (h *harness) notifications() []*vdom.VNode {
	return h.doc.FindByClass(style.BaseClass)
}

func TestErrorPersistsUntilClosed(t *testing.T) {
	h := newHarness()

	note := h.n.Error(Settings{Title: "T", Message: "M"})

	nodes := h.notifications()
	if len(nodes) != 1 {
		t.Fatalf("found %d notifications, want 1", len(nodes))
	}
	node := nodes[0]
	if node != note.Node() {
		t.Error("handle should point at the attached node")
	}
	if !node.HasClass("notifier-error") {
		t.Errorf("classes = %v, want notifier-error", node.Classes())
	}
	text := node.TextContent()
	if !strings.Contains(text, "T") || !strings.Contains(text, "M") {
		t.Errorf("TextContent() = %q", text)
	}
	if note.Bar() != nil {
		t.Error("no bar was requested")
	}

	h.clock.Advance(24 * time.Hour)
	if !h.doc.Contains(node) {
		t.Fatal("persistent notification was removed")
	}
	if h.clock.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", h.clock.Pending())
	}
	if note.State() != StateVisible {
		t.Errorf("State() = %v, want visible", note.State())
	}
}

func TestNodeStructure(t *testing.T) {
	h := newHarness(WithPosition(2))

	note := h.n.Info(Settings{Title: "Title", Message: "Body"})
	node := note.Node()

	if got := node.GetAttr("style"); got != "top: 1rem; left: 50%; transform: translateX(-50%);" {
		t.Errorf("inline style = %q", got)
	}
	if node.GetAttr("id") != note.ID() || note.ID() == "" {
		t.Errorf("id = %q, handle id = %q", node.GetAttr("id"), note.ID())
	}
	if len(node.Children) != 3 {
		t.Fatalf("children = %d, want close, title, message", len(node.Children))
	}
	if node.Children[0] != note.CloseButton() || !note.CloseButton().HasClass(style.CloseClass) {
		t.Error("first child should be the close affordance")
	}
	if node.Children[1].Tag != "span" || node.Children[1].TextContent() != "Title" {
		t.Error("second child should be the title span")
	}
	if node.Children[2].Tag != "p" || node.Children[2].TextContent() != "Body" {
		t.Error("third child should be the message paragraph")
	}
	if node.GetAttr("role") != "status" {
		t.Errorf("role = %q, want status", node.GetAttr("role"))
	}
}

func TestMissingTextRendersEmpty(t *testing.T) {
	h := newHarness()
	note := h.n.Warning(Settings{})

	html, err := h.doc.RenderBody(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "<span></span><p></p>") {
		t.Errorf("expected empty title and message, got %s", html)
	}
	if note.Node().TextContent() != "✕" {
		t.Errorf("TextContent() = %q", note.Node().TextContent())
	}
}

func TestTextIsEscaped(t *testing.T) {
	h := newHarness()
	h.n.Info(Settings{Title: "<img src=x onerror=alert(1)>", Message: "a & b"})

	html, err := h.doc.RenderBody(nil)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(html, "<img") {
		t.Errorf("title was rendered as markup: %s", html)
	}
	if !strings.Contains(html, "&lt;img src=x onerror=alert(1)&gt;") || !strings.Contains(html, "a &amp; b") {
		t.Errorf("expected escaped text, got %s", html)
	}
}

func TestAutoDismiss(t *testing.T) {
	kinds := map[string]func(*Notifier, Settings) *Notification{
		"error":   (*Notifier).Error,
		"warning": (*Notifier).Warning,
		"success": (*Notifier).Success,
		"info":    (*Notifier).Info,
	}

	for name, show := range kinds {
		t.Run(name, func(t *testing.T) {
			h := newHarness()
			calls := 0
			var node *vdom.VNode
			note := show(h.n, Settings{
				Message:  "bye",
				Duration: 100 * time.Millisecond,
				OnAfterRemove: func() {
					calls++
					if h.doc.Contains(node) {
						t.Error("OnAfterRemove ran before detachment")
					}
				},
			})
			node = note.Node()

			h.clock.Advance(99 * time.Millisecond)
			if !h.doc.Contains(node) || calls != 0 {
				t.Fatal("removed before the duration elapsed")
			}

			h.clock.Advance(time.Millisecond)
			if h.doc.Contains(node) {
				t.Fatal("not removed at 100ms")
			}
			if calls != 1 {
				t.Errorf("OnAfterRemove calls = %d, want 1", calls)
			}
			if note.State() != StateRemoved || note.Reason() != ReasonExpired {
				t.Errorf("state = %v, reason = %v", note.State(), note.Reason())
			}

			h.clock.Advance(time.Second)
			if calls != 1 {
				t.Errorf("OnAfterRemove calls = %d after idle, want 1", calls)
			}
		})
	}
}

func TestNonPositiveDurationPersists(t *testing.T) {
	h := newHarness()
	note := h.n.Success(Settings{Duration: -5 * time.Second, ShowDurationBar: true})

	h.clock.Advance(time.Hour)
	if note.State() != StateVisible {
		t.Error("negative duration should mean no auto-dismiss")
	}
	if note.Bar() != nil {
		t.Error("bar requires a positive duration")
	}
}

func TestCloseBeforeExpiry(t *testing.T) {
	h := newHarness()
	calls := 0
	note := h.n.Info(Settings{
		Duration:        100 * time.Millisecond,
		ShowDurationBar: true,
		OnAfterRemove:   func() { calls++ },
	})

	h.clock.Advance(50 * time.Millisecond)
	if !h.doc.Click(note.CloseButton()) {
		t.Fatal("close click was not dispatched")
	}
	if h.doc.Contains(note.Node()) {
		t.Fatal("close did not remove the notification")
	}
	if calls != 1 {
		t.Fatalf("OnAfterRemove calls = %d, want 1", calls)
	}
	if h.clock.Pending() != 0 {
		t.Errorf("close should cancel timers, Pending() = %d", h.clock.Pending())
	}
	if note.Reason() != ReasonClosed {
		t.Errorf("Reason() = %v, want closed", note.Reason())
	}

	h.clock.Advance(time.Second)
	if calls != 1 {
		t.Errorf("OnAfterRemove calls = %d after original deadline, want 1", calls)
	}
	if h.doc.Click(note.CloseButton()) {
		t.Error("detached close button should not receive clicks")
	}
}

func TestRepeatedRemovalIsNoop(t *testing.T) {
	h := newHarness()
	calls := 0
	note := h.n.Warning(Settings{OnAfterRemove: func() { calls++ }})

	note.remove(ReasonClosed)
	note.remove(ReasonExpired)
	note.remove(ReasonClosed)

	if calls != 1 {
		t.Errorf("OnAfterRemove calls = %d, want 1", calls)
	}
	if note.Reason() != ReasonClosed {
		t.Errorf("first reason should win, got %v", note.Reason())
	}
}

func TestDurationBarGrows(t *testing.T) {
	h := newHarness()
	note := h.n.Success(Settings{Duration: 100 * time.Millisecond, ShowDurationBar: true})
	bar := note.Bar()
	if bar == nil {
		t.Fatal("expected a duration bar")
	}
	if got := bar.GetAttr("style"); got != "width: 0%;" {
		t.Errorf("initial bar style = %q", got)
	}

	var widths []float64
	h.doc.Observe(func(m dom.Mutation) {
		if m.Type == dom.MutationUpdate && m.Node == bar {
			widths = append(widths, note.Progress())
		}
	})

	h.clock.Advance(150 * time.Millisecond)

	want := []float64{15, 30, 45, 60, 75, 90}
	if len(widths) != len(want) {
		t.Fatalf("widths = %v, want %v", widths, want)
	}
	for i := range want {
		if widths[i] != want[i] {
			t.Errorf("width[%d] = %v, want %v", i, widths[i], want[i])
		}
		if i > 0 && widths[i] < widths[i-1] {
			t.Errorf("width decreased at tick %d: %v", i, widths)
		}
	}
	if got := bar.GetAttr("style"); got != "width: 90%;" {
		t.Errorf("final bar style = %q", got)
	}
	if h.clock.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", h.clock.Pending())
	}
}

func TestDurationBarStopsAtDuration(t *testing.T) {
	h := newHarness(WithTickInterval(50 * time.Millisecond))
	note := h.n.Info(Settings{Duration: 100 * time.Millisecond, ShowDurationBar: true})

	h.clock.Advance(99 * time.Millisecond)
	if got := note.Progress(); got != 50 {
		t.Errorf("Progress() = %v, want 50", got)
	}
	// the dismiss timer was scheduled first, so it wins any tie
	h.clock.Advance(time.Millisecond)
	if note.State() != StateRemoved {
		t.Fatal("expected removal at the deadline")
	}
	h.clock.Advance(time.Second)
	if got := note.Progress(); got != 50 {
		t.Errorf("bar moved after removal: %v", got)
	}
}

func TestCustomKind(t *testing.T) {
	h := newHarness()

	note, err := h.n.Custom("promo", Settings{Title: "Sale"})
	if err != nil {
		t.Fatalf("Custom() error = %v", err)
	}
	node := note.Node()
	if !node.HasClass("notifier-promo") || !node.HasClass(style.BaseClass) {
		t.Errorf("classes = %v", node.Classes())
	}
	for _, builtin := range []string{"notifier-error", "notifier-warning", "notifier-success", "notifier-info"} {
		if node.HasClass(builtin) {
			t.Errorf("custom kind should not carry %s", builtin)
		}
	}
	if note.Kind() != "promo" {
		t.Errorf("Kind() = %q", note.Kind())
	}
}

func TestCustomRejectsInvalidTag(t *testing.T) {
	h := newHarness()
	before := false

	note, err := h.n.Custom(`x" onclick="evil`, Settings{OnBeforeShow: func() { before = true }})
	if !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("err = %v, want ErrInvalidKind", err)
	}
	if note != nil {
		t.Error("no notification should be returned")
	}
	if before {
		t.Error("OnBeforeShow must not run for rejected tags")
	}
	if len(h.notifications()) != 0 {
		t.Error("nothing should be attached")
	}

	if _, err := h.n.Show(Kind("bad kind"), Settings{}); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("Show() with unvalidated kind: err = %v", err)
	}
	if note, err := h.n.Show(KindSuccess, Settings{}); err != nil || !note.Node().HasClass("notifier-success") {
		t.Errorf("Show(KindSuccess) = %v, %v", note, err)
	}
}

func TestOnBeforeShowRunsFirst(t *testing.T) {
	h := newHarness()
	var attachedDuringCallback int
	h.n.Info(Settings{OnBeforeShow: func() {
		attachedDuringCallback = len(h.notifications())
	}})

	if attachedDuringCallback != 0 {
		t.Error("OnBeforeShow must run before attachment")
	}
	if len(h.notifications()) != 1 {
		t.Error("notification should be attached afterwards")
	}
}

func TestNotificationsStackWithoutOffset(t *testing.T) {
	h := newHarness(WithPosition(1))

	first := h.n.Info(Settings{Message: "one"})
	h.n.SetPosition(9)
	second := h.n.Error(Settings{Message: "two"})

	nodes := h.notifications()
	if len(nodes) != 2 || nodes[0] != first.Node() || nodes[1] != second.Node() {
		t.Fatal("later notifications should be appended after earlier ones")
	}
	if first.Node().GetAttr("style") != "top: 1rem; left: 1rem;" {
		t.Error("position change must not move existing notifications")
	}
	if second.Node().GetAttr("style") != "bottom: 1rem; right: 1rem;" {
		t.Error("new position should apply to later notifications")
	}
	if first.ID() == second.ID() {
		t.Error("ids should be unique")
	}
	if second.Node().GetAttr("role") != "alert" {
		t.Error("error notifications use the alert role")
	}
}

func TestStateStrings(t *testing.T) {
	if StateCreated.String() != "created" || StateVisible.String() != "visible" ||
		StateRemoved.String() != "removed" || State(9).String() != "unknown" {
		t.Error("unexpected State strings")
	}
	if ReasonNone.String() != "none" || ReasonClosed.String() != "closed" || ReasonExpired.String() != "expired" {
		t.Error("unexpected RemoveReason strings")
	}
}

type recordingSpan struct {
	noop.Span
	attrs map[attribute.Key]attribute.Value
}

func (s *recordingSpan) SetAttributes(kv ...attribute.KeyValue) {
	for _, a := range kv {
		s.attrs[a.Key] = a.Value
	}
}

type recordingTracer struct {
	noop.Tracer
	spans []string
	last  *recordingSpan
}

func (r *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	r.spans = append(r.spans, name)
	r.last = &recordingSpan{attrs: make(map[attribute.Key]attribute.Value)}
	cfg := trace.NewSpanStartConfig(opts...)
	r.last.SetAttributes(cfg.Attributes()...)
	return ctx, r.last
}

func TestShowIsTraced(t *testing.T) {
	tracer := &recordingTracer{}
	h := newHarness(WithTracer(tracer))

	h.n.Info(Settings{})
	if _, err := h.n.Custom("promo", Settings{}); err != nil {
		t.Fatal(err)
	}

	if len(tracer.spans) != 2 || tracer.spans[0] != "notifier.show" {
		t.Errorf("spans = %v", tracer.spans)
	}
}

func TestPositionChangedBeforeShow(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tracer := &recordingTracer{}
	h := newHarness(WithPosition(1), WithTracer(tracer), WithLogger(logger))

	note := h.n.Info(Settings{
		Message:      "moved",
		OnBeforeShow: func() { h.n.SetPosition(9) },
	})

	if got := note.Node().GetAttr("style"); got != "bottom: 1rem; right: 1rem;" {
		t.Errorf("style = %q, want bottom-right placement", got)
	}
	if got := tracer.last.attrs["notifier.position"].AsInt64(); got != 9 {
		t.Errorf("span position = %d, want 9", got)
	}
	if !strings.Contains(logs.String(), "position=bottom-right") {
		t.Errorf("shown log should report the final position, got:\n%s", logs.String())
	}
}
