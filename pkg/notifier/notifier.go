package notifier

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/notifier/pkg/dom"
	"github.com/vango-dev/notifier/pkg/style"
	"github.com/vango-dev/notifier/pkg/timer"
	"github.com/vango-dev/notifier/pkg/vdom"
)

// DefaultTickInterval is the duration bar refresh period.
const DefaultTickInterval = 15 * time.Millisecond

const tracerName = "github.com/vango-dev/notifier"

// Notifier shows notifications in a document.
//
// The zero value resolves positions (Placement) but cannot show
// notifications; use New.
type Notifier struct {
	position Position
	doc      *dom.Document
	sched    timer.Scheduler
	logger   *slog.Logger
	metrics  *Metrics
	tracer   trace.Tracer
	tick     time.Duration
	seq      uint64
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithPosition sets the initial anchor. Values outside 1-9 keep the default.
func WithPosition(p int) Option {
	return func(n *Notifier) {
		if Position(p).Valid() {
			n.position = Position(p)
		}
	}
}

// WithLogger sets the logger. If nil, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Notifier) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// WithMetrics enables metrics collection.
func WithMetrics(m *Metrics) Option {
	return func(n *Notifier) {
		n.metrics = m
	}
}

// WithTracer sets the tracer used for show spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(n *Notifier) {
		if tracer != nil {
			n.tracer = tracer
		}
	}
}

// WithTickInterval sets the duration bar refresh period.
func WithTickInterval(d time.Duration) Option {
	return func(n *Notifier) {
		if d > 0 {
			n.tick = d
		}
	}
}

// New creates a Notifier attaching to doc and scheduling on sched.
func New(doc *dom.Document, sched timer.Scheduler, opts ...Option) *Notifier {
	n := &Notifier{
		position: DefaultPosition,
		doc:      doc,
		sched:    sched,
		logger:   slog.Default(),
		tracer:   otel.Tracer(tracerName),
		tick:     DefaultTickInterval,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// SetPosition changes the anchor of later notifications. Values outside
// 1-9 are ignored.
func (n *Notifier) SetPosition(p int) {
	if Position(p).Valid() {
		n.position = Position(p)
	}
}

// Position returns the current anchor, resetting invalid state to
// DefaultPosition.
func (n *Notifier) Position() Position {
	if !n.position.Valid() {
		n.position = DefaultPosition
	}
	return n.position
}

// Placement resolves the current anchor. An invalid stored position is
// reset to DefaultPosition first.
func (n *Notifier) Placement() Placement {
	pl, _ := n.Position().Placement()
	return pl
}

// Error shows an error notification.
func (n *Notifier) Error(s Settings) *Notification { return n.show(KindError, s) }

// Warning shows a warning notification.
func (n *Notifier) Warning(s Settings) *Notification { return n.show(KindWarning, s) }

// Success shows a success notification.
func (n *Notifier) Success(s Settings) *Notification { return n.show(KindSuccess, s) }

// Info shows an info notification.
func (n *Notifier) Info(s Settings) *Notification { return n.show(KindInfo, s) }

// Custom shows a notification with a caller tag, styled by the class
// "notifier-<tag>". Invalid tags return ErrInvalidKind and show nothing.
func (n *Notifier) Custom(tag string, s Settings) (*Notification, error) {
	kind, err := ParseKind(tag)
	if err != nil {
		n.logger.Warn("notifier: rejected kind", "tag", tag, "error", err)
		return nil, err
	}
	return n.show(kind, s), nil
}

// Show shows a notification of an already validated kind.
func (n *Notifier) Show(kind Kind, s Settings) (*Notification, error) {
	return n.Custom(string(kind), s)
}

func (n *Notifier) show(kind Kind, s Settings) *Notification {
	_, span := n.tracer.Start(context.Background(), "notifier.show",
		trace.WithAttributes(
			attribute.String("notifier.kind", string(kind)),
			attribute.Int64("notifier.duration_ms", s.Duration.Milliseconds()),
			attribute.Bool("notifier.duration_bar", s.timed() && s.ShowDurationBar),
		))
	defer span.End()

	if s.OnBeforeShow != nil {
		s.OnBeforeShow()
	}

	// The callback may move the notifier; everything below uses one reading.
	pos := n.Position()
	pl, _ := pos.Placement()
	span.SetAttributes(attribute.Int("notifier.position", int(pos)))

	n.seq++
	note := &Notification{
		id:          "notifier-" + strconv.FormatUint(n.seq, 10),
		kind:        kind,
		owner:       n,
		afterRemove: s.OnAfterRemove,
	}
	note.build(pl, s)

	n.doc.Append(note.node)
	note.state = StateVisible
	n.metrics.recordShown(kind)

	if s.timed() {
		note.dismiss = n.sched.AfterFunc(s.Duration, func() {
			note.remove(ReasonExpired)
		})
		if s.ShowDurationBar {
			note.startProgress(s.Duration, n.tick)
		}
	}

	n.logger.Debug("notifier: shown",
		"id", note.id,
		"kind", string(kind),
		"position", pos.String(),
		"duration", s.Duration)

	return note
}

// build creates the notification element; close wiring is done here so the
// handler always refers to this notification.
func (note *Notification) build(pl Placement, s Settings) {
	role, live := "status", "polite"
	if note.kind == KindError {
		role, live = "alert", "assertive"
	}

	note.closeBtn = vdom.Span(
		vdom.Class(style.CloseClass),
		vdom.Role("button"),
		vdom.AriaLabel("Close"),
		vdom.OnClick(func() { note.remove(ReasonClosed) }),
		"✕",
	)

	if s.timed() && s.ShowDurationBar {
		note.bar = vdom.Div(vdom.Class(style.BarClass), vdom.StyleAttr(widthCSS(0)))
	}

	note.node = vdom.Div(
		vdom.Class(style.BaseClass, note.kind.Class()),
		vdom.ID(note.id),
		vdom.Role(role),
		vdom.AriaLive(live),
		vdom.StyleAttr(pl.CSS()),
		note.closeBtn,
		vdom.Span(vdom.Text(s.Title)),
		vdom.P(vdom.Text(s.Message)),
		note.bar,
	)
}

func widthCSS(pct float64) string {
	return "width: " + strconv.FormatFloat(pct, 'f', -1, 64) + "%;"
}
