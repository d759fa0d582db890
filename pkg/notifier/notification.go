package notifier

import (
	"time"

	"github.com/vango-dev/notifier/pkg/timer"
	"github.com/vango-dev/notifier/pkg/vdom"
)

// State is a notification's lifecycle state.
type State uint8

const (
	StateCreated State = iota
	StateVisible
	StateRemoved
)

// String returns the string representation of the State.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateVisible:
		return "visible"
	case StateRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// RemoveReason records what removed a notification.
type RemoveReason uint8

const (
	ReasonNone RemoveReason = iota
	ReasonClosed
	ReasonExpired
)

// String returns the string representation of the RemoveReason.
func (r RemoveReason) String() string {
	switch r {
	case ReasonClosed:
		return "closed"
	case ReasonExpired:
		return "expired"
	default:
		return "none"
	}
}

// Notification is a read-only handle to one shown notification. The
// document owns the element; the handle only reports on it.
type Notification struct {
	id    string
	kind  Kind
	owner *Notifier

	node     *vdom.VNode
	closeBtn *vdom.VNode
	bar      *vdom.VNode

	dismiss  timer.Timer
	progress timer.Timer
	width    float64

	afterRemove func()
	state       State
	reason      RemoveReason
}

// ID returns the element id.
func (note *Notification) ID() string { return note.id }

// Kind returns the notification kind.
func (note *Notification) Kind() Kind { return note.kind }

// Node returns the notification element.
func (note *Notification) Node() *vdom.VNode { return note.node }

// CloseButton returns the close affordance element.
func (note *Notification) CloseButton() *vdom.VNode { return note.closeBtn }

// Bar returns the duration bar element, or nil if none was requested.
func (note *Notification) Bar() *vdom.VNode { return note.bar }

// State returns the lifecycle state.
func (note *Notification) State() State { return note.state }

// Reason returns what removed the notification, or ReasonNone.
func (note *Notification) Reason() RemoveReason { return note.reason }

// Progress returns the last duration bar width in percent.
func (note *Notification) Progress() float64 { return note.width }

// startProgress grows the bar every tick until elapsed reaches d. The last
// width may overshoot 100% by up to one tick.
func (note *Notification) startProgress(d, tick time.Duration) {
	sched := note.owner.sched
	start := sched.Now()
	note.progress = sched.Every(tick, func() {
		if note.state != StateVisible {
			return
		}
		elapsed := sched.Now().Sub(start)
		note.width = float64(elapsed) * 100 / float64(d)
		note.owner.doc.SetStyle(note.bar, widthCSS(note.width))
		if elapsed >= d {
			note.progress.Stop()
		}
	})
}

// remove performs the single Visible → Removed transition. Later calls,
// from either path, are no-ops.
func (note *Notification) remove(reason RemoveReason) {
	if note.state != StateVisible {
		return
	}
	note.state = StateRemoved
	note.reason = reason

	if note.dismiss != nil {
		note.dismiss.Stop()
	}
	if note.progress != nil {
		note.progress.Stop()
	}

	n := note.owner
	n.doc.Remove(note.node)
	n.metrics.recordRemoved(note.kind, reason)
	n.logger.Debug("notifier: removed", "id", note.id, "kind", string(note.kind), "reason", reason.String())

	if note.afterRemove != nil {
		note.afterRemove()
	}
}
