package notifier

import "time"

// Settings describes one notification request.
type Settings struct {
	// Title is shown in bold above the message.
	Title string

	// Message is the notification body.
	Message string

	// Duration removes the notification automatically after it elapses.
	// Zero or negative durations keep it until the user closes it.
	Duration time.Duration

	// ShowDurationBar adds a bar that grows with elapsed time. It has no
	// effect without a positive Duration.
	ShowDurationBar bool

	// OnBeforeShow runs synchronously before the notification is attached.
	OnBeforeShow func()

	// OnAfterRemove runs once, after the notification is detached.
	OnAfterRemove func()
}

func (s Settings) timed() bool { return s.Duration > 0 }
