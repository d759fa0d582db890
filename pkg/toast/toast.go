package toast

import (
	"time"

	"github.com/vango-dev/notifier/pkg/notifier"
)

// Type represents the toast notification type.
type Type = notifier.Kind

const (
	TypeSuccess = notifier.KindSuccess
	TypeError   = notifier.KindError
	TypeWarning = notifier.KindWarning
	TypeInfo    = notifier.KindInfo
)

// Show displays a persistent toast with a message and no title.
func Show(n *notifier.Notifier, level Type, message string) (*notifier.Notification, error) {
	return n.Show(level, notifier.Settings{Message: message})
}

// Success shows a success toast.
//
//	toast.Success(n, "Changes saved!")
func Success(n *notifier.Notifier, message string) *notifier.Notification {
	return n.Success(notifier.Settings{Message: message})
}

// Error shows an error toast.
//
//	toast.Error(n, "Failed to delete item")
func Error(n *notifier.Notifier, message string) *notifier.Notification {
	return n.Error(notifier.Settings{Message: message})
}

// Warning shows a warning toast.
//
//	toast.Warning(n, "This action cannot be undone")
func Warning(n *notifier.Notifier, message string) *notifier.Notification {
	return n.Warning(notifier.Settings{Message: message})
}

// Info shows an info toast.
//
//	toast.Info(n, "New features available")
func Info(n *notifier.Notifier, message string) *notifier.Notification {
	return n.Info(notifier.Settings{Message: message})
}

// WithTitle shows a toast with a title and message.
func WithTitle(n *notifier.Notifier, level Type, title, message string) (*notifier.Notification, error) {
	return n.Show(level, notifier.Settings{Title: title, Message: message})
}

// Timed shows a toast that removes itself after d, with a duration bar.
func Timed(n *notifier.Notifier, level Type, message string, d time.Duration) (*notifier.Notification, error) {
	return n.Show(level, notifier.Settings{
		Message:         message,
		Duration:        d,
		ShowDurationBar: true,
	})
}
