package notifier

import (
	"fmt"

	"github.com/vango-dev/notifier/internal/errors"
	"github.com/vango-dev/notifier/pkg/style"
)

// Kind classifies a notification for styling.
type Kind string

const (
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
)

// ErrInvalidKind is returned for tags that are not CSS class safe.
// Match it with errors.Is.
var ErrInvalidKind = errors.New("N001")

// ParseKind validates a caller-supplied tag.
func ParseKind(tag string) (Kind, error) {
	if !style.ValidClassSuffix(tag) {
		return "", errors.New("N001").
			WithDetail(fmt.Sprintf("%q is not a valid class suffix", tag)).
			WithSuggestion("Start with a letter or '_' and use only letters, digits, '-' and '_'")
	}
	return Kind(tag), nil
}

// Builtin reports whether k is one of the four built-in kinds.
func (k Kind) Builtin() bool {
	switch k {
	case KindError, KindWarning, KindSuccess, KindInfo:
		return true
	}
	return false
}

// Class returns the kind's style class, e.g. "notifier-error".
func (k Kind) Class() string {
	return style.KindClass(string(k))
}

// metricLabel keeps custom tags out of metric label values.
func (k Kind) metricLabel() string {
	if k.Builtin() {
		return string(k)
	}
	return "custom"
}
