package style

import "regexp"

const (
	// Prefix is prepended to a kind name to form its class.
	Prefix = "notifier-"

	// BaseClass is carried by every notification.
	BaseClass = Prefix + "notification"

	// CloseClass marks the close affordance.
	CloseClass = Prefix + "close"

	// BarClass marks the duration bar.
	BarClass = "duration-bar"

	// SheetID is the id of the default style element.
	SheetID = Prefix + "styles"

	// MaxSuffixLen bounds a kind name.
	MaxSuffixLen = 64
)

var classSuffix = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// ValidClassSuffix reports whether name can follow Prefix in a class
// attribute and a CSS selector without escaping.
func ValidClassSuffix(name string) bool {
	return len(name) <= MaxSuffixLen && classSuffix.MatchString(name)
}

// KindClass returns the class for a kind name, e.g. "notifier-error".
func KindClass(name string) string {
	return Prefix + name
}
