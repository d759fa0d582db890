package style

import (
	"strings"
	"sync"

	"github.com/vango-dev/notifier/internal/errors"
	"github.com/vango-dev/notifier/pkg/dom"
	"github.com/vango-dev/notifier/pkg/vdom"
)

var (
	defaultCSS     string
	defaultCSSOnce sync.Once
)

// DefaultCSS returns the serialized default sheet, built once per process.
func DefaultCSS() string {
	defaultCSSOnce.Do(func() {
		defaultCSS = DefaultSheet().CSS()
	})
	return defaultCSS
}

// Register appends the default style sheet to doc's head unless it is
// already there. It reports whether the sheet was added by this call.
func Register(doc *dom.Document) bool {
	if doc.FindByID(SheetID) != nil {
		return false
	}
	doc.AppendHead(vdom.Style(vdom.ID(SheetID), vdom.Raw(DefaultCSS())))
	return true
}

// KindSheetID returns the id of the style element registered for a kind.
func KindSheetID(name string) string {
	return SheetID + "-" + name
}

// RegisterKind appends accent rules for a custom kind to doc's head, once
// per kind. It reports whether rules were added by this call.
func RegisterKind(doc *dom.Document, name string, theme Theme) (bool, error) {
	if !ValidClassSuffix(name) {
		return false, errors.New("N001").
			WithDetail(`"` + name + `" is not a valid class suffix`).
			WithSuggestion("Start with a letter or '_' and use only letters, digits, '-' and '_'")
	}
	if err := theme.Validate(); err != nil {
		return false, err
	}
	id := KindSheetID(name)
	if doc.FindByID(id) != nil {
		return false, nil
	}
	doc.AppendHead(vdom.Style(vdom.ID(id), vdom.Raw(KindRules(name, theme).CSS())))
	return true, nil
}

// Validate rejects theme values that are empty or could end a declaration
// or the enclosing style element.
func (t Theme) Validate() error {
	for _, f := range [...]struct{ field, v string }{
		{"accent", t.Accent},
		{"background", t.Background},
	} {
		field, v := f.field, f.v
		if strings.TrimSpace(v) == "" {
			return errors.New("N002").WithDetail(field + " color is empty")
		}
		if strings.ContainsAny(v, ";{}<>\\") {
			return errors.New("N002").
				WithDetail(field + ` color "` + v + `" contains a reserved character`).
				WithSuggestion("Use a plain CSS color such as #7b2ff7 or rebeccapurple")
		}
	}
	return nil
}
