package style

import "strings"

// Decl is a single CSS declaration.
type Decl struct {
	Property string
	Value    string
}

// Rule is a selector with its declarations.
type Rule struct {
	Selector string
	Decls    []Decl
}

// Sheet is an ordered list of rules.
type Sheet []Rule

// CSS serializes the sheet as minified CSS.
func (s Sheet) CSS() string {
	var b strings.Builder
	for _, r := range s {
		b.WriteString(r.Selector)
		b.WriteByte('{')
		for i, d := range r.Decls {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString(d.Property)
			b.WriteByte(':')
			b.WriteString(d.Value)
		}
		b.WriteByte('}')
	}
	return b.String()
}

// Theme is the accent palette of one kind.
type Theme struct {
	// Accent colors the text, the left border and the duration bar.
	Accent string

	// Background fills the notification.
	Background string
}

// KindRules returns the rules styling the kind name with theme.
func KindRules(name string, theme Theme) Sheet {
	class := "." + KindClass(name)
	return Sheet{
		{Selector: class, Decls: []Decl{
			{"color", theme.Accent},
			{"border-left-color", theme.Accent},
			{"background-color", theme.Background},
		}},
		{Selector: class + " ." + BarClass, Decls: []Decl{
			{"background-color", theme.Accent},
		}},
	}
}

// DefaultThemes are the accents of the built-in kinds. Info uses the base
// palette.
var DefaultThemes = map[string]Theme{
	"error":   {Accent: "red", Background: "#f8d7da"},
	"warning": {Accent: "orange", Background: "#fff3cd"},
	"success": {Accent: "green", Background: "#d4edda"},
}

var themeOrder = []string{"error", "warning", "success"}

// DefaultSheet returns the default layout and palette.
func DefaultSheet() Sheet {
	base := "." + BaseClass
	sheet := Sheet{
		{Selector: base, Decls: []Decl{
			{"z-index", "9999"},
			{"position", "fixed"},
			{"display", "flex"},
			{"flex-direction", "column"},
			{"justify-content", "space-evenly"},
			{"min-width", "10rem"},
			{"min-height", "3rem"},
			{"max-width", "20rem"},
			{"padding", "5px 10px"},
			{"color", "#00f"},
			{"font-family", "'Roboto',sans-serif"},
			{"border-left", "4px solid #00f"},
			{"border-radius", "5px"},
			{"background-color", "#d8deec"},
			{"box-shadow", "0 0 10px #0000ff73"},
		}},
		{Selector: "." + CloseClass + ":hover", Decls: []Decl{{"color", "red"}}},
		{Selector: base + ">*", Decls: []Decl{{"padding", "5px 0"}}},
		{Selector: base + ">span", Decls: []Decl{
			{"font-size", "1.25rem"},
			{"font-weight", "700"},
		}},
		{Selector: base + ">p", Decls: []Decl{
			{"margin", "0"},
			{"overflow-wrap", "break-word"},
		}},
		{Selector: "." + CloseClass, Decls: []Decl{
			{"position", "absolute"},
			{"top", "3px"},
			{"right", "5px"},
			{"padding", "0"},
			{"color", "#000"},
			{"cursor", "pointer"},
		}},
		{Selector: "." + BarClass, Decls: []Decl{
			{"position", "absolute"},
			{"bottom", "0"},
			{"left", "0"},
			{"width", "0"},
			{"height", "1px"},
			{"margin", "0"},
			{"padding", "0"},
			{"background-color", "#00f"},
		}},
	}
	for _, name := range themeOrder {
		sheet = append(sheet, KindRules(name, DefaultThemes[name])...)
	}
	return sheet
}
