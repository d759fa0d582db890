package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "validation error",
			code:    "N001",
			wantMsg: "Invalid notification kind",
			wantCat: CategoryValidation,
		},
		{
			name:    "config error",
			code:    "N012",
			wantMsg: "Invalid config value",
			wantCat: CategoryConfig,
		},
		{
			name:    "runtime error",
			code:    "N030",
			wantMsg: "Event loop stopped",
			wantCat: CategoryRuntime,
		},
		{
			name:    "unknown error code",
			code:    "N999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "flag %q is required", "--kind")
	if err.Message != `flag "--kind" is required` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Code != "" {
		t.Errorf("Code = %q, want empty", err.Code)
	}
	if err.Category != CategoryCLI {
		t.Errorf("Category = %q, want %q", err.Category, CategoryCLI)
	}
}

func TestErrorString(t *testing.T) {
	if got := New("N001").Error(); got != "N001: Invalid notification kind" {
		t.Errorf("Error() = %q", got)
	}
	if got := New("N001").WithDetail("bad tag").Error(); got != "N001: Invalid notification kind: bad tag" {
		t.Errorf("Error() with detail = %q", got)
	}
	if got := Newf(CategoryRuntime, "boom").Error(); got != "boom" {
		t.Errorf("Error() without code = %q", got)
	}
}

func TestIsMatchesByCode(t *testing.T) {
	sentinel := New("N001")
	err := fmt.Errorf("show: %w", New("N001").WithDetail("x y"))

	if !stderrors.Is(err, sentinel) {
		t.Error("expected errors.Is to match by code")
	}
	if stderrors.Is(err, New("N002")) {
		t.Error("expected different codes not to match")
	}

	a := Newf(CategoryRuntime, "a")
	b := Newf(CategoryRuntime, "a")
	if stderrors.Is(a, b) {
		t.Error("uncoded errors should only match themselves")
	}
	if !stderrors.Is(a, a) {
		t.Error("uncoded error should match itself")
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := New("N011").Wrap(cause)

	if !stderrors.Is(err, cause) {
		t.Error("expected wrapped cause to be reachable")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap() did not return the cause")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "N020") != nil {
		t.Error("FromError(nil) should be nil")
	}

	existing := New("N001")
	if got := FromError(existing, "N020"); got != existing {
		t.Error("FromError should return NotifyErrors unchanged")
	}

	plain := stderrors.New("short write")
	got := FromError(plain, "N020")
	if got.Code != "N020" || got.Wrapped != plain {
		t.Errorf("FromError = %+v", got)
	}
}

func TestLookup(t *testing.T) {
	tmpl, ok := Lookup("N030")
	if !ok {
		t.Fatal("expected N030 to be registered")
	}
	if tmpl.Detail == "" {
		t.Error("expected N030 detail")
	}
	if _, ok := Lookup("N999"); ok {
		t.Error("N999 should not be registered")
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("N001").
		WithDetail(`"a b" is not a valid class suffix`).
		WithSuggestion("Use letters, digits, '-' and '_' only").
		Wrap(stderrors.New("space at offset 1"))

	out := err.Format()
	for _, want := range []string{
		"ERROR N001: Invalid notification kind",
		`"a b" is not a valid class suffix`,
		"Caused by: space at offset 1",
		"Hint: Use letters",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("Format() should not contain ANSI codes when colors are disabled")
	}
}

func TestFormatCompact(t *testing.T) {
	got := New("N012").WithDetail("tickMs must not be negative").FormatCompact()
	want := "N012 [config]: Invalid config value - tickMs must not be negative"
	if got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestFprint(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var buf bytes.Buffer
	Fprint(&buf, New("N040"))
	if !strings.Contains(buf.String(), "N040") {
		t.Errorf("Fprint() = %q", buf.String())
	}

	buf.Reset()
	Fprint(&buf, stderrors.New("plain"))
	if !strings.Contains(buf.String(), "ERROR: plain") {
		t.Errorf("Fprint() plain = %q", buf.String())
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five", 9)
	want := []string{"one two", "three", "four five"}
	if len(lines) != len(want) {
		t.Fatalf("wrapText() = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if wrapText("", 10) != nil {
		t.Error("wrapText(\"\") should be nil")
	}
}
