package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryValidation Category = "validation"
	CategoryConfig     Category = "config"
	CategoryRender     Category = "render"
	CategoryRuntime    Category = "runtime"
	CategoryCLI        Category = "cli"
)

// NotifyError is a structured error with a code, detail and fix suggestion.
type NotifyError struct {
	// Code is a unique error identifier (e.g., "N001").
	Code string

	// Category is the error type (validation, config, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *NotifyError) Error() string {
	msg := e.Message
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, msg)
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *NotifyError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a NotifyError with the same code.
// Errors without a code only match themselves.
func (e *NotifyError) Is(target error) bool {
	t, ok := target.(*NotifyError)
	if !ok {
		return false
	}
	if e.Code == "" || t.Code == "" {
		return e == t
	}
	return e.Code == t.Code
}

// WithDetail adds a detailed explanation to the error.
func (e *NotifyError) WithDetail(d string) *NotifyError {
	e.Detail = d
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *NotifyError) WithSuggestion(s string) *NotifyError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *NotifyError) Wrap(err error) *NotifyError {
	e.Wrapped = err
	return e
}

// New creates a NotifyError from a registered error code.
func New(code string) *NotifyError {
	template, ok := registry[code]
	if !ok {
		return &NotifyError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &NotifyError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new NotifyError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *NotifyError {
	return &NotifyError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a NotifyError.
// Errors that already are NotifyErrors are returned unchanged.
func FromError(err error, code string) *NotifyError {
	if err == nil {
		return nil
	}
	if ne, ok := err.(*NotifyError); ok {
		return ne
	}
	return New(code).Wrap(err)
}
