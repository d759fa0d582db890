// Package errors provides coded, structured errors for the notifier module.
//
// Every error carries a short code (e.g., "N001") that maps to a registered
// template holding a category, a one-line message and a longer detail.
// Call sites add context with the fluent With* methods:
//
//	err := errors.New("N001").
//	    WithDetail(`"promo chips" is not a valid class suffix`).
//	    WithSuggestion("Use letters, digits, '-' and '_' only")
//
// # Error Categories
//
//   - validation: caller-supplied values that cannot be used (kind tags, themes)
//   - config: notifier.json loading and validation
//   - render: HTML serialization failures
//   - runtime: event loop and scheduling failures
//   - cli: command-line usage errors
//
// # Matching
//
// Errors compare by code, so a sentinel built with New matches any error
// created from the same code:
//
//	var ErrInvalidKind = errors.New("N001")
//
//	if stderrors.Is(err, ErrInvalidKind) { ... }
//
// # Terminal Output
//
// Format renders a colored multi-line report for the CLI; FormatCompact
// renders a single line suitable for logs.
package errors
