// Package calcerr defines the error taxonomy shared by the expression engines,
// the limit preprocessor and the quadrature methods.
//
// Every failure surfaced by this module is either one of the Kind sentinels or
// an *Error that unwraps to one, so callers can branch with errors.Is:
//
//	if errors.Is(err, calcerr.ErrEval) {
//	    // domain problem, e.g. division by zero
//	}
package calcerr

import (
	"errors"
	"fmt"
)

// Kind sentinels. An *Error always unwraps to exactly one of these.
var (
	ErrLex        = errors.New("lex error")
	ErrParse      = errors.New("parse error")
	ErrEval       = errors.New("eval error")
	ErrValidation = errors.New("validation error")
)

// NoPosition marks errors that are not tied to a location in the source text.
const NoPosition = -1

// Error is a classified failure with an optional byte offset into the
// expression source.
type Error struct {
	Kind     error
	Position int
	Message  string
	Err      error
}

// New creates a classified error. kind must be one of the package sentinels.
func New(kind error, position int, message string) *Error {
	return &Error{
		Kind:     kind,
		Position: position,
		Message:  message,
	}
}

// Newf is New with a format string.
func Newf(kind error, position int, format string, args ...any) *Error {
	return New(kind, position, fmt.Sprintf(format, args...))
}

// Lex, Parse, Eval and Validation are shorthands for New with the matching kind.
func Lex(position int, message string) *Error   { return New(ErrLex, position, message) }
func Parse(position int, message string) *Error { return New(ErrParse, position, message) }
func Eval(message string) *Error                { return New(ErrEval, NoPosition, message) }
func Validation(message string) *Error          { return New(ErrValidation, NoPosition, message) }

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s at position %d: %s", e.Kind, e.Position, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes both the kind sentinel and the wrapped cause.
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// WithCause attaches an underlying error.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}

// KindOf returns the kind sentinel carried by err, or nil when err is not
// classified. When classified errors are nested, the outermost one wins, so a
// validation error caused by a parse error reports ErrValidation.
func KindOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	for _, kind := range []error{ErrLex, ErrParse, ErrEval, ErrValidation} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
