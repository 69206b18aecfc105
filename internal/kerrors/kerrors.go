// Package kerrors defines the error kinds the evaluator, dictionary,
// and lexer can raise, and formats them the way a host expects to see
// them: a single line prefixed "Error: ".
package kerrors

import (
	"errors"
	"fmt"
)

// Kind identifies one of the error categories named in the language
// specification. Hosts may switch on Kind without parsing Error().
type Kind string

const (
	StackUnderflow   Kind = "StackUnderflow"
	RegisterEmpty    Kind = "RegisterEmpty"
	RegisterOccupied Kind = "RegisterOccupied"
	TypeError        Kind = "TypeError"
	LengthMismatch   Kind = "LengthMismatch"
	EmptyVector      Kind = "EmptyVector"
	IndexOutOfRange  Kind = "IndexOutOfRange"
	DivisionByZero   Kind = "DivisionByZero"
	NumericOverflow  Kind = "NumericOverflow"
	UnknownWord      Kind = "UnknownWord"
	IsBuiltin        Kind = "IsBuiltin"
	Protected        Kind = "Protected"
	ParseError       Kind = "ParseError"
)

// Error is the concrete error type every rstack subsystem returns.
// It carries no source position: spec.md's Non-goals explicitly
// exclude diagnostics beyond a short message, unlike the teacher's
// richer *errors.CompilerError (which attaches line/column and a
// source snippet).
type Error struct {
	Kind    Kind
	Message string
}

// New creates an Error of the given Kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface, producing the "Error: ..."
// single-line form spec.md §7 requires of every reported failure.
func (e *Error) Error() string {
	return "Error: " + e.Message
}

// Is allows errors.Is(err, &kerrors.Error{Kind: kerrors.StackUnderflow})
// style checks by
// comparing Kind, since *Error values carry per-call messages and are
// never singleton sentinels.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// KindOf reports the Kind of err if it is (or wraps) an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Kind, true
}
