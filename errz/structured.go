// Package errz defines the error kinds shared by all compilation stages.
package errz

import (
	"errors"
	"fmt"
)

// ErrorKind represents the category of a compilation error.
type ErrorKind int

const (
	// ErrLex indicates the scanner rejected a character or literal.
	ErrLex ErrorKind = iota
	// ErrParse indicates a structural error in the token stream.
	ErrParse
	// ErrTraversal indicates the tree walker met a node kind it does not
	// recognize. This is an internal-invariant violation.
	ErrTraversal
	// ErrCodeGen indicates the code generator met a node kind it does not
	// recognize. This is an internal-invariant violation.
	ErrCodeGen
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrLex:
		return "lex error"
	case ErrParse:
		return "parse error"
	case ErrTraversal:
		return "traversal error"
	case ErrCodeGen:
		return "codegen error"
	default:
		return "error"
	}
}

// StructuredError carries an error kind alongside its message so that callers
// can report what failed without further context.
type StructuredError struct {
	Message string
	Kind    ErrorKind
	Cause   error
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind.String(), e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// ErrorKind returns the kind of the error. Stage error types embed
// StructuredError, so this also serves as their Kinder implementation.
func (e *StructuredError) ErrorKind() ErrorKind {
	return e.Kind
}

// New creates a StructuredError of the given kind.
func New(kind ErrorKind, format string, args ...any) StructuredError {
	return StructuredError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Kinder is implemented by errors that carry an ErrorKind.
type Kinder interface {
	ErrorKind() ErrorKind
}

// KindOf returns the kind of err and true if err (or an error it wraps)
// carries one.
func KindOf(err error) (ErrorKind, bool) {
	var k Kinder
	if errors.As(err, &k) {
		return k.ErrorKind(), true
	}
	return 0, false
}
