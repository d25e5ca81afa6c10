package parser

import (
	"fmt"

	"github.com/deepnoodle-ai/lisp2c/errz"
	"github.com/deepnoodle-ai/lisp2c/token"
)

// ParseError describes a structural error found in the token stream. Token
// holds the offending token when the error was triggered by one.
type ParseError struct {
	errz.StructuredError
	Token token.Token
	File  string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s", e.File, e.StructuredError.Error())
	}
	return e.StructuredError.Error()
}

func (p *Parser) tokenError(tok token.Token, format string, args ...any) *ParseError {
	return &ParseError{
		StructuredError: errz.New(errz.ErrParse, format, args...),
		Token:           tok,
		File:            p.filename,
	}
}
