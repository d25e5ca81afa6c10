// Package lexer scans source text into a stream of tokens.
//
// A Lexer is created by calling New() with the input string. Tokens are then
// pulled one at a time with Next(), which returns an EOF token once the input
// is exhausted. Tokenize() is a shorthand that drains the stream into a slice.
package lexer

import (
	"unicode"

	"github.com/deepnoodle-ai/lisp2c/errz"
	"github.com/deepnoodle-ai/lisp2c/token"
)

// LexError indicates the scanner rejected the input. Char holds the offending
// character when the error was triggered by one.
type LexError struct {
	errz.StructuredError
	Char rune
}

func newLexError(ch rune, format string, args ...any) *LexError {
	return &LexError{
		StructuredError: errz.New(errz.ErrLex, format, args...),
		Char:            ch,
	}
}

// Lexer scans an input string and produces tokens on demand.
type Lexer struct {
	input []rune
	pos   int
}

// New returns a Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: []rune(input)}
}

// Next returns the next token from the input. After the input is exhausted it
// returns an EOF token on every call. Scanning aborts on the first
// unrecognized character or unterminated string, returning a *LexError.
func (l *Lexer) Next() (token.Token, error) {
	for l.pos < len(l.input) && unicode.IsSpace(l.input[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return token.Token{Type: token.EOF}, nil
	}
	ch := l.input[l.pos]
	switch {
	case ch == '(':
		l.pos++
		return token.Token{Type: token.LPAREN, Literal: "("}, nil
	case ch == ')':
		l.pos++
		return token.Token{Type: token.RPAREN, Literal: ")"}, nil
	case isDigit(ch):
		return l.readNumber(), nil
	case ch == '"':
		return l.readString()
	case isLetter(ch):
		return l.readName(), nil
	}
	return token.Token{}, newLexError(ch, "unrecognized character %q", ch)
}

// readNumber consumes a maximal run of ASCII digits. Signs, decimals, and
// exponents are not part of the grammar.
func (l *Lexer) readNumber() token.Token {
	start := l.pos
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	return token.Token{Type: token.NUMBER, Literal: string(l.input[start:l.pos])}
}

// readName consumes a maximal run of ASCII letters.
func (l *Lexer) readName() token.Token {
	start := l.pos
	for l.pos < len(l.input) && isLetter(l.input[l.pos]) {
		l.pos++
	}
	return token.Token{Type: token.NAME, Literal: string(l.input[start:l.pos])}
}

// readString consumes a double-quoted string literal. The contents are taken
// verbatim, with no escape processing, up to the next double quote.
func (l *Lexer) readString() (token.Token, error) {
	l.pos++ // opening quote
	start := l.pos
	for l.pos < len(l.input) && l.input[l.pos] != '"' {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return token.Token{}, newLexError('"', "unterminated string literal")
	}
	lit := string(l.input[start:l.pos])
	l.pos++ // closing quote
	return token.Token{Type: token.STRING, Literal: lit}, nil
}

// Tokenize scans the entire input and returns the token sequence, not
// including the trailing EOF token.
func Tokenize(input string) ([]token.Token, error) {
	l := New(input)
	var tokens []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
