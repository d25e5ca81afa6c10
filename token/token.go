// Package token defines the lexical tokens used when scanning source code.
package token

// Type describes the type of a token as a string.
type Type string

// Token represents one token lexed from the input source code.
type Token struct {
	Type    Type
	Literal string
}

// Token types
const (
	LPAREN = "("
	RPAREN = ")"
	NUMBER = "NUMBER"
	STRING = "STRING"
	NAME   = "NAME"
	EOF    = "EOF"
)
