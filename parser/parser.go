// Package parser is used to generate the abstract syntax tree (AST) for a program.
//
// A parser is created by calling New() with a lexer as input. The parser should
// then be used only once, by calling parser.Parse() to produce the AST.
package parser

import (
	"context"

	"github.com/deepnoodle-ai/lisp2c/ast"
	"github.com/deepnoodle-ai/lisp2c/lexer"
	"github.com/deepnoodle-ai/lisp2c/token"
)

// Parse the provided input as source code and return the AST. This is a
// shorthand way to create a Lexer and Parser and then call Parse on that.
func Parse(ctx context.Context, input string, options ...Option) (*ast.Program, error) {
	return New(lexer.New(input), options...).Parse(ctx)
}

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithFilename sets the file name used in error messages.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// WithMaxDepth sets the maximum nesting depth for the parser.
// This prevents stack overflow on deeply nested input.
// The default is 500.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// DefaultMaxDepth is the default maximum nesting depth for parsing.
const DefaultMaxDepth = 500

// Parser object
type Parser struct {
	// the Context supplied in the Parse() call
	ctx context.Context

	// l is our lexer
	l *lexer.Lexer

	// curToken holds the current token from the lexer.
	curToken token.Token

	// peekToken holds the next token from the lexer.
	peekToken token.Token

	// err holds the first error encountered, after which parsing is broken.
	err error

	// The filename of the input
	filename string

	// Current recursion depth
	depth int

	// Maximum allowed recursion depth
	maxDepth int
}

// New returns a Parser for the program provided by the given Lexer.
func New(l *lexer.Lexer, options ...Option) *Parser {
	p := &Parser{
		l:        l,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range options {
		opt(p)
	}
	// Prime the token pump
	p.nextToken() // makes curToken=<empty>, peekToken=token[0]
	p.nextToken() // makes curToken=token[0], peekToken=token[1]
	return p
}

// nextToken moves to the next token from the lexer. A lexer error marks the
// parser as broken; the error surfaces from Parse.
func (p *Parser) nextToken() error {
	var err error
	p.curToken = p.peekToken
	p.peekToken, err = p.l.Next()
	if err != nil && p.err == nil {
		p.err = err
	}
	return err
}

// Parse the program that is provided via the lexer. Parsing stops at the
// first error; there is no recovery and no partial result.
func (p *Parser) Parse(ctx context.Context) (*ast.Program, error) {
	p.ctx = ctx
	// It's possible for an error to already exist because we read tokens from
	// the lexer in the constructor.
	if p.err != nil {
		return nil, p.err
	}
	// An empty token stream yields a program with an empty body.
	program := &ast.Program{}
	for !p.curTokenIs(token.EOF) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		program.Body = append(program.Body, expr)
		if err := p.nextToken(); err != nil {
			return nil, err
		}
	}
	return program, nil
}

// parseExpression parses the expression beginning at curToken and leaves
// curToken on the expression's final token.
func (p *Parser) parseExpression() (ast.Expr, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		return nil, p.tokenError(p.curToken, "maximum nesting depth exceeded")
	}
	switch p.curToken.Type {
	case token.NUMBER:
		return &ast.NumberLiteral{Value: p.curToken.Literal}, nil
	case token.STRING:
		return &ast.StringLiteral{Value: p.curToken.Literal}, nil
	case token.LPAREN:
		return p.parseCall()
	case token.EOF:
		return nil, p.tokenError(p.curToken, "unexpected end of input")
	default:
		return nil, p.tokenError(p.curToken, "unexpected token %q", p.curToken.Literal)
	}
}

// parseCall parses a parenthesized call. curToken is the opening paren on
// entry and the closing paren on exit.
func (p *Parser) parseCall() (ast.Expr, error) {
	if !p.peekTokenIs(token.NAME) {
		if p.peekTokenIs(token.EOF) {
			return nil, p.tokenError(p.peekToken, "unexpected end of input (expected callee name)")
		}
		return nil, p.tokenError(p.peekToken, "expected callee name (got %q)", p.peekToken.Literal)
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	call := &ast.CallExpression{Name: p.curToken.Literal}
	for !p.peekTokenIs(token.RPAREN) {
		if p.peekTokenIs(token.EOF) {
			return nil, p.tokenError(p.peekToken, "unexpected end of input in call to %q", call.Name)
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		param, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		call.Params = append(call.Params, param)
	}
	// Consume the closing paren
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	return call, nil
}

// curTokenIs returns true if the current token has the given type.
func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

// peekTokenIs returns true if the next token has the given type.
func (p *Parser) peekTokenIs(t token.Type) bool {
	return p.peekToken.Type == t
}
