// Package lisp2c compiles programs in a small parenthesized-call language
// into equivalent C-style call syntax.
//
// The pipeline has four stages, each exposed by its own package so callers
// can inspect intermediate results: lexer (text to tokens), parser (tokens to
// source tree), compiler (source tree to target tree), and codegen (target
// tree to text). Compile composes all four.
package lisp2c

import (
	"context"

	"github.com/deepnoodle-ai/lisp2c/codegen"
	"github.com/deepnoodle-ai/lisp2c/compiler"
	"github.com/deepnoodle-ai/lisp2c/parser"
)

// Option configures a compilation.
type Option func(*options)

type options struct {
	filename     string
	maxDepth     int
	transformers []compiler.Transformer
}

func collectOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) parserOpts() []parser.Option {
	var opts []parser.Option
	if o.filename != "" {
		opts = append(opts, parser.WithFilename(o.filename))
	}
	if o.maxDepth > 0 {
		opts = append(opts, parser.WithMaxDepth(o.maxDepth))
	}
	return opts
}

// WithFilename sets the filename for the source code being compiled.
// This is used in error messages.
func WithFilename(filename string) Option {
	return func(o *options) {
		o.filename = filename
	}
}

// WithMaxDepth sets the maximum call nesting depth accepted by the parser.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithTransformer registers a transformer that rewrites the target tree
// before code generation. This option is additive: transformers run in the
// order they were supplied.
func WithTransformer(t compiler.Transformer) Option {
	return func(o *options) {
		o.transformers = append(o.transformers, t)
	}
}

// Compile translates the input program and returns the generated code. The
// first error from any stage aborts the compilation; there is no partial
// output. An empty input compiles to an empty string.
func Compile(ctx context.Context, input string, opts ...Option) (string, error) {
	o := collectOptions(opts...)
	program, err := parser.Parse(ctx, input, o.parserOpts()...)
	if err != nil {
		return "", err
	}
	target, err := compiler.Transform(program)
	if err != nil {
		return "", err
	}
	for _, t := range o.transformers {
		if target, err = t.Transform(target); err != nil {
			return "", err
		}
	}
	return codegen.Generate(target)
}
