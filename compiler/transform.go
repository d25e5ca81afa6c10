package compiler

import "github.com/deepnoodle-ai/lisp2c/cast"

// Transformer modifies a target tree before code generation.
// Transformers receive ownership of the tree and return a (possibly new) tree.
type Transformer interface {
	// Transform processes the tree and returns the result.
	// The returned tree may be the same instance (modified in place)
	// or a completely new tree.
	Transform(program *cast.Program) (*cast.Program, error)
}

// TransformerFunc is an adapter to use a function as a Transformer.
type TransformerFunc func(*cast.Program) (*cast.Program, error)

// Transform implements the Transformer interface.
func (f TransformerFunc) Transform(p *cast.Program) (*cast.Program, error) {
	return f(p)
}
