// Package ast defines the abstract syntax tree for parenthesized-call source
// programs, along with generic traversal over that tree.
package ast

import "strings"

// Node represents a portion of the syntax tree.
type Node interface {
	// String returns a human friendly representation of the Node. This should
	// be similar to the original source code, but not necessarily identical.
	String() string
}

// Expr represents an expression node. Every node in a source program below
// the root is an expression.
type Expr interface {
	Node
	exprNode()
}

// Program is the root node of a parsed source file. Body holds the top-level
// call expressions in textual order.
type Program struct {
	Body []Expr
}

func (p *Program) String() string {
	exprs := make([]string, 0, len(p.Body))
	for _, e := range p.Body {
		exprs = append(exprs, e.String())
	}
	return strings.Join(exprs, "\n")
}
