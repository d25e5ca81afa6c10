// Package cast defines the C-style abstract syntax tree that the transformer
// produces and the code generator renders.
package cast

import "strings"

// Node represents a portion of the target syntax tree.
type Node interface {
	// String returns a human friendly representation of the Node. This should
	// be similar to the generated code, but not necessarily identical.
	String() string
}

// Stmt represents a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression node.
type Expr interface {
	Node
	exprNode()
}

// Program is the root node of a target tree. Body holds one statement per
// top-level call of the source program, in order.
type Program struct {
	Body []Stmt
}

func (p *Program) String() string {
	stmts := make([]string, 0, len(p.Body))
	for _, s := range p.Body {
		stmts = append(stmts, s.String())
	}
	return strings.Join(stmts, "\n")
}

// ExpressionStatement is a statement node wrapping a top-level expression.
type ExpressionStatement struct {
	Expression Expr
}

func (s *ExpressionStatement) stmtNode() {}

func (s *ExpressionStatement) String() string { return s.Expression.String() + ";" }

// CallExpression is an expression node representing a call in the target
// syntax. Unlike the source tree, the callee is a separate Identifier node.
type CallExpression struct {
	Callee    *Identifier
	Arguments []Expr
}

func (x *CallExpression) exprNode() {}

func (x *CallExpression) String() string {
	args := make([]string, 0, len(x.Arguments))
	for _, a := range x.Arguments {
		args = append(args, a.String())
	}
	return x.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

// Identifier is an expression node holding a bare name.
type Identifier struct {
	Name string
}

func (x *Identifier) exprNode() {}

func (x *Identifier) String() string { return x.Name }

// NumberLiteral is an expression node holding a numeric literal carried over
// verbatim from the source tree.
type NumberLiteral struct {
	Value string
}

func (x *NumberLiteral) exprNode() {}

func (x *NumberLiteral) String() string { return x.Value }

// StringLiteral is an expression node holding a string literal carried over
// verbatim from the source tree.
type StringLiteral struct {
	Value string
}

func (x *StringLiteral) exprNode() {}

func (x *StringLiteral) String() string { return `"` + x.Value + `"` }
