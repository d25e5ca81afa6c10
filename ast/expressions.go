package ast

import "strings"

// CallExpression is an expression node representing a parenthesized call.
// Name is the callee identifier and is never empty in a well-formed tree.
// Params holds the argument expressions in textual order and may be empty.
type CallExpression struct {
	Name   string
	Params []Expr
}

func (x *CallExpression) exprNode() {}

func (x *CallExpression) String() string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(x.Name)
	for _, p := range x.Params {
		b.WriteString(" ")
		b.WriteString(p.String())
	}
	b.WriteString(")")
	return b.String()
}
