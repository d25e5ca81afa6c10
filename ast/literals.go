package ast

// NumberLiteral is an expression node that holds a numeric literal. The text
// is preserved verbatim; the scanner admits only ASCII digit runs.
type NumberLiteral struct {
	Value string
}

func (x *NumberLiteral) exprNode() {}

func (x *NumberLiteral) String() string { return x.Value }

// StringLiteral is an expression node that holds a string literal with the
// quote delimiters stripped.
type StringLiteral struct {
	Value string
}

func (x *StringLiteral) exprNode() {}

func (x *StringLiteral) String() string { return `"` + x.Value + `"` }
