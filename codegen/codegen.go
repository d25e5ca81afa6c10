// Package codegen renders a target tree into C-style call syntax.
package codegen

import (
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/lisp2c/cast"
	"github.com/deepnoodle-ai/lisp2c/errz"
)

// CodeGenError indicates the generator met a node whose kind is outside the
// target tree's closed set. Trees built by the compiler never trigger this;
// it guards against foreign Node implementations.
type CodeGenError struct {
	errz.StructuredError
	NodeKind string
}

func newCodeGenError(node cast.Node) *CodeGenError {
	kind := fmt.Sprintf("%T", node)
	return &CodeGenError{
		StructuredError: errz.New(errz.ErrCodeGen, "unknown node kind %s", kind),
		NodeKind:        kind,
	}
}

// Generate renders the given node and everything below it. Statements are
// joined with newlines, arguments with ", ", and literal values are emitted
// verbatim (strings re-quoted, without escape processing).
func Generate(node cast.Node) (string, error) {
	switch n := node.(type) {
	case *cast.Program:
		var b strings.Builder
		for i, stmt := range n.Body {
			if i > 0 {
				b.WriteString("\n")
			}
			out, err := Generate(stmt)
			if err != nil {
				return "", err
			}
			b.WriteString(out)
		}
		return b.String(), nil
	case *cast.ExpressionStatement:
		out, err := Generate(n.Expression)
		if err != nil {
			return "", err
		}
		return out + ";", nil
	case *cast.CallExpression:
		callee, err := Generate(n.Callee)
		if err != nil {
			return "", err
		}
		args := make([]string, 0, len(n.Arguments))
		for _, arg := range n.Arguments {
			out, err := Generate(arg)
			if err != nil {
				return "", err
			}
			args = append(args, out)
		}
		return callee + "(" + strings.Join(args, ", ") + ")", nil
	case *cast.Identifier:
		return n.Name, nil
	case *cast.NumberLiteral:
		return n.Value, nil
	case *cast.StringLiteral:
		return `"` + n.Value + `"`, nil
	default:
		return "", newCodeGenError(node)
	}
}
