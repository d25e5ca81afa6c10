package codegen

import (
	"errors"
	"testing"

	"github.com/deepnoodle-ai/lisp2c/cast"
	"github.com/deepnoodle-ai/lisp2c/errz"
	"github.com/stretchr/testify/require"
)

func call(name string, args ...cast.Expr) *cast.CallExpression {
	return &cast.CallExpression{
		Callee:    &cast.Identifier{Name: name},
		Arguments: args,
	}
}

func TestGenerateCall(t *testing.T) {
	out, err := Generate(call("add",
		&cast.NumberLiteral{Value: "2"},
		&cast.NumberLiteral{Value: "2"},
	))
	require.Nil(t, err)
	require.Equal(t, "add(2, 2)", out)
}

func TestGenerateNestedCall(t *testing.T) {
	out, err := Generate(call("add",
		&cast.NumberLiteral{Value: "2"},
		call("subtract",
			&cast.NumberLiteral{Value: "4"},
			&cast.NumberLiteral{Value: "2"},
		),
	))
	require.Nil(t, err)
	require.Equal(t, "add(2, subtract(4, 2))", out)
}

func TestGenerateNoArgs(t *testing.T) {
	out, err := Generate(call("noop"))
	require.Nil(t, err)
	require.Equal(t, "noop()", out)
}

func TestGenerateStatement(t *testing.T) {
	out, err := Generate(&cast.ExpressionStatement{Expression: call("noop")})
	require.Nil(t, err)
	require.Equal(t, "noop();", out)
}

func TestGenerateProgram(t *testing.T) {
	program := &cast.Program{
		Body: []cast.Stmt{
			&cast.ExpressionStatement{Expression: call("a")},
			&cast.ExpressionStatement{Expression: call("b")},
		},
	}
	out, err := Generate(program)
	require.Nil(t, err)
	require.Equal(t, "a();\nb();", out)
}

func TestGenerateEmptyProgram(t *testing.T) {
	out, err := Generate(&cast.Program{})
	require.Nil(t, err)
	require.Equal(t, "", out)
}

func TestGenerateStringLiteral(t *testing.T) {
	out, err := Generate(&cast.StringLiteral{Value: "foo bar"})
	require.Nil(t, err)
	require.Equal(t, `"foo bar"`, out)
}

func TestGenerateIdentifier(t *testing.T) {
	out, err := Generate(&cast.Identifier{Name: "print"})
	require.Nil(t, err)
	require.Equal(t, "print", out)
}

// fakeStmt is a Stmt implementation from outside the closed set.
type fakeStmt struct{ cast.Stmt }

func (f *fakeStmt) String() string { return "fake" }

func TestGenerateUnknownKind(t *testing.T) {
	program := &cast.Program{Body: []cast.Stmt{&fakeStmt{}}}
	_, err := Generate(program)
	require.NotNil(t, err)

	var genErr *CodeGenError
	require.True(t, errors.As(err, &genErr))
	require.Equal(t, "*codegen.fakeStmt", genErr.NodeKind)

	kind, ok := errz.KindOf(err)
	require.True(t, ok)
	require.Equal(t, errz.ErrCodeGen, kind)
}
