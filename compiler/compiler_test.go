package compiler

import (
	"context"
	"testing"

	"github.com/deepnoodle-ai/lisp2c/ast"
	"github.com/deepnoodle-ai/lisp2c/cast"
	"github.com/deepnoodle-ai/lisp2c/parser"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, input string) *ast.Program {
	t.Helper()
	program, err := parser.Parse(context.Background(), input)
	require.Nil(t, err)
	return program
}

func TestTransformWrapsTopLevelCalls(t *testing.T) {
	target, err := Transform(mustParse(t, "(add 2 2)\n(subtract 4 2)"))
	require.Nil(t, err)
	require.Len(t, target.Body, 2)

	for i, name := range []string{"add", "subtract"} {
		stmt, ok := target.Body[i].(*cast.ExpressionStatement)
		require.True(t, ok)
		call, ok := stmt.Expression.(*cast.CallExpression)
		require.True(t, ok)
		require.Equal(t, name, call.Callee.Name)
	}
}

func TestTransformNestedCallsNotWrapped(t *testing.T) {
	target, err := Transform(mustParse(t, "(add 2 (subtract 4 2))"))
	require.Nil(t, err)
	require.Len(t, target.Body, 1)

	outer := target.Body[0].(*cast.ExpressionStatement).Expression.(*cast.CallExpression)
	require.Equal(t, "add", outer.Callee.Name)
	require.Len(t, outer.Arguments, 2)

	// The nested call is a plain argument expression, not a statement
	inner, ok := outer.Arguments[1].(*cast.CallExpression)
	require.True(t, ok)
	require.Equal(t, "subtract", inner.Callee.Name)
	require.Len(t, inner.Arguments, 2)
}

func TestTransformArgumentOrder(t *testing.T) {
	target, err := Transform(mustParse(t, `(f 1 "two" 3 (g 4) 5)`))
	require.Nil(t, err)

	call := target.Body[0].(*cast.ExpressionStatement).Expression.(*cast.CallExpression)
	require.Len(t, call.Arguments, 5)
	require.Equal(t, "1", call.Arguments[0].(*cast.NumberLiteral).Value)
	require.Equal(t, "two", call.Arguments[1].(*cast.StringLiteral).Value)
	require.Equal(t, "3", call.Arguments[2].(*cast.NumberLiteral).Value)
	require.Equal(t, "g", call.Arguments[3].(*cast.CallExpression).Callee.Name)
	require.Equal(t, "5", call.Arguments[4].(*cast.NumberLiteral).Value)
}

func TestTransformLiteralsCarriedVerbatim(t *testing.T) {
	target, err := Transform(mustParse(t, `(f 007 "a b c")`))
	require.Nil(t, err)

	call := target.Body[0].(*cast.ExpressionStatement).Expression.(*cast.CallExpression)
	require.Equal(t, "007", call.Arguments[0].(*cast.NumberLiteral).Value)
	require.Equal(t, "a b c", call.Arguments[1].(*cast.StringLiteral).Value)
}

func TestTransformEmptyProgram(t *testing.T) {
	target, err := Transform(&ast.Program{})
	require.Nil(t, err)
	require.NotNil(t, target)
	require.Len(t, target.Body, 0)
}

func TestTransformDoesNotMutateSource(t *testing.T) {
	program := mustParse(t, "(add 2 (subtract 4 2))")
	before := program.String()
	_, err := Transform(program)
	require.Nil(t, err)
	require.Equal(t, before, program.String())
}

func TestTransformerFunc(t *testing.T) {
	var reverse Transformer = TransformerFunc(func(p *cast.Program) (*cast.Program, error) {
		out := &cast.Program{}
		for i := len(p.Body) - 1; i >= 0; i-- {
			out.Body = append(out.Body, p.Body[i])
		}
		return out, nil
	})

	target, err := Transform(mustParse(t, "(a)\n(b)"))
	require.Nil(t, err)
	target, err = reverse.Transform(target)
	require.Nil(t, err)

	first := target.Body[0].(*cast.ExpressionStatement).Expression.(*cast.CallExpression)
	require.Equal(t, "b", first.Callee.Name)
}
