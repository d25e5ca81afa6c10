// Package compiler rewrites a source tree into the C-style target tree.
//
// The rewrite is driven by the generic traversal in the ast package: each
// visited source node appends its transformed counterpart to its parent's
// collection in the target tree, so traversal order alone determines both
// statement wrapping and argument order.
package compiler

import (
	"github.com/deepnoodle-ai/lisp2c/ast"
	"github.com/deepnoodle-ai/lisp2c/cast"
)

// Transform rewrites the source program into an equivalent target program.
// The source tree is not modified. Top-level calls are wrapped in
// ExpressionStatement nodes; nested calls and literals are not.
func Transform(program *ast.Program) (*cast.Program, error) {
	target := &cast.Program{}

	// Each frame is the append target for the transformed children of the
	// source node being visited: the program root wraps expressions into
	// statements, a call appends into its own Arguments.
	var stack []func(cast.Expr)
	top := func() func(cast.Expr) { return stack[len(stack)-1] }
	pop := func() { stack = stack[:len(stack)-1] }

	err := ast.Traverse(program, ast.Hooks{
		EnterProgram: func(n *ast.Program, parent ast.Node) {
			stack = append(stack, func(e cast.Expr) {
				target.Body = append(target.Body, &cast.ExpressionStatement{Expression: e})
			})
		},
		ExitProgram: func(n *ast.Program, parent ast.Node) {
			pop()
		},
		EnterCall: func(n *ast.CallExpression, parent ast.Node) {
			call := &cast.CallExpression{Callee: &cast.Identifier{Name: n.Name}}
			top()(call)
			stack = append(stack, func(e cast.Expr) {
				call.Arguments = append(call.Arguments, e)
			})
		},
		ExitCall: func(n *ast.CallExpression, parent ast.Node) {
			pop()
		},
		EnterNumber: func(n *ast.NumberLiteral, parent ast.Node) {
			top()(&cast.NumberLiteral{Value: n.Value})
		},
		EnterString: func(n *ast.StringLiteral, parent ast.Node) {
			top()(&cast.StringLiteral{Value: n.Value})
		},
	})
	if err != nil {
		return nil, err
	}
	return target, nil
}
