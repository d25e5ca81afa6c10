package ast

import (
	"fmt"
	"iter"

	"github.com/deepnoodle-ai/lisp2c/errz"
)

// TraversalError indicates that a traversal met a node whose kind is outside
// the tree's closed set. Trees built by the parser never trigger this; it
// guards against foreign Node implementations.
type TraversalError struct {
	errz.StructuredError
	NodeKind string
}

func newTraversalError(node Node) *TraversalError {
	kind := fmt.Sprintf("%T", node)
	return &TraversalError{
		StructuredError: errz.New(errz.ErrTraversal, "unknown node kind %s", kind),
		NodeKind:        kind,
	}
}

// Hooks carries optional enter/exit callbacks for each node kind. A nil field
// means the traversal has nothing to do for that kind, which is the normal
// case. Each callback receives the node and its parent; the parent is nil
// only for the root.
type Hooks struct {
	EnterProgram func(node *Program, parent Node)
	ExitProgram  func(node *Program, parent Node)
	EnterCall    func(node *CallExpression, parent Node)
	ExitCall     func(node *CallExpression, parent Node)
	EnterNumber  func(node *NumberLiteral, parent Node)
	ExitNumber   func(node *NumberLiteral, parent Node)
	EnterString  func(node *StringLiteral, parent Node)
	ExitString   func(node *StringLiteral, parent Node)
}

// Traverse walks the tree rooted at root in depth-first order. For each node
// it invokes the matching enter hook, then visits the node's children in
// structural order, then invokes the matching exit hook.
func Traverse(root Node, hooks Hooks) error {
	return traverse(root, nil, hooks)
}

func traverse(node, parent Node, hooks Hooks) error {
	switch n := node.(type) {
	case *Program:
		if hooks.EnterProgram != nil {
			hooks.EnterProgram(n, parent)
		}
		for _, expr := range n.Body {
			if err := traverse(expr, n, hooks); err != nil {
				return err
			}
		}
		if hooks.ExitProgram != nil {
			hooks.ExitProgram(n, parent)
		}
	case *CallExpression:
		if hooks.EnterCall != nil {
			hooks.EnterCall(n, parent)
		}
		for _, param := range n.Params {
			if err := traverse(param, n, hooks); err != nil {
				return err
			}
		}
		if hooks.ExitCall != nil {
			hooks.ExitCall(n, parent)
		}
	case *NumberLiteral:
		if hooks.EnterNumber != nil {
			hooks.EnterNumber(n, parent)
		}
		if hooks.ExitNumber != nil {
			hooks.ExitNumber(n, parent)
		}
	case *StringLiteral:
		if hooks.EnterString != nil {
			hooks.EnterString(n, parent)
		}
		if hooks.ExitString != nil {
			hooks.ExitString(n, parent)
		}
	default:
		return newTraversalError(node)
	}
	return nil
}

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	switch n := node.(type) {
	case *Program:
		for _, expr := range n.Body {
			Walk(v, expr)
		}
	case *CallExpression:
		for _, param := range n.Params {
			Walk(v, param)
		}
	case *NumberLiteral:
		// No children
	case *StringLiteral:
		// No children
	}
}

// Inspect traverses an AST in depth-first order. It calls f(node) for each
// node; if f returns true, Inspect invokes f recursively for each of the
// non-nil children of node.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Preorder returns an iterator over all the nodes of the AST rooted at node
// in depth-first preorder.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var visit func(Node) bool
		visit = func(n Node) bool {
			if !yield(n) {
				return false
			}
			switch node := n.(type) {
			case *Program:
				for _, expr := range node.Body {
					if !visit(expr) {
						return false
					}
				}
			case *CallExpression:
				for _, param := range node.Params {
					if !visit(param) {
						return false
					}
				}
			}
			return true
		}
		visit(root)
	}
}
