package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/deepnoodle-ai/lisp2c/ast"
	"github.com/deepnoodle-ai/lisp2c/parser"
	"github.com/spf13/cobra"
)

var astFormat string

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Parse a program and print its source tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAst,
}

func init() {
	astCmd.Flags().StringVar(&astFormat, "format", "text", "output format (text, json)")
	rootCmd.AddCommand(astCmd)
}

func readSource(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(src), "stdin", nil
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", err
	}
	return string(src), args[0], nil
}

func runAst(cmd *cobra.Command, args []string) error {
	src, filename, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	program, err := parser.Parse(cmd.Context(), src, parser.WithFilename(filename))
	if err != nil {
		return err
	}
	if astFormat == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(nodeToJSON(program))
	}
	ast.Walk(&treePrinter{w: cmd.OutOrStdout()}, program)
	return nil
}

// treePrinter prints one line per node, indented by depth.
type treePrinter struct {
	w     io.Writer
	depth int
}

func (p *treePrinter) Visit(node ast.Node) ast.Visitor {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.depth), nodeLabel(node))
	return &treePrinter{w: p.w, depth: p.depth + 1}
}

func nodeLabel(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Program:
		return "Program"
	case *ast.CallExpression:
		return fmt.Sprintf("CallExpression(%s)", n.Name)
	case *ast.NumberLiteral:
		return fmt.Sprintf("NumberLiteral(%s)", n.Value)
	case *ast.StringLiteral:
		return fmt.Sprintf("StringLiteral(%q)", n.Value)
	default:
		return fmt.Sprintf("%T", node)
	}
}

// astNode is the JSON shape for a source tree node.
type astNode struct {
	Type     string     `json:"type"`
	Value    string     `json:"value,omitempty"`
	Children []*astNode `json:"children,omitempty"`
}

func nodeToJSON(node ast.Node) *astNode {
	switch n := node.(type) {
	case *ast.Program:
		out := &astNode{Type: "Program"}
		for _, expr := range n.Body {
			out.Children = append(out.Children, nodeToJSON(expr))
		}
		return out
	case *ast.CallExpression:
		out := &astNode{Type: "CallExpression", Value: n.Name}
		for _, param := range n.Params {
			out.Children = append(out.Children, nodeToJSON(param))
		}
		return out
	case *ast.NumberLiteral:
		return &astNode{Type: "NumberLiteral", Value: n.Value}
	case *ast.StringLiteral:
		return &astNode{Type: "StringLiteral", Value: n.Value}
	default:
		return &astNode{Type: fmt.Sprintf("%T", node)}
	}
}
