package cmd

import (
	"fmt"

	"github.com/deepnoodle-ai/lisp2c/lexer"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Scan a program and print its token stream",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, _, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, tok := range tokens {
		fmt.Fprintf(w, "%-8s %q\n", tok.Type, tok.Literal)
	}
	return nil
}
