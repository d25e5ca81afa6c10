// Package cmd implements the lisp2c command line interface. The CLI is a
// thin collaborator around the library: it pipes file or stdin content
// through Compile and writes the result to stdout or a file.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/deepnoodle-ai/lisp2c"
	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	outputPath string
	logLevel   string
	maxDepth   int
)

var rootCmd = &cobra.Command{
	Use:   "lisp2c [files...]",
	Short: "Compile parenthesized-call programs to C-style call syntax",
	Long: `lisp2c compiles a small parenthesized-call language to C-style call syntax.

Each file argument is compiled independently; with no arguments, source code
is read from stdin. Generated code is written to stdout unless -o is given.

Example:
  echo '(add 2 (subtract 4 2))' | lisp2c
  add(2, subtract(4, 2));`,
	RunE:          runCompile,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and reports any error on stderr.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"log level (trace, debug, info, warn, error)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"write generated code to this file instead of stdout")
	rootCmd.Flags().IntVar(&maxDepth, "max-depth", 0,
		"maximum call nesting depth (0 uses the parser default)")
}

func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func compileOpts(filename string) []lisp2c.Option {
	opts := []lisp2c.Option{lisp2c.WithFilename(filename)}
	if maxDepth > 0 {
		opts = append(opts, lisp2c.WithMaxDepth(maxDepth))
	}
	return opts
}

func runCompile(cmd *cobra.Command, args []string) error {
	log := newLogger()
	ctx := cmd.Context()

	var outputs []string
	var result *multierror.Error
	if len(args) == 0 {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		out, err := lisp2c.Compile(ctx, string(src), compileOpts("stdin")...)
		if err != nil {
			return err
		}
		outputs = append(outputs, out)
	} else {
		for _, filename := range args {
			start := time.Now()
			src, err := os.ReadFile(filename)
			if err != nil {
				result = multierror.Append(result, err)
				continue
			}
			out, err := lisp2c.Compile(ctx, string(src), compileOpts(filename)...)
			if err != nil {
				result = multierror.Append(result, err)
				continue
			}
			log.Debug().
				Str("file", filename).
				Dur("elapsed", time.Since(start)).
				Msg("compiled")
			outputs = append(outputs, out)
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	code := strings.Join(outputs, "\n")
	if outputPath != "" {
		return os.WriteFile(outputPath, []byte(code+"\n"), 0o644)
	}
	if code != "" {
		fmt.Fprintln(cmd.OutOrStdout(), code)
	}
	return nil
}

func printError(err error) {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		color.New(color.FgRed).Fprintf(os.Stderr, "%s\n", err)
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
