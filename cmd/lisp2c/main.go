package main

import (
	"os"

	"github.com/deepnoodle-ai/lisp2c/cmd/lisp2c/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
