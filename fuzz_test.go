package lisp2c

import (
	"context"
	"testing"
	"unicode/utf8"
)

// FuzzCompile tests that the pipeline doesn't panic on arbitrary input.
// Compile should either return generated code or an error, never crash.
func FuzzCompile(f *testing.F) {
	seeds := []string{
		"",
		"(add 2 2)",
		"(subtract 4 2)",
		"(add 2 (subtract 4 2))",
		`(concat "foo" "bar")`,
		"(add 2 2)\n(subtract 4 2)",
		"(noop)",
		"(f (g (h 1)))",
		`(print "a  b")`,
		"(",
		")",
		"(2)",
		"(add 2",
		`(print "oops`,
		"@",
		"((((",
		"(a)(b)(c)",
		"   \t\n  ",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			t.Skip("invalid utf-8")
		}
		out, err := Compile(context.Background(), input)
		if err != nil && out != "" {
			t.Errorf("error %v with non-empty output %q", err, out)
		}
	})
}
