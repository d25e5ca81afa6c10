package errz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindStrings(t *testing.T) {
	require.Equal(t, "lex error", ErrLex.String())
	require.Equal(t, "parse error", ErrParse.String())
	require.Equal(t, "traversal error", ErrTraversal.String())
	require.Equal(t, "codegen error", ErrCodeGen.String())
	require.Equal(t, "error", ErrorKind(99).String())
}

func TestStructuredError(t *testing.T) {
	err := New(ErrLex, "unrecognized character %q", '@')
	require.Equal(t, `lex error: unrecognized character '@'`, err.Error())
	require.Equal(t, ErrLex, err.ErrorKind())
}

func TestKindOf(t *testing.T) {
	err := New(ErrParse, "unexpected token")
	kind, ok := KindOf(&err)
	require.True(t, ok)
	require.Equal(t, ErrParse, kind)

	// Wrapped errors still report their kind
	wrapped := fmt.Errorf("compiling: %w", &err)
	kind, ok = KindOf(wrapped)
	require.True(t, ok)
	require.Equal(t, ErrParse, kind)

	_, ok = KindOf(errors.New("plain"))
	require.False(t, ok)
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &StructuredError{Kind: ErrCodeGen, Message: "failed", Cause: cause}
	require.ErrorIs(t, err, cause)
}
