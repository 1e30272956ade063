package test

import (
	"errors"
	"testing"

	"github.com/graeme-hill/loxfront-go/lib"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	scripts, err := lib.ReadScriptsFromDir("./scripts")
	require.NoError(t, err)
	require.Len(t, scripts, 4)

	expected := map[string]string{
		"arithmetic": "( ( 1 ) + ( ( 2 ) * ( 3 ) ) )",
		"comparison": "( ( ! ( ( ( 1 ) >= ( 2 ) ) ) ) == ( true ) )",
		"grouping":   "( ( ( ( 1 ) + ( 2 ) ) ) * ( 3 ) )",
		"strings":    `( ( "lox" ) != ( nil ) )`,
	}

	for i := range scripts {
		s := &scripts[i]
		require.NoError(t, s.Compile(lib.ParseOptions{}), s.Name)
		require.Equal(t, lib.TokenTypeEOF, s.Tokens[len(s.Tokens)-1].Type)
		require.Equal(t, expected[s.Name], lib.Render(s.AST), s.Name)
	}
}

func TestPipeline(t *testing.T) {
	tokens, err := lib.Scan("(1 + 2) * 3")
	require.NoError(t, err)

	expr, err := lib.Parse(tokens)
	require.NoError(t, err)

	require.Equal(t, "( ( ( ( 1 ) + ( 2 ) ) ) * ( 3 ) )", lib.Render(expr))
	require.Equal(t, 4, lib.Depth(expr))
}

func TestPipelineErrors(t *testing.T) {
	_, err := lib.ParseSource("1 + @")
	var invalid *lib.InvalidCharacterError
	require.True(t, errors.As(err, &invalid))
	require.Equal(t, 1, invalid.Line)
	require.Equal(t, 5, invalid.Col)

	_, err = lib.ParseSource("(1 + 2")
	var unclosed *lib.UnclosedGroupingError
	require.True(t, errors.As(err, &unclosed))
	require.Equal(t, 1, unclosed.Line)

	_, err = lib.ParseSource(`"never closed`)
	var unterminated *lib.UnterminatedStringError
	require.True(t, errors.As(err, &unterminated))
}
