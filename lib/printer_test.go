package lib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func maxParenDepth(s string) int {
	depth, deepest := 0, 0
	for _, ch := range s {
		switch ch {
		case '(':
			depth++
			if depth > deepest {
				deepest = depth
			}
		case ')':
			depth--
		}
	}
	return deepest
}

func TestRenderBinary(t *testing.T) {
	expr, err := ParseSource("1 + 2")
	require.NoError(t, err)

	out := Render(expr)
	require.Equal(t, "( ( 1 ) + ( 2 ) )", out)
	require.True(t, strings.HasPrefix(out, "( "))
	require.True(t, strings.HasSuffix(out, " )"))
	require.Equal(t, Depth(expr), maxParenDepth(out))
}

func TestRenderNodes(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"nil", "( nil )"},
		{"true", "( true )"},
		{"false", "( false )"},
		{"2.5", "( 2.5 )"},
		{"10", "( 10 )"},
		{`"hi there"`, `( "hi there" )`},
		{"-1", "( - ( 1 ) )"},
		{"!!true", "( ! ( ! ( true ) ) )"},
		{"(1)", "( ( 1 ) )"},
		{"1 + 2 * 3", "( ( 1 ) + ( ( 2 ) * ( 3 ) ) )"},
		{"(1 + 2) * 3", "( ( ( ( 1 ) + ( 2 ) ) ) * ( 3 ) )"},
		{"1 >= 2 != !false", "( ( ( 1 ) >= ( 2 ) ) != ( ! ( false ) ) )"},
	}
	for _, tc := range testCases {
		expr, err := ParseSource(tc.input)
		require.NoError(t, err, tc.input)

		out := Render(expr)
		require.Equal(t, tc.expected, out, tc.input)
		require.Equal(t, Depth(expr), maxParenDepth(out), tc.input)
	}
}

func TestRenderHandBuiltTree(t *testing.T) {
	expr := Unary{
		Operator: Token{Type: TokenTypeMinus, Lexeme: "-"},
		Operand: Grouping{Inner: Binary{
			Left:     Literal{Value: Text("a")},
			Operator: Token{Type: TokenTypeEqualEqual, Lexeme: "=="},
			Right:    Literal{},
		}},
	}
	require.Equal(t, `( - ( ( ( "a" ) == ( nil ) ) ) )`, Render(expr))
}

func TestRenderNil(t *testing.T) {
	require.Equal(t, "( ? )", Render(nil))
}
