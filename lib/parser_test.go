package lib

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

var ignorePositions = cmpopts.IgnoreFields(Token{}, "Line", "Col")

func op(typ TokenType, lexeme string) Token {
	return Token{Type: typ, Lexeme: lexeme}
}

func num(v float64) Literal {
	return Literal{Value: Number(v)}
}

func parseString(t *testing.T, source string) (Expr, error) {
	tokens, err := Scan(source)
	require.NoError(t, err)
	return Parse(tokens)
}

func requireTree(t *testing.T, source string, expected Expr) {
	actual, err := parseString(t, source)
	require.NoError(t, err)
	if diff := cmp.Diff(expected, actual, ignorePositions); diff != "" {
		t.Fatalf("tree for %q mismatch (-want +got):\n%s", source, diff)
	}
	require.True(t, Equal(expected, actual))
}

func TestParseLiterals(t *testing.T) {
	requireTree(t, "1", num(1))
	requireTree(t, "2.5", num(2.5))
	requireTree(t, `"lox"`, Literal{Value: Text("lox")})
	requireTree(t, "true", Literal{Value: Bool(true)})
	requireTree(t, "false", Literal{Value: Bool(false)})
	requireTree(t, "nil", Literal{})
}

func TestParseMultiplicationBindsTighter(t *testing.T) {
	requireTree(t, "1 + 2 * 3", Binary{
		Left:     num(1),
		Operator: op(TokenTypePlus, "+"),
		Right: Binary{
			Left:     num(2),
			Operator: op(TokenTypeStar, "*"),
			Right:    num(3),
		},
	})
}

func TestParseGrouping(t *testing.T) {
	requireTree(t, "(1 + 2) * 3", Binary{
		Left: Grouping{Inner: Binary{
			Left:     num(1),
			Operator: op(TokenTypePlus, "+"),
			Right:    num(2),
		}},
		Operator: op(TokenTypeStar, "*"),
		Right:    num(3),
	})
}

func TestParseLeftAssociative(t *testing.T) {
	requireTree(t, "1 - 2 - 3", Binary{
		Left: Binary{
			Left:     num(1),
			Operator: op(TokenTypeMinus, "-"),
			Right:    num(2),
		},
		Operator: op(TokenTypeMinus, "-"),
		Right:    num(3),
	})

	requireTree(t, "8 / 4 * 2", Binary{
		Left: Binary{
			Left:     num(8),
			Operator: op(TokenTypeSlash, "/"),
			Right:    num(4),
		},
		Operator: op(TokenTypeStar, "*"),
		Right:    num(2),
	})
}

func TestParseUnaryNesting(t *testing.T) {
	requireTree(t, "!!true", Unary{
		Operator: op(TokenTypeBang, "!"),
		Operand: Unary{
			Operator: op(TokenTypeBang, "!"),
			Operand:  Literal{Value: Bool(true)},
		},
	})

	requireTree(t, "-1 * 2", Binary{
		Left: Unary{
			Operator: op(TokenTypeMinus, "-"),
			Operand:  num(1),
		},
		Operator: op(TokenTypeStar, "*"),
		Right:    num(2),
	})
}

func TestParsePrecedenceLevels(t *testing.T) {
	// equality < comparison < term
	requireTree(t, "1 + 2 < 4 == true", Binary{
		Left: Binary{
			Left: Binary{
				Left:     num(1),
				Operator: op(TokenTypePlus, "+"),
				Right:    num(2),
			},
			Operator: op(TokenTypeLess, "<"),
			Right:    num(4),
		},
		Operator: op(TokenTypeEqualEqual, "=="),
		Right:    Literal{Value: Bool(true)},
	})

	requireTree(t, "1 != 2 >= 3", Binary{
		Left:     num(1),
		Operator: op(TokenTypeBangEqual, "!="),
		Right: Binary{
			Left:     num(2),
			Operator: op(TokenTypeGreaterEqual, ">="),
			Right:    num(3),
		},
	})
}

func TestParseComparisonOperandIsTerm(t *testing.T) {
	requireTree(t, "1 < 2 + 3", Binary{
		Left:     num(1),
		Operator: op(TokenTypeLess, "<"),
		Right: Binary{
			Left:     num(2),
			Operator: op(TokenTypePlus, "+"),
			Right:    num(3),
		},
	})
}

func TestParseKeepsOperatorPosition(t *testing.T) {
	expr, err := parseString(t, "1 +\n 2")
	require.NoError(t, err)
	binary, ok := expr.(Binary)
	require.True(t, ok)
	require.Equal(t, 1, binary.Operator.Line)
	require.Equal(t, 3, binary.Operator.Col)
}

func TestParseUnclosedGrouping(t *testing.T) {
	_, err := parseString(t, "(1 + 2")
	require.Error(t, err)

	var unclosed *UnclosedGroupingError
	require.True(t, errors.As(err, &unclosed), err.Error())
	require.Equal(t, 1, unclosed.Line)
	require.Equal(t, TokenTypeEOF, unclosed.Found.Type)
}

func TestParseUnclosedGroupingReportsOpeningLine(t *testing.T) {
	_, err := parseString(t, "1 *\n(2\n3")

	var unclosed *UnclosedGroupingError
	require.True(t, errors.As(err, &unclosed))
	require.Equal(t, 2, unclosed.Line)
	require.Equal(t, TokenTypeNumber, unclosed.Found.Type)
	require.Equal(t, 3, unclosed.Found.Line)
}

func TestParseUnexpectedEnd(t *testing.T) {
	for _, source := range []string{"", "1 +", "-", "(", "1 ==\n"} {
		_, err := parseString(t, source)
		var end *UnexpectedEndError
		require.True(t, errors.As(err, &end), "%q: %v", source, err)
	}

	_, err := parseString(t, "1 +\n\n")
	var end *UnexpectedEndError
	require.True(t, errors.As(err, &end))
	require.Equal(t, 3, end.Line)
}

func TestParseWithoutEOFToken(t *testing.T) {
	tokens := []Token{
		{Type: TokenTypeNumber, Lexeme: "1", Literal: Number(1), Line: 4, Col: 1},
		{Type: TokenTypePlus, Lexeme: "+", Line: 4, Col: 3},
	}
	_, err := Parse(tokens)

	var end *UnexpectedEndError
	require.True(t, errors.As(err, &end))
	require.Equal(t, 4, end.Line)

	expr, err := Parse(tokens[:1])
	require.NoError(t, err)
	require.True(t, Equal(num(1), expr))
}

func TestParseUnexpectedToken(t *testing.T) {
	_, err := parseString(t, "1 + foo")
	require.Error(t, err)

	var unexpected *UnexpectedTokenError
	require.True(t, errors.As(err, &unexpected))
	require.Equal(t, TokenTypeIdentifier, unexpected.Found.Type)
	require.Equal(t, primaryTokenTypes, unexpected.Expected)
	require.Equal(t, 1, unexpected.Line)
	require.Contains(t, err.Error(), "identifier: foo")
}

func TestParseTrailingTokens(t *testing.T) {
	_, err := parseString(t, "1 2")

	var unexpected *UnexpectedTokenError
	require.True(t, errors.As(err, &unexpected))
	require.Equal(t, []TokenType{TokenTypeEOF}, unexpected.Expected)
	require.Equal(t, TokenTypeNumber, unexpected.Found.Type)

	_, err = parseString(t, "1 + 2)")
	require.True(t, errors.As(err, &unexpected))
	require.Equal(t, TokenTypeRightParen, unexpected.Found.Type)
}

func TestParseNestingTooDeep(t *testing.T) {
	source := strings.Repeat("(", 10) + "1" + strings.Repeat(")", 10)

	tokens, err := Scan(source)
	require.NoError(t, err)

	_, err = ParseWithOptions(tokens, ParseOptions{MaxDepth: 10})
	require.NoError(t, err)

	_, err = ParseWithOptions(tokens, ParseOptions{MaxDepth: 9})
	var tooDeep *NestingTooDeepError
	require.True(t, errors.As(err, &tooDeep))
	require.Equal(t, 9, tooDeep.Limit)
}

func TestParseNestingDefaultLimit(t *testing.T) {
	tokens, err := Scan(strings.Repeat("-", DefaultMaxDepth+1) + "1")
	require.NoError(t, err)

	_, err = Parse(tokens)
	var tooDeep *NestingTooDeepError
	require.True(t, errors.As(err, &tooDeep))
	require.Equal(t, DefaultMaxDepth, tooDeep.Limit)

	_, err = Parse(tokens[1:])
	require.NoError(t, err)
}

func TestParseSequentialGroupsDoNotAccumulateDepth(t *testing.T) {
	// 20 folds plus one group open at a time
	source := strings.Repeat("(1) + ", 20) + "(1)"
	tokens, err := Scan(source)
	require.NoError(t, err)

	_, err = ParseWithOptions(tokens, ParseOptions{MaxDepth: 21})
	require.NoError(t, err)
}

func TestParseBinaryChainDepth(t *testing.T) {
	tokens, err := Scan(strings.Repeat("1 + ", 10) + "1")
	require.NoError(t, err)

	expr, err := ParseWithOptions(tokens, ParseOptions{MaxDepth: 10})
	require.NoError(t, err)
	require.Equal(t, 11, Depth(expr))

	_, err = ParseWithOptions(tokens, ParseOptions{MaxDepth: 9})
	var tooDeep *NestingTooDeepError
	require.True(t, errors.As(err, &tooDeep))
	require.Equal(t, 9, tooDeep.Limit)

	// mixed precedence levels share the same budget
	tokens, err = Scan("1 + 1 + 1 * 1 * 1")
	require.NoError(t, err)
	_, err = ParseWithOptions(tokens, ParseOptions{MaxDepth: 4})
	require.NoError(t, err)
	_, err = ParseWithOptions(tokens, ParseOptions{MaxDepth: 3})
	require.True(t, errors.As(err, &tooDeep))
}

func TestParseLongBinaryChain(t *testing.T) {
	tokens, err := Scan(strings.Repeat("1+", 200000) + "1")
	require.NoError(t, err)

	_, err = Parse(tokens)
	var tooDeep *NestingTooDeepError
	require.True(t, errors.As(err, &tooDeep))
	require.Equal(t, DefaultMaxDepth, tooDeep.Limit)

	tokens, err = Scan(strings.Repeat("1+", DefaultMaxDepth) + "1")
	require.NoError(t, err)
	_, err = Parse(tokens)
	require.NoError(t, err)
}

func TestParseDoesNotModifyTokens(t *testing.T) {
	tokens, err := Scan("(1 + 2) * -3")
	require.NoError(t, err)
	snapshot := append([]Token{}, tokens...)

	_, err = Parse(tokens)
	require.NoError(t, err)
	require.Equal(t, snapshot, tokens)
}

func TestParseSource(t *testing.T) {
	expr, err := ParseSource("1 + 2")
	require.NoError(t, err)
	require.Equal(t, "( ( 1 ) + ( 2 ) )", Render(expr))

	_, err = ParseSource("1 + @")
	var invalid *InvalidCharacterError
	require.True(t, errors.As(err, &invalid))
}
