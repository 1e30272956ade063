package lib

import (
	"strings"
)

// Render prints a tree with every node wrapped in its own "( ... )", so the
// nesting of the output matches the depth of the tree. It is meant for
// diagnostics and is not valid source.
func Render(expr Expr) string {
	var b strings.Builder
	render(&b, expr)
	return b.String()
}

func render(b *strings.Builder, expr Expr) {
	b.WriteString("( ")
	switch e := expr.(type) {
	case Binary:
		render(b, e.Left)
		b.WriteString(" ")
		b.WriteString(e.Operator.Lexeme)
		b.WriteString(" ")
		render(b, e.Right)
	case Unary:
		b.WriteString(e.Operator.Lexeme)
		b.WriteString(" ")
		render(b, e.Operand)
	case Grouping:
		render(b, e.Inner)
	case Literal:
		b.WriteString(literalString(e.Value))
	default:
		b.WriteString("?")
	}
	b.WriteString(" )")
}

func literalString(value LiteralValue) string {
	if value == nil {
		return "nil"
	}
	return value.String()
}
