package lib

// Expr is an expression tree node: Literal, Grouping, Unary or Binary. Every
// node owns its children; trees are never shared between parses.
type Expr interface {
	isExpr()
}

func (Literal) isExpr()  {}
func (Grouping) isExpr() {}
func (Unary) isExpr()    {}
func (Binary) isExpr()   {}

// Literal holds a constant. A nil Value is the "nil" literal.
type Literal struct {
	Value LiteralValue
}

type Grouping struct {
	Inner Expr
}

type Unary struct {
	Operator Token
	Operand  Expr
}

type Binary struct {
	Left     Expr
	Operator Token
	Right    Expr
}

// Equal reports whether two trees have the same shape, operators and
// literal values. Source positions are not compared.
func Equal(a Expr, b Expr) bool {
	switch x := a.(type) {
	case Literal:
		y, ok := b.(Literal)
		return ok && x.Value == y.Value
	case Grouping:
		y, ok := b.(Grouping)
		return ok && Equal(x.Inner, y.Inner)
	case Unary:
		y, ok := b.(Unary)
		return ok &&
			sameOperator(x.Operator, y.Operator) &&
			Equal(x.Operand, y.Operand)
	case Binary:
		y, ok := b.(Binary)
		return ok &&
			sameOperator(x.Operator, y.Operator) &&
			Equal(x.Left, y.Left) &&
			Equal(x.Right, y.Right)
	default:
		return a == nil && b == nil
	}
}

func sameOperator(a Token, b Token) bool {
	return a.Type == b.Type && a.Lexeme == b.Lexeme && a.Literal == b.Literal
}

// Depth is the number of nodes on the longest root-to-leaf path.
func Depth(expr Expr) int {
	switch e := expr.(type) {
	case Literal:
		return 1
	case Grouping:
		return 1 + Depth(e.Inner)
	case Unary:
		return 1 + Depth(e.Operand)
	case Binary:
		left := Depth(e.Left)
		right := Depth(e.Right)
		if right > left {
			return 1 + right
		}
		return 1 + left
	default:
		return 0
	}
}
