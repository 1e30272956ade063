package lib

import (
	"fmt"
)

// DefaultMaxDepth is the nesting limit used when ParseOptions.MaxDepth is
// not set.
const DefaultMaxDepth = 256

type ParseOptions struct {
	// MaxDepth bounds how deeply unary operators and parentheses may nest.
	MaxDepth int
}

var primaryTokenTypes = []TokenType{
	TokenTypeNumber,
	TokenTypeString,
	TokenTypeTrue,
	TokenTypeFalse,
	TokenTypeNil,
	TokenTypeLeftParen,
}

// Parse builds an expression tree from the output of Scan. The whole token
// sequence must form exactly one expression.
func Parse(tokens []Token) (Expr, error) {
	return ParseWithOptions(tokens, ParseOptions{})
}

func ParseWithOptions(tokens []Token, opts ParseOptions) (Expr, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	p := parser{
		reader:   newTokenBuffer(tokens),
		maxDepth: maxDepth,
		line:     1,
	}
	return p.scan()
}

// ParseSource scans and parses source in one step.
func ParseSource(source string) (Expr, error) {
	tokens, err := Scan(source)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

type parser struct {
	reader   tokenReader
	maxDepth int
	depth    int
	// line of the last token read, used when the stream runs out
	line int
}

func (p *parser) scan() (Expr, error) {
	expr, err := p.scanExpr()
	if err != nil {
		return nil, err
	}

	next, done := p.next()
	if done || next.Type == TokenTypeEOF {
		return expr, nil
	}
	return nil, &UnexpectedTokenError{
		Found:    next,
		Expected: []TokenType{TokenTypeEOF},
		Line:     next.Line,
	}
}

func (p *parser) next() (Token, bool) {
	tok, done := p.reader.Next()
	if !done {
		p.line = tok.Line
	}
	return tok, done
}

// checkToken consumes the next token if it has one of the given types.
func (p *parser) checkToken(tokTypes ...TokenType) (Token, bool) {
	next, done := p.reader.Peek()
	if done {
		return Token{}, false
	}
	for _, tokType := range tokTypes {
		if next.Type == tokType {
			_, _ = p.next()
			return next, true
		}
	}
	return Token{}, false
}

func (p *parser) enter(tok Token) error {
	p.depth++
	if p.depth > p.maxDepth {
		return &NestingTooDeepError{Line: tok.Line, Limit: p.maxDepth}
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) scanExpr() (Expr, error) {
	return p.scanEquality()
}

func (p *parser) scanEquality() (Expr, error) {
	return p.scanBinary(p.scanComparison, TokenTypeBangEqual, TokenTypeEqualEqual)
}

func (p *parser) scanComparison() (Expr, error) {
	return p.scanBinary(
		p.scanTerm,
		TokenTypeGreater,
		TokenTypeGreaterEqual,
		TokenTypeLess,
		TokenTypeLessEqual)
}

func (p *parser) scanTerm() (Expr, error) {
	return p.scanBinary(p.scanFactor, TokenTypeMinus, TokenTypePlus)
}

func (p *parser) scanFactor() (Expr, error) {
	return p.scanBinary(p.scanUnary, TokenTypeSlash, TokenTypeStar)
}

// scanBinary reads one precedence level: an operand followed by any number
// of operator/operand pairs, folded to the left. Every fold deepens the left
// spine of the tree, so each one counts toward the nesting limit.
func (p *parser) scanBinary(operand func() (Expr, error), ops ...TokenType) (Expr, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	folds := 0
	defer func() { p.depth -= folds }()

	for {
		opToken, isOp := p.checkToken(ops...)
		if !isOp {
			break
		}

		folds++
		if err := p.enter(opToken); err != nil {
			return nil, err
		}

		right, err := operand()
		if err != nil {
			return nil, err
		}

		left = Binary{
			Left:     left,
			Operator: opToken,
			Right:    right,
		}
	}

	return left, nil
}

func (p *parser) scanUnary() (Expr, error) {
	opToken, isOp := p.checkToken(TokenTypeBang, TokenTypeMinus)
	if !isOp {
		return p.scanPrimary()
	}

	if err := p.enter(opToken); err != nil {
		return nil, err
	}
	defer p.leave()

	operand, err := p.scanUnary()
	if err != nil {
		return nil, err
	}
	return Unary{
		Operator: opToken,
		Operand:  operand,
	}, nil
}

func (p *parser) scanPrimary() (Expr, error) {
	tok, done := p.next()
	if done || tok.Type == TokenTypeEOF {
		return nil, &UnexpectedEndError{Line: p.line}
	}

	switch tok.Type {
	case TokenTypeNumber, TokenTypeString:
		return Literal{Value: tok.Literal}, nil
	case TokenTypeTrue:
		return Literal{Value: Bool(true)}, nil
	case TokenTypeFalse:
		return Literal{Value: Bool(false)}, nil
	case TokenTypeNil:
		return Literal{}, nil
	case TokenTypeLeftParen:
		return p.scanParenthetical(tok)
	}

	// Not recognized so it must be a syntax error
	return nil, &UnexpectedTokenError{
		Found:    tok,
		Expected: primaryTokenTypes,
		Line:     tok.Line,
	}
}

// Reads after "("
func (p *parser) scanParenthetical(open Token) (Expr, error) {
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer p.leave()

	expr, err := p.scanExpr()
	if err != nil {
		return nil, err
	}

	next, done := p.next()
	if done {
		return nil, &UnclosedGroupingError{
			Line:  open.Line,
			Found: Token{Type: TokenTypeEOF, Line: p.line},
		}
	}
	if next.Type != TokenTypeRightParen {
		return nil, &UnclosedGroupingError{Line: open.Line, Found: next}
	}
	return Grouping{Inner: expr}, nil
}

func tokenString(tok Token) string {
	return fmt.Sprintf(
		"%d:%d -> %s",
		tok.Line,
		tok.Col,
		tokenValueString(tok))
}

func tokenValueString(tok Token) string {
	switch tok.Type {
	case TokenTypeEOF:
		return "EOF"
	case TokenTypeIdentifier:
		return fmt.Sprintf("identifier: %s", tok.Lexeme)
	case TokenTypeString:
		return fmt.Sprintf("string: %s", tok.Lexeme)
	case TokenTypeNumber:
		return fmt.Sprintf("number: %s", tok.Lexeme)
	}
	if tok.Lexeme == "" {
		return "?"
	}
	return tok.Lexeme
}
