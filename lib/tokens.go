package lib

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TokenTypeLeftParen TokenType = iota
	TokenTypeRightParen
	TokenTypeLeftBrace
	TokenTypeRightBrace
	TokenTypeComma
	TokenTypeDot
	TokenTypeSemicolon

	TokenTypePlus
	TokenTypePlusEqual
	TokenTypeMinus
	TokenTypeMinusEqual
	TokenTypeStar
	TokenTypeStarEqual
	TokenTypeSlash
	TokenTypeSlashEqual
	TokenTypeBang
	TokenTypeBangEqual
	TokenTypeEqual
	TokenTypeEqualEqual
	TokenTypeLess
	TokenTypeLessEqual
	TokenTypeGreater
	TokenTypeGreaterEqual

	TokenTypeIdentifier
	TokenTypeString
	TokenTypeNumber

	TokenTypeAnd
	TokenTypeClass
	TokenTypeElse
	TokenTypeFalse
	TokenTypeFun
	TokenTypeFor
	TokenTypeIf
	TokenTypeNil
	TokenTypeOr
	TokenTypePrint
	TokenTypeReturn
	TokenTypeSuper
	TokenTypeThis
	TokenTypeTrue
	TokenTypeVar
	TokenTypeWhile

	TokenTypeEOF
)

var tokenTypeNames = map[TokenType]string{
	TokenTypeLeftParen:    "LEFT_PAREN",
	TokenTypeRightParen:   "RIGHT_PAREN",
	TokenTypeLeftBrace:    "LEFT_BRACE",
	TokenTypeRightBrace:   "RIGHT_BRACE",
	TokenTypeComma:        "COMMA",
	TokenTypeDot:          "DOT",
	TokenTypeSemicolon:    "SEMICOLON",
	TokenTypePlus:         "PLUS",
	TokenTypePlusEqual:    "PLUS_EQUAL",
	TokenTypeMinus:        "MINUS",
	TokenTypeMinusEqual:   "MINUS_EQUAL",
	TokenTypeStar:         "STAR",
	TokenTypeStarEqual:    "STAR_EQUAL",
	TokenTypeSlash:        "SLASH",
	TokenTypeSlashEqual:   "SLASH_EQUAL",
	TokenTypeBang:         "BANG",
	TokenTypeBangEqual:    "BANG_EQUAL",
	TokenTypeEqual:        "EQUAL",
	TokenTypeEqualEqual:   "EQUAL_EQUAL",
	TokenTypeLess:         "LESS",
	TokenTypeLessEqual:    "LESS_EQUAL",
	TokenTypeGreater:      "GREATER",
	TokenTypeGreaterEqual: "GREATER_EQUAL",
	TokenTypeIdentifier:   "IDENTIFIER",
	TokenTypeString:       "STRING",
	TokenTypeNumber:       "NUMBER",
	TokenTypeAnd:          "AND",
	TokenTypeClass:        "CLASS",
	TokenTypeElse:         "ELSE",
	TokenTypeFalse:        "FALSE",
	TokenTypeFun:          "FUN",
	TokenTypeFor:          "FOR",
	TokenTypeIf:           "IF",
	TokenTypeNil:          "NIL",
	TokenTypeOr:           "OR",
	TokenTypePrint:        "PRINT",
	TokenTypeReturn:       "RETURN",
	TokenTypeSuper:        "SUPER",
	TokenTypeThis:         "THIS",
	TokenTypeTrue:         "TRUE",
	TokenTypeVar:          "VAR",
	TokenTypeWhile:        "WHILE",
	TokenTypeEOF:          "EOF",
}

func (t TokenType) String() string {
	name, ok := tokenTypeNames[t]
	if !ok {
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
	return name
}

// Reserved words. Lookups are exact and case sensitive.
var keywords = map[string]TokenType{
	"and":    TokenTypeAnd,
	"class":  TokenTypeClass,
	"else":   TokenTypeElse,
	"false":  TokenTypeFalse,
	"fun":    TokenTypeFun,
	"for":    TokenTypeFor,
	"if":     TokenTypeIf,
	"nil":    TokenTypeNil,
	"or":     TokenTypeOr,
	"print":  TokenTypePrint,
	"return": TokenTypeReturn,
	"super":  TokenTypeSuper,
	"this":   TokenTypeThis,
	"true":   TokenTypeTrue,
	"var":    TokenTypeVar,
	"while":  TokenTypeWhile,
}

func keywordType(text string) (TokenType, bool) {
	typ, ok := keywords[text]
	return typ, ok
}

// LiteralValue is the value attached to a literal token. It is one of Text,
// Number or Bool; a token without a value has a nil LiteralValue.
type LiteralValue interface {
	isLiteral()
	String() string
}

type Text string
type Number float64
type Bool bool

func (Text) isLiteral()   {}
func (Number) isLiteral() {}
func (Bool) isLiteral()   {}

func (t Text) String() string {
	return strconv.Quote(string(t))
}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

type charLocation struct {
	line int
	col  int
}

type Token struct {
	Type    TokenType
	Lexeme  string
	Literal LiteralValue
	Line    int
	Col     int
}

func (t Token) String() string {
	literal := "<none>"
	if t.Literal != nil {
		literal = t.Literal.String()
	}
	return fmt.Sprintf("%s %s %s", t.Type, t.Lexeme, literal)
}
