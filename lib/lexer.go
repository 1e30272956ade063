package lib

import (
	"strconv"
)

type charInfo struct {
	ch       rune
	location charLocation
}

// Scan converts source into tokens. The result always ends with an EOF token.
// The first lexical error aborts the whole scan and no tokens are returned.
func Scan(source string) ([]Token, error) {
	tokens := []Token{}
	err := lex(source, func(t Token) {
		tokens = append(tokens, t)
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func lex(source string, emit func(Token)) error {
	l := newLexer(source, emit)
	return l.scan()
}

type lexer struct {
	source           []rune
	length           int
	currentCharIndex int
	currentLocation  charLocation
	tokenStartIndex  int
	tokenLocation    charLocation
	emitCallback     func(Token)
}

func newLexer(source string, emit func(Token)) *lexer {
	runes := []rune(source)
	return &lexer{
		source:           runes,
		length:           len(runes),
		currentCharIndex: 0,
		currentLocation:  charLocation{line: 1, col: 1},
		tokenStartIndex:  0,
		tokenLocation:    charLocation{line: 1, col: 1},
		emitCallback:     emit,
	}
}

func (l *lexer) emit(tokType TokenType, literal LiteralValue) {
	l.emitCallback(Token{
		Type:    tokType,
		Lexeme:  l.lexeme(),
		Literal: literal,
		Line:    l.tokenLocation.line,
		Col:     l.tokenLocation.col,
	})
}

func (l *lexer) lexeme() string {
	return string(l.source[l.tokenStartIndex:l.currentCharIndex])
}

func (l *lexer) peek(offset int) (charInfo, bool) {
	i := l.currentCharIndex + offset
	if i >= l.length {
		return charInfo{}, false
	}
	return charInfo{ch: l.source[i], location: l.currentLocation}, true
}

func (l *lexer) advance() (charInfo, bool) {
	info, ok := l.peek(0)
	if !ok {
		return info, false
	}
	l.currentCharIndex++
	if info.ch == '\n' {
		l.currentLocation.line++
		l.currentLocation.col = 1
	} else {
		l.currentLocation.col++
	}
	return info, true
}

// match consumes the next character only if it is expected.
func (l *lexer) match(expected rune) bool {
	next, ok := l.peek(0)
	if !ok || next.ch != expected {
		return false
	}
	_, _ = l.advance()
	return true
}

func (l *lexer) resetToken() {
	l.tokenLocation = l.currentLocation
	l.tokenStartIndex = l.currentCharIndex
}

func (l *lexer) scan() error {
	for {
		l.resetToken()
		more, err := l.next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	l.emitCallback(Token{
		Type: TokenTypeEOF,
		Line: l.currentLocation.line,
		Col:  l.currentLocation.col,
	})
	return nil
}

func (l *lexer) next() (bool, error) {
	chInfo, ok := l.advance()
	if !ok {
		return false, nil
	}
	ch := chInfo.ch

	switch ch {
	case '(':
		l.emit(TokenTypeLeftParen, nil)
	case ')':
		l.emit(TokenTypeRightParen, nil)
	case '{':
		l.emit(TokenTypeLeftBrace, nil)
	case '}':
		l.emit(TokenTypeRightBrace, nil)
	case ',':
		l.emit(TokenTypeComma, nil)
	case '.':
		l.emit(TokenTypeDot, nil)
	case ';':
		l.emit(TokenTypeSemicolon, nil)
	case '*':
		l.emitOrEqual(TokenTypeStar, TokenTypeStarEqual)
	case '+':
		l.emitOrEqual(TokenTypePlus, TokenTypePlusEqual)
	case '-':
		l.emitOrEqual(TokenTypeMinus, TokenTypeMinusEqual)
	case '!':
		l.emitOrEqual(TokenTypeBang, TokenTypeBangEqual)
	case '=':
		l.emitOrEqual(TokenTypeEqual, TokenTypeEqualEqual)
	case '<':
		l.emitOrEqual(TokenTypeLess, TokenTypeLessEqual)
	case '>':
		l.emitOrEqual(TokenTypeGreater, TokenTypeGreaterEqual)
	case '/':
		if l.match('/') {
			l.skipComment()
		} else {
			l.emitOrEqual(TokenTypeSlash, TokenTypeSlashEqual)
		}
	case ' ', '\t', '\r', '\n':
		// advance already tracks lines
	case '"':
		return true, l.scanString()
	default:
		if isDigit(ch) {
			return true, l.scanNumber()
		}
		if isIdentifierStart(ch) {
			l.scanIdentifier()
			return true, nil
		}
		return false, &InvalidCharacterError{
			Char: ch,
			Line: chInfo.location.line,
			Col:  chInfo.location.col,
		}
	}

	return true, nil
}

func (l *lexer) emitOrEqual(bare TokenType, withEqual TokenType) {
	if l.match('=') {
		l.emit(withEqual, nil)
	} else {
		l.emit(bare, nil)
	}
}

// skipComment stops before the newline so it still advances the line.
func (l *lexer) skipComment() {
	for {
		next, ok := l.peek(0)
		if !ok || next.ch == '\n' {
			return
		}
		_, _ = l.advance()
	}
}

// scanString reads after the opening quote. A backslash keeps the following
// character from closing the string but is left in the literal as written.
func (l *lexer) scanString() error {
	escaping := false
	start := l.currentCharIndex

	for {
		current, ok := l.advance()
		if !ok {
			return &UnterminatedStringError{
				Line: l.tokenLocation.line,
				Col:  l.tokenLocation.col,
			}
		}

		if escaping {
			escaping = false
			continue
		}
		if current.ch == '\\' {
			escaping = true
			continue
		}
		if current.ch == '"' {
			break
		}
	}

	text := string(l.source[start : l.currentCharIndex-1])
	l.emit(TokenTypeString, Text(text))
	return nil
}

func (l *lexer) scanNumber() error {
	l.skipDigits()

	// A '.' is only part of the number when a digit follows it.
	dot, hasDot := l.peek(0)
	after, hasAfter := l.peek(1)
	if hasDot && dot.ch == '.' && hasAfter && isDigit(after.ch) {
		_, _ = l.advance()
		l.skipDigits()
	}

	text := l.lexeme()
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return &MalformedNumberError{
			Text: text,
			Line: l.tokenLocation.line,
			Col:  l.tokenLocation.col,
		}
	}
	l.emit(TokenTypeNumber, Number(value))
	return nil
}

func (l *lexer) skipDigits() {
	for {
		next, ok := l.peek(0)
		if !ok || !isDigit(next.ch) {
			return
		}
		_, _ = l.advance()
	}
}

func (l *lexer) scanIdentifier() {
	for {
		next, ok := l.peek(0)
		if !ok || !isIdentifierChar(next.ch) {
			break
		}
		_, _ = l.advance()
	}

	text := l.lexeme()
	if tokType, ok := keywordType(text); ok {
		l.emit(tokType, nil)
		return
	}
	l.emit(TokenTypeIdentifier, Text(text))
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentifierStart(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentifierChar(ch rune) bool {
	return isIdentifierStart(ch) || isDigit(ch)
}
