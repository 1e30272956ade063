package lib

import (
	"fmt"
	"strings"
)

// Lexer errors

type InvalidCharacterError struct {
	Char rune
	Line int
	Col  int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("Error at line %d:%d: invalid character %q", e.Line, e.Col, e.Char)
}

type UnterminatedStringError struct {
	Line int
	Col  int
}

func (e *UnterminatedStringError) Error() string {
	return fmt.Sprintf("Error at line %d:%d: unterminated string, looking for \"", e.Line, e.Col)
}

type MalformedNumberError struct {
	Text string
	Line int
	Col  int
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("Error at line %d:%d: malformed number %q", e.Line, e.Col, e.Text)
}

// Parser errors

type UnexpectedTokenError struct {
	Found    Token
	Expected []TokenType
	Line     int
}

func (e *UnexpectedTokenError) Error() string {
	expected := make([]string, 0, len(e.Expected))
	for _, typ := range e.Expected {
		expected = append(expected, typ.String())
	}
	return fmt.Sprintf(
		"Error at line %d: expected %s but got <%s>",
		e.Line,
		strings.Join(expected, " or "),
		tokenString(e.Found))
}

type UnclosedGroupingError struct {
	// Line of the opening parenthesis.
	Line  int
	Found Token
}

func (e *UnclosedGroupingError) Error() string {
	return fmt.Sprintf(
		"Error at line %d: expecting ')' to close group but got <%s>",
		e.Line,
		tokenString(e.Found))
}

type UnexpectedEndError struct {
	Line int
}

func (e *UnexpectedEndError) Error() string {
	return fmt.Sprintf("Error at line %d: expecting expression but found EOF", e.Line)
}

type NestingTooDeepError struct {
	Line  int
	Limit int
}

func (e *NestingTooDeepError) Error() string {
	return fmt.Sprintf("Error at line %d: expression nested deeper than %d levels", e.Line, e.Limit)
}
