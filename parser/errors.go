package parser

import (
	"errors"
	"fmt"

	"github.com/fattreed/lox/lexer"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")
)

// ParseError is a syntax error located at the token that caused it
type ParseError struct {
	Token   lexer.Token
	Message string
}

func newParseError(tok lexer.Token, message string) *ParseError {
	return &ParseError{Token: tok, Message: message}
}

func (e *ParseError) Error() string {
	if e.Token.Is(lexer.TokenEOF) {
		return fmt.Sprintf("%s at end.", e.Message)
	}
	return fmt.Sprintf("%s at line %d", e.Message, e.Token.Line())
}

// Unwrap returns ErrUnexpectedEOF if the error was found at the end of the
// input, ErrUnexpectedToken otherwise.
func (e *ParseError) Unwrap() error {
	if e.Token.Is(lexer.TokenEOF) {
		return ErrUnexpectedEOF
	}
	return ErrUnexpectedToken
}
