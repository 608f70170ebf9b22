package parser

import (
	"errors"

	"github.com/fattreed/lox/ast"
	"github.com/fattreed/lox/lexer"
)

// Error messages
const (
	msgExpectExpression = "Expected expression"
	msgExpectRightParen = "Expected ')' after expression"
	msgExpectColon      = "Expected ':' after then branch of conditional expression"
	msgExpectSemicolon  = "Expected ';' after expression"
	msgInvalidLiteral   = "Invalid literal"
)

// Parser builds expression trees out of a sequence of tokens. A Parser is
// not safe for concurrent use.
type Parser struct {
	tokens  []lexer.Token
	current int
}

// New creates a parser over tokens. The sequence is expected to end with
// TokenEOF, as produced by the lexer; one is appended if missing.
func New(tokens []lexer.Token) *Parser {
	if len(tokens) == 0 || !tokens[len(tokens)-1].Is(lexer.TokenEOF) {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line()
		}
		tokens = append(tokens[:len(tokens):len(tokens)], lexer.NewToken(lexer.TokenEOF, "", lexer.NoLiteral, line))
	}
	return &Parser{tokens: tokens}
}

// Parse parses one expression starting at the current token. On failure
// the returned error is a *ParseError and no tree is returned.
func (p *Parser) Parse() (ast.Expr, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	return expr, nil
}

// ParseAll parses expressions separated by ";" until the end of the input.
// After each syntax error the parser synchronizes and keeps going, so every
// error is reported.
func (p *Parser) ParseAll() ([]ast.Expr, []error) {
	exprs := []ast.Expr{}
	var errs []error

	for !p.atEnd() {
		if p.match(lexer.TokenSemicolon) {
			continue
		}

		expr, err := p.expression()
		if err != nil {
			errs = append(errs, err)
			p.Synchronize()
			continue
		}
		exprs = append(exprs, expr)

		if !p.atEnd() && !p.match(lexer.TokenSemicolon) {
			errs = append(errs, newParseError(p.peek(), msgExpectSemicolon))
			p.Synchronize()
		}
	}

	return exprs, errs
}

// Synchronize discards tokens after a syntax error until a probable
// statement boundary: right after a ";" or right before a keyword that
// starts a statement. The token that caused the error is always discarded.
func (p *Parser) Synchronize() {
	p.advance()

	for !p.atEnd() {
		if p.previous().Is(lexer.TokenSemicolon) {
			return
		}

		switch p.peek().Type() {
		case lexer.TokenClass, lexer.TokenFor, lexer.TokenFun, lexer.TokenIf,
			lexer.TokenPrint, lexer.TokenReturn, lexer.TokenVar, lexer.TokenWhile:
			return
		}

		p.advance()
	}
}

// Current returns the token under the cursor
func (p *Parser) Current() lexer.Token {
	return p.peek()
}

func (p *Parser) expression() (ast.Expr, error) {
	return p.ternary()
}

func (p *Parser) ternary() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}

	if !p.match(lexer.TokenQuestion) {
		return expr, nil
	}

	then, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.TokenColon, msgExpectColon); err != nil {
		return nil, err
	}

	els, err := p.ternary()
	if err != nil {
		return nil, err
	}

	return ast.NewTernary(expr, then, els), nil
}

// binary parses a left-associative chain of operand (operator operand)*
func (p *Parser) binary(operand func() (ast.Expr, error), operators ...lexer.TokenType) (ast.Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}

	for p.match(operators...) {
		op := p.previous()

		right, err := operand()
		if err != nil {
			return nil, err
		}

		expr = ast.NewBinary(expr, op, right)
	}

	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	return p.binary(p.comparison, lexer.TokenBangEqual, lexer.TokenEqualEqual)
}

func (p *Parser) comparison() (ast.Expr, error) {
	return p.binary(p.term, lexer.TokenGreater, lexer.TokenGreaterEqual, lexer.TokenLess, lexer.TokenLessEqual)
}

func (p *Parser) term() (ast.Expr, error) {
	return p.binary(p.factor, lexer.TokenMinus, lexer.TokenPlus)
}

func (p *Parser) factor() (ast.Expr, error) {
	return p.binary(p.unary, lexer.TokenSlash, lexer.TokenStar)
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(lexer.TokenBang, lexer.TokenMinus) {
		op := p.previous()

		right, err := p.unary()
		if err != nil {
			return nil, err
		}

		return ast.NewUnary(op, right), nil
	}

	return p.primary()
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(lexer.TokenFalse):
		return ast.NewLiteral(ast.False), nil

	case p.match(lexer.TokenTrue):
		return ast.NewLiteral(ast.True), nil

	case p.match(lexer.TokenNil):
		return ast.NewLiteral(ast.Nil), nil

	case p.match(lexer.TokenNumber, lexer.TokenString):
		tok := p.previous()

		value, err := ast.ValueFromLiteral(tok.Literal())
		if err != nil {
			return nil, newParseError(tok, msgInvalidLiteral)
		}
		return ast.NewLiteral(value), nil

	case p.match(lexer.TokenLeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}

		if _, err := p.consume(lexer.TokenRightParen, msgExpectRightParen); err != nil {
			return nil, err
		}
		return ast.NewGrouping(expr), nil
	}

	return nil, newParseError(p.peek(), msgExpectExpression)
}

func (p *Parser) consume(tt lexer.TokenType, message string) (lexer.Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return lexer.Token{}, newParseError(p.peek(), message)
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(tt lexer.TokenType) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Is(tt)
}

func (p *Parser) advance() lexer.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) atEnd() bool {
	return p.peek().Is(lexer.TokenEOF)
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}

// Parse takes an array of bytes and returns the expression within it. The
// error is a *ParseError on syntax errors. Lexical errors are returned along
// with the tree when the expression could still be parsed.
func Parse(in []byte) (ast.Expr, error) {
	tokens, lexErr := lexer.Tokenize(in)

	expr, err := New(tokens).Parse()
	if err != nil {
		if lexErr != nil {
			return nil, errors.Join(err, lexErr)
		}
		return nil, err
	}

	return expr, lexErr
}
