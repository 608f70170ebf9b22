package lexer

import (
	"fmt"
	"strconv"
)

// LiteralKind tells which kind of value a Literal carries
type LiteralKind uint8

// Literal kinds. LiteralNone is the zero value and means that no literal is
// attached to the token.
const (
	LiteralNone LiteralKind = iota
	LiteralString
	LiteralNumber
	LiteralBool
	LiteralNil
)

var literalKindNames = map[LiteralKind]string{
	LiteralNone:   "none",
	LiteralString: "string",
	LiteralNumber: "number",
	LiteralBool:   "bool",
	LiteralNil:    "nil",
}

func (k LiteralKind) String() string {
	return literalKindNames[k]
}

// Literal is the value carried by a token, if any
type Literal struct {
	kind LiteralKind

	s string
	n float64
	b bool
}

// NoLiteral is attached to punctuation and keyword tokens
var NoLiteral = Literal{}

// NewStringLiteral creates a string literal
func NewStringLiteral(s string) Literal {
	return Literal{kind: LiteralString, s: s}
}

// NewNumberLiteral creates a number literal
func NewNumberLiteral(n float64) Literal {
	return Literal{kind: LiteralNumber, n: n}
}

// NewBoolLiteral creates a boolean literal
func NewBoolLiteral(b bool) Literal {
	return Literal{kind: LiteralBool, b: b}
}

// NewNilLiteral creates a nil literal
func NewNilLiteral() Literal {
	return Literal{kind: LiteralNil}
}

// Kind returns the kind of the literal
func (l Literal) Kind() LiteralKind {
	return l.kind
}

// Value returns the literal as a string, float64, bool or nil
func (l Literal) Value() interface{} {
	switch l.kind {
	case LiteralString:
		return l.s
	case LiteralNumber:
		return l.n
	case LiteralBool:
		return l.b
	}
	return nil
}

// IsNone returns true if no literal is attached
func (l Literal) IsNone() bool {
	return l.kind == LiteralNone
}

func (l Literal) String() string {
	switch l.kind {
	case LiteralString:
		return strconv.Quote(l.s)
	case LiteralNumber:
		return strconv.FormatFloat(l.n, 'g', -1, 64)
	case LiteralBool:
		return strconv.FormatBool(l.b)
	case LiteralNil:
		return "nil"
	}
	return "none"
}

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt      TokenType
	lexeme  string
	literal Literal

	line int
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, lexeme string, literal Literal, line int) Token {
	return Token{
		tt:      tt,
		lexeme:  lexeme,
		literal: literal,
		line:    line,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Line returns the 1-based line the lexical unit was found on
func (t Token) Line() int {
	return t.line
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Literal returns the literal value attached to the lexical unit
func (t Token) Literal() Literal {
	return t.literal
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	if t.literal.IsNone() {
		return fmt.Sprintf("(:%v %q [%d])", t.tt, t.lexeme, t.line)
	}
	return fmt.Sprintf("(:%v %q %v [%d])", t.tt, t.lexeme, t.literal, t.line)
}
