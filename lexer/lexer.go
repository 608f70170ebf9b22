package lexer

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"unicode/utf8"
)

// Errors reported through diagnostics
var (
	ErrIllegalCharacter    = errors.New("illegal character")
	ErrUnterminatedString  = errors.New("unterminated string")
	ErrUnterminatedComment = errors.New("unterminated block comment")
)

// Diagnostic is a non-fatal lexical error found while scanning
type Diagnostic struct {
	Line    int
	Message string

	err error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s at line %d", d.Message, d.Line)
}

// Unwrap returns the error class of the diagnostic, one of
// ErrIllegalCharacter, ErrUnterminatedString or ErrUnterminatedComment.
func (d Diagnostic) Unwrap() error {
	return d.err
}

// ErrorHandler is called for each diagnostic as soon as it is found
type ErrorHandler func(d Diagnostic)

type lexState func(*Scanner) lexState

// Scanner turns a source buffer into a sequence of tokens. A Scanner must
// not be used from more than one goroutine.
type Scanner struct {
	source []byte

	start   int
	current int
	line    int

	tokens      []Token
	diagnostics []Diagnostic

	// Error is called for every diagnostic. If nil, diagnostics are written
	// to the standard logger.
	Error ErrorHandler
}

// New initializes a Scanner over the given source
func New(source []byte) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
	}
}

// Scan reads the whole source and returns its tokens. The result always
// ends with exactly one TokenEOF. Lexical errors don't stop the scan, they
// are reported through the Error handler and kept in Diagnostics.
func (s *Scanner) Scan() []Token {
	s.start, s.current, s.line = 0, 0, 1
	s.tokens = []Token{}
	s.diagnostics = nil

	for state := lexDefaultState; state != nil; {
		state = state(s)
	}

	s.tokens = append(s.tokens, NewToken(TokenEOF, "", NoLiteral, s.line))
	return s.tokens
}

// Diagnostics returns the lexical errors found by the last call to Scan
func (s *Scanner) Diagnostics() []Diagnostic {
	return s.diagnostics
}

func (s *Scanner) atEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) advance() byte {
	b := s.source[s.current]
	s.current++
	return b
}

func (s *Scanner) match(expected byte) bool {
	if s.atEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) text() string {
	return string(s.source[s.start:s.current])
}

func (s *Scanner) emit(tt TokenType, literal Literal) {
	s.tokens = append(s.tokens, NewToken(tt, s.text(), literal, s.line))
}

func (s *Scanner) report(err error, message string) {
	d := Diagnostic{Line: s.line, Message: message, err: err}
	s.diagnostics = append(s.diagnostics, d)

	if s.Error != nil {
		s.Error(d)
		return
	}
	log.Printf("lexer error: %v", d)
}

func lexDefaultState(s *Scanner) lexState {
	if s.atEnd() {
		return nil
	}

	s.start = s.current
	b := s.advance()

	if tt, ok := singleCharTokens[b]; ok {
		return lexEmit(tt)
	}

	if variants, ok := operatorTokens[b]; ok {
		if s.match('=') {
			return lexEmit(variants[1])
		}
		return lexEmit(variants[0])
	}

	switch {
	case b == '/':
		if s.match('/') {
			return lexLineComment
		}
		if s.match('*') {
			return lexBlockComment
		}
		return lexEmit(TokenSlash)

	case isWhitespace(b):
		return lexDefaultState

	case b == '\n':
		s.line++
		return lexDefaultState

	case b == '"':
		return lexString

	case isDigit(b):
		return lexNumber

	case isAlpha(b):
		return lexIdentifier
	}

	return lexIllegal
}

func lexEmit(tt TokenType) lexState {
	return func(s *Scanner) lexState {
		s.emit(tt, NoLiteral)
		return lexDefaultState
	}
}

func lexIllegal(s *Scanner) lexState {
	// skip the whole rune so a multi-byte character is reported once
	r, size := utf8.DecodeRune(s.source[s.start:])
	s.current = s.start + size

	s.report(ErrIllegalCharacter, fmt.Sprintf("illegal character %q", r))
	return lexDefaultState
}

func lexLineComment(s *Scanner) lexState {
	for s.peek() != '\n' && !s.atEnd() {
		s.advance()
	}
	return lexDefaultState
}

// block comments do not nest, the first "*/" closes the comment
func lexBlockComment(s *Scanner) lexState {
	for !s.atEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.current += 2
			return lexDefaultState
		}
		if s.advance() == '\n' {
			s.line++
		}
	}

	s.report(ErrUnterminatedComment, "unterminated block comment")
	return nil
}

func lexString(s *Scanner) lexState {
	for s.peek() != '"' && !s.atEnd() {
		if s.advance() == '\n' {
			s.line++
		}
	}

	if s.atEnd() {
		s.report(ErrUnterminatedString, "unterminated string")
		s.emit(TokenString, NewStringLiteral(string(s.source[s.start+1:s.current])))
		return nil
	}

	// closing quote
	s.advance()

	s.emit(TokenString, NewStringLiteral(string(s.source[s.start+1:s.current-1])))
	return lexDefaultState
}

func lexNumber(s *Scanner) lexState {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	f64, err := strconv.ParseFloat(s.text(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic(fmt.Sprintf("lexer: malformed number %q: %v", s.text(), err))
	}

	s.emit(TokenNumber, NewNumberLiteral(f64))
	return lexDefaultState
}

func lexIdentifier(s *Scanner) lexState {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}

	if tt, ok := keywords[s.text()]; ok {
		s.emit(tt, NoLiteral)
		return lexDefaultState
	}

	s.emit(TokenIdentifier, NoLiteral)
	return lexDefaultState
}

// Tokenize takes an array of bytes and returns all the tokens within it.
// Tokens are always returned; the error joins every diagnostic found, or is
// nil if the input is lexically valid.
func Tokenize(in []byte) ([]Token, error) {
	s := New(in)
	s.Error = func(Diagnostic) {}

	tokens := s.Scan()

	var errs []error
	for _, d := range s.Diagnostics() {
		errs = append(errs, d)
	}
	return tokens, errors.Join(errs...)
}
