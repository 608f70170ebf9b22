// Package lox is the front end of the lox toolchain: it scans source text
// into tokens and parses tokens into expression trees.
package lox

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fattreed/lox/ast"
	"github.com/fattreed/lox/lexer"
	"github.com/fattreed/lox/parser"
)

// Reader reads one source blob at a time from an io.Reader
type Reader struct {
	r io.Reader
}

// NewReader creates a Reader
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (r *Reader) read() ([]byte, error) {
	in, err := io.ReadAll(r.r)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	return in, nil
}

// Tokenize reads the whole input and scans it. See lexer.Tokenize.
func (r *Reader) Tokenize() ([]lexer.Token, error) {
	in, err := r.read()
	if err != nil {
		return nil, err
	}
	return lexer.Tokenize(in)
}

// Parse reads the whole input and parses one expression. See parser.Parse.
func (r *Reader) Parse() (ast.Expr, error) {
	in, err := r.read()
	if err != nil {
		return nil, err
	}
	return parser.Parse(in)
}

// Tokenize scans in and returns its tokens and any lexical error
func Tokenize(in []byte) ([]lexer.Token, error) {
	return NewReader(bytes.NewReader(in)).Tokenize()
}

// Parse parses the expression in in
func Parse(in []byte) (ast.Expr, error) {
	return NewReader(bytes.NewReader(in)).Parse()
}
