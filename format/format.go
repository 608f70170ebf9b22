// Package format renders tokens, expression trees and diagnostics for the
// command line.
package format

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/fattreed/lox/ast"
	"github.com/fattreed/lox/config"
	"github.com/fattreed/lox/lexer"
)

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	subtle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	treeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("44"))
)

// Printer writes tokens, trees and errors to w in one of the supported
// formats. In YAML format every Tokens or Tree call is one document of a
// single stream; Close must be called to finish it.
type Printer struct {
	w      io.Writer
	format string
	color  bool

	enc *yaml.Encoder
}

// NewPrinter creates a Printer. format is config.FormatText or
// config.FormatYAML.
func NewPrinter(w io.Writer, format string, color bool) *Printer {
	p := &Printer{w: w, format: format, color: color}
	if format == config.FormatYAML {
		p.enc = yaml.NewEncoder(w)
		p.enc.SetIndent(2)
	}
	return p
}

// Close flushes the YAML stream, if any
func (p *Printer) Close() error {
	if p.enc == nil {
		return nil
	}
	enc := p.enc
	p.enc = nil
	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing yaml stream: %w", err)
	}
	return nil
}

type tokenDoc struct {
	Type    string      `yaml:"type"`
	Lexeme  string      `yaml:"lexeme"`
	Literal interface{} `yaml:"literal,omitempty"`
	Line    int         `yaml:"line"`
}

type nodeDoc struct {
	Node     string    `yaml:"node"`
	Operator string    `yaml:"operator,omitempty"`
	Value    string    `yaml:"value,omitempty"`
	Line     int       `yaml:"line,omitempty"`
	Children []nodeDoc `yaml:"children,omitempty"`
}

func newNodeDoc(e ast.Expr) nodeDoc {
	doc := nodeDoc{Node: e.Type().String()}

	switch n := e.(type) {
	case *ast.Binary:
		doc.Operator, doc.Line = n.Operator.Text(), n.Operator.Line()
	case *ast.Unary:
		doc.Operator, doc.Line = n.Operator.Text(), n.Operator.Line()
	case *ast.Literal:
		doc.Value = n.Value.Encode()
	}

	for _, child := range ast.Children(e) {
		doc.Children = append(doc.Children, newNodeDoc(child))
	}
	return doc
}

func (p *Printer) encodeYAML(v interface{}) error {
	if p.enc == nil {
		return errors.New("yaml stream is closed")
	}
	if err := p.enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return nil
}

// Tokens writes one token per line, or a YAML sequence of tokens
func (p *Printer) Tokens(tokens []lexer.Token) error {
	if p.format == config.FormatYAML {
		docs := make([]tokenDoc, 0, len(tokens))
		for _, tok := range tokens {
			docs = append(docs, tokenDoc{
				Type:    tok.Type().String(),
				Lexeme:  tok.Text(),
				Literal: tok.Literal().Value(),
				Line:    tok.Line(),
			})
		}
		return p.encodeYAML(docs)
	}

	for _, tok := range tokens {
		if _, err := fmt.Fprintln(p.w, tok); err != nil {
			return err
		}
	}
	return nil
}

// Tree writes the parenthesized form of an expression, or its YAML tree
func (p *Printer) Tree(e ast.Expr) error {
	if p.format == config.FormatYAML {
		return p.encodeYAML(newNodeDoc(e))
	}

	_, err := fmt.Fprintln(p.w, p.style(treeStyle, string(ast.Encode(e))))
	return err
}

// Error writes a diagnostic or syntax error
func (p *Printer) Error(err error) error {
	_, werr := fmt.Fprintln(p.w, p.style(errorStyle, err.Error()))
	return werr
}

// Note writes secondary information such as banners
func (p *Printer) Note(s string) error {
	_, err := fmt.Fprintln(p.w, p.style(subtle, s))
	return err
}

func (p *Printer) style(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}
