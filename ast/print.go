package ast

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Print displays a human-readable representation of an expression tree
func Print(e Expr) {
	Fprint(os.Stdout, e)
}

// Fprint writes an indented, one node per line representation of e to w
func Fprint(w io.Writer, e Expr) {
	printLevel(w, e, 0)
}

func printLevel(w io.Writer, e Expr, level int) {
	indent := strings.Repeat("    ", level)
	if e == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}

	fmt.Fprintf(w, "%s(%s)", indent, e.Type())
	switch n := e.(type) {
	case *Binary:
		fmt.Fprintf(w, ": %s (%v)\n", n.Operator.Text(), n.Operator)
	case *Unary:
		fmt.Fprintf(w, ": %s (%v)\n", n.Operator.Text(), n.Operator)
	case *Literal:
		fmt.Fprintf(w, ": %s\n", n.Value.Encode())
	case *Grouping, *Ternary:
		fmt.Fprintf(w, "\n")
	default:
		panic("unknown node type")
	}

	for _, child := range Children(e) {
		printLevel(w, child, level+1)
	}
}

// Encode transforms an expression into a fully parenthesized prefix
// representation, e.g. (+ 1 (* 2 3))
func Encode(e Expr) []byte {
	var sb strings.Builder
	encodeNode(&sb, e)
	return []byte(sb.String())
}

func encodeNode(sb *strings.Builder, e Expr) {
	switch n := e.(type) {
	case nil:
		sb.WriteString(":nil")

	case *Literal:
		sb.WriteString(n.Value.Encode())

	case *Grouping:
		parenthesize(sb, "group", n.Inner)

	case *Unary:
		parenthesize(sb, n.Operator.Text(), n.Operand)

	case *Binary:
		parenthesize(sb, n.Operator.Text(), n.Left, n.Right)

	case *Ternary:
		parenthesize(sb, "?:", n.Condition, n.Then, n.Else)

	default:
		panic("unknown node type")
	}
}

func parenthesize(sb *strings.Builder, name string, exprs ...Expr) {
	sb.WriteString("(")
	sb.WriteString(name)
	for _, e := range exprs {
		sb.WriteString(" ")
		encodeNode(sb, e)
	}
	sb.WriteString(")")
}
