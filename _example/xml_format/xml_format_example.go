package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/fattreed/lox/ast"
	"github.com/fattreed/lox/parser"
)

func printTree(node ast.Expr) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node ast.Expr, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)

	switch n := node.(type) {
	case *ast.Literal:
		fmt.Printf("%s<%s>%v</%s>\n", indent, n.Type(), n.Value, n.Type())
		return
	case *ast.Binary:
		fmt.Printf("%s<%s op=%q>\n", indent, n.Type(), n.Operator.Text())
	case *ast.Unary:
		fmt.Printf("%s<%s op=%q>\n", indent, n.Type(), n.Operator.Text())
	default:
		fmt.Printf("%s<%s>\n", indent, n.Type())
	}

	for _, child := range ast.Children(node) {
		printIndentedTree(child, indentationLevel+1)
	}
	fmt.Printf("%s</%s>\n", indent, node.Type())
}

func main() {
	input := `(1 + 2) * 3 > 4 ? "big" : -5`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	printTree(root)
}
