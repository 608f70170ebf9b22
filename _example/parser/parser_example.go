package main

import (
	"fmt"
	"log"

	"github.com/fattreed/lox/ast"
	"github.com/fattreed/lox/parser"
)

func main() {
	input := `1 + 2 * (3 - 4) == !false ? "yes" : "no"`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(root)
	fmt.Printf("%s\n", ast.Encode(root))
}
