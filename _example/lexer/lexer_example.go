package main

import (
	"fmt"
	"log"

	"github.com/fattreed/lox/lexer"
)

func main() {
	input := `
		// comment
		(1 + 2.5) * -x >= "Hello world!"
		/* block
		   comment */ and nil
	`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		line := tok.Line()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d)\n\t-> %q\n\n", i, tt, line, lexeme)
	}
}
