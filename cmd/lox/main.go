package main

import (
	"os"

	"github.com/fattreed/lox/cmd/lox/cmd"
)

func main() {
	os.Exit(cmd.ExitCode(cmd.Execute()))
}
