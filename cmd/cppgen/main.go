// Where: cmd/cppgen/main.go
// What: CLI entrypoint.
// Why: Run the generator with process-level dependencies.
package main

import (
	"fmt"
	"os"

	"github.com/poruru/cppgen/internal/command"
)

func main() {
	deps, err := buildDependencies()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(command.Run(os.Args[1:], deps))
}
