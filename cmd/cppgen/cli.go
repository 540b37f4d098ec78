// Where: cmd/cppgen/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/poruru/cppgen/internal/command"
	"github.com/poruru/cppgen/internal/infra/interaction"
)

var (
	getwd      = os.Getwd
	isTerminal = interaction.IsTerminal
)

// buildDependencies constructs the runtime dependencies required by the CLI.
// Prompts use huh only when both stdin and stdout are terminals.
func buildDependencies() (command.Dependencies, error) {
	if _, err := getwd(); err != nil {
		return command.Dependencies{}, err
	}
	return command.Dependencies{
		Out:    os.Stdout,
		ErrOut: os.Stderr,
		In:     os.Stdin,
		IsTTY: func() bool {
			return isTerminal(os.Stdin) && isTerminal(os.Stdout)
		},
		Getwd: getwd,
	}, nil
}
