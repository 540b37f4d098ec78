// Where: internal/command/output.go
// What: Output helpers for command adapters.
// Why: Centralize UserInterface construction.
package command

import (
	"io"
	"os"

	"github.com/poruru/cppgen/internal/constants"
	"github.com/poruru/cppgen/internal/infra/interaction"
	"github.com/poruru/cppgen/internal/infra/ui"
)

func plainUI(out io.Writer) ui.UserInterface {
	return ui.NewPlainUI(out)
}

// terminalUI decorates output only when it goes to a terminal.
func terminalUI(deps Dependencies, noColor bool) ui.UserInterface {
	if !deps.IsTTY() {
		return plainUI(deps.Out)
	}
	colour := !noColor && os.Getenv(constants.EnvNoColor) == ""
	if file, ok := deps.Out.(*os.File); ok && !interaction.IsTerminal(file) {
		colour = false
	}
	return ui.NewTerminalUI(deps.Out, ui.Options{Emoji: true, Color: colour})
}
