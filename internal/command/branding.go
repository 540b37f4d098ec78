// Where: internal/command/branding.go
// What: Brand-aware CLI naming.
// Why: Keep user-facing command names consistent when the binary is renamed.
package command

import (
	"os"
	"strings"

	"github.com/poruru/cppgen/internal/constants"
	"github.com/poruru/cppgen/internal/meta"
)

func cliName() string {
	name := strings.TrimSpace(os.Getenv(constants.EnvCLICmd))
	if name == "" {
		name = strings.TrimSpace(meta.Slug)
	}
	if name == "" {
		name = "cppgen"
	}
	return name
}
