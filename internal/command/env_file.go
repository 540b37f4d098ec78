// Where: internal/command/env_file.go
// What: .env loading ahead of flag parsing.
// Why: Allow CPPGEN_* defaults per project without exporting them in the shell.
package command

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/poruru/cppgen/internal/infra/config"
	"github.com/poruru/cppgen/internal/infra/ui"
)

// loadEnvFile loads --env-file when given (failure is an error) or a .env in
// workDir when present (failure is a warning). Relative paths resolve against
// workDir. Variables already set in the environment win.
func loadEnvFile(args []string, workDir string, warn ui.UserInterface) error {
	if path, ok := config.ScanFlag(args, "--env-file"); ok && path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(workDir, path)
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file %s: %w", path, err)
		}
		return nil
	}
	path := filepath.Join(workDir, ".env")
	if _, err := os.Stat(path); err == nil {
		if err := godotenv.Load(path); err != nil {
			warn.Warn(fmt.Sprintf("Warning: failed to load %s: %v", path, err))
		}
	}
	return nil
}
