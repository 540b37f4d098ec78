// Where: internal/command/error_helpers.go
// What: Shared CLI error output.
// Why: Report every failure in the same format with a non-zero exit code.
package command

import (
	"fmt"
	"io"
)

// exitWithError prints an error message to the output writer and returns
// exit code 1 for CLI error handling.
func exitWithError(out io.Writer, err error) int {
	plainUI(out).Warn(fmt.Sprintf("✗ %v", err))
	return 1
}
