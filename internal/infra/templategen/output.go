// Where: internal/infra/templategen/output.go
// What: Human-readable summaries of a generation run.
// Why: Print one confirmation line naming every file written.
package templategen

import (
	"fmt"
	"strings"
)

// Confirmation returns "Files 'a', 'b' have been generated." or, for three
// files, "Files 'a', 'b', and 'c' have been generated.".
func Confirmation(result Result) string {
	quoted := make([]string, len(result.Files))
	for i, path := range result.Files {
		quoted[i] = "'" + path + "'"
	}

	var list string
	switch len(quoted) {
	case 0:
		return "No files have been generated."
	case 1:
		list = quoted[0]
	case 2:
		list = strings.Join(quoted, ", ")
	default:
		list = strings.Join(quoted[:len(quoted)-1], ", ") + ", and " + quoted[len(quoted)-1]
	}
	return fmt.Sprintf("Files %s have been generated.", list)
}
