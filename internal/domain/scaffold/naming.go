// Where: internal/domain/scaffold/naming.go
// What: Identifier derivations for generated C++ files.
// Why: Keep class names and include guards a pure function of the filename.
package scaffold

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/poruru/cppgen/internal/meta"
)

// ClassName converts an underscore-separated filename to CamelCase.
// Each segment keeps its first rune upper-cased and the rest lower-cased,
// so "my_widget" and "MY_WIDGET" both become "MyWidget".
func ClassName(filename string) string {
	var b strings.Builder
	for _, segment := range strings.Split(filename, "_") {
		b.WriteString(capitalize(segment))
	}
	return b.String()
}

// IncludeGuard returns the preprocessor guard token for the declaration file.
func IncludeGuard(filename string) string {
	return strings.ToUpper(filename) + meta.IncludeGuardSuffix
}

func capitalize(segment string) string {
	if segment == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(segment)
	return string(unicode.ToUpper(first)) + strings.ToLower(segment[size:])
}
