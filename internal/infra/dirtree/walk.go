// Where: internal/infra/dirtree/walk.go
// What: Recursive directory enumeration for the target picker.
// Why: Give every directory under the start path a stable index.
package dirtree

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/poruru/cppgen/internal/domain/scaffold"
)

// WalkDirectories yields start and every directory below it in pre-order:
// parents before children, siblings in lexical order. Symlinked children are
// not followed. A failure on start itself is yielded once and ends the
// sequence; subdirectories that cannot be read are skipped, so they take no
// index.
func WalkDirectories(start string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		info, err := os.Stat(start)
		if err != nil {
			yield("", scaffold.NewFilesystemError("read directory", start, err))
			return
		}
		if !info.IsDir() {
			yield("", scaffold.NewFilesystemError("read directory", start, errors.New("not a directory")))
			return
		}
		entries, err := os.ReadDir(start)
		if err != nil {
			yield("", scaffold.NewFilesystemError("read directory", start, err))
			return
		}
		if !yield(start, nil) {
			return
		}
		walkEntries(start, entries, yield)
	}
}

func walkEntries(dir string, entries []fs.DirEntry, yield func(string, error) bool) bool {
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		child := filepath.Join(dir, entry.Name())
		children, err := os.ReadDir(child)
		if err != nil {
			// Directories that cannot be scanned are left out entirely.
			continue
		}
		if !yield(child, nil) {
			return false
		}
		if !walkEntries(child, children, yield) {
			return false
		}
	}
	return true
}

// ListDirectories collects WalkDirectories into a slice; index 0 is start.
func ListDirectories(start string) ([]string, error) {
	var dirs []string
	for dir, err := range WalkDirectories(start) {
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, dir)
	}
	return dirs, nil
}

// FormatListing renders one "[i] path" line per directory.
func FormatListing(dirs []string) []string {
	lines := make([]string, len(dirs))
	for i, dir := range dirs {
		lines[i] = fmt.Sprintf("[%d] %s", i, dir)
	}
	return lines
}
