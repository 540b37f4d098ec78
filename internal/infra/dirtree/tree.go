// Where: internal/infra/dirtree/tree.go
// What: Tree view of the directory listing.
// Why: Make deep hierarchies easier to scan than a flat list.
package dirtree

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/ddddddO/gtree"
)

// RenderTree draws dirs (as returned by ListDirectories) as a tree whose node
// labels keep the selection index.
func RenderTree(dirs []string) (string, error) {
	if len(dirs) == 0 {
		return "", nil
	}

	root := gtree.NewRoot(fmt.Sprintf("[0] %s", dirs[0]))
	nodes := map[string]*gtree.Node{filepath.Clean(dirs[0]): root}
	for i := 1; i < len(dirs); i++ {
		dir := filepath.Clean(dirs[i])
		parent, ok := nodes[filepath.Dir(dir)]
		if !ok {
			parent = root
		}
		nodes[dir] = parent.Add(fmt.Sprintf("[%d] %s", i, filepath.Base(dir)))
	}

	var buf bytes.Buffer
	if err := gtree.OutputFromRoot(&buf, root); err != nil {
		return "", fmt.Errorf("render directory tree: %w", err)
	}
	return buf.String(), nil
}
