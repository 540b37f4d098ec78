// Where: internal/infra/dirtree/selection.go
// What: Resolve a user's directory choice to a target path.
// Why: Accept either a listed index or the "new" token for a fresh child folder.
package dirtree

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/poruru/cppgen/internal/domain/scaffold"
	"github.com/poruru/cppgen/internal/infra/fileops"
	"github.com/poruru/cppgen/internal/meta"
)

// FolderPrompt asks for the name of a new folder.
type FolderPrompt func() (string, error)

// SelectOptions tunes ResolveSelection.
type SelectOptions struct {
	// DryRun returns the new folder path without creating it.
	DryRun bool
}

// IsNewToken reports whether input asks for a new folder.
func IsNewToken(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), meta.NewFolderToken)
}

// ResolveSelection maps input to a directory. "new" (any case) prompts for a
// folder name and creates start/<name> if absent; anything else must be an
// index into dirs.
func ResolveSelection(
	start string,
	dirs []string,
	input string,
	askFolder FolderPrompt,
	opts SelectOptions,
) (string, error) {
	if IsNewToken(input) {
		return resolveNewFolder(start, askFolder, opts)
	}

	trimmed := strings.TrimSpace(input)
	index, err := strconv.Atoi(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a number", scaffold.ErrInvalidSelection, trimmed)
	}
	if index < 0 || index >= len(dirs) {
		return "", fmt.Errorf(
			"%w: index %d out of range (0-%d)",
			scaffold.ErrInvalidSelection,
			index,
			len(dirs)-1,
		)
	}
	return dirs[index], nil
}

func resolveNewFolder(start string, askFolder FolderPrompt, opts SelectOptions) (string, error) {
	if askFolder == nil {
		return "", fmt.Errorf("%w: folder name is required", scaffold.ErrEmptyInput)
	}
	name, err := askFolder()
	if err != nil {
		return "", fmt.Errorf("read folder name: %w", err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: folder name is required", scaffold.ErrEmptyInput)
	}

	target := filepath.Join(start, name)
	if opts.DryRun {
		return target, nil
	}
	if err := fileops.MkdirIfAbsent(target); err != nil {
		return "", err
	}
	return target, nil
}
