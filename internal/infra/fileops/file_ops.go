// Where: internal/infra/fileops/file_ops.go
// What: Shared filesystem operations for directory selection and file generation.
// Why: Keep I/O behavior consistent and report failures as FilesystemError.
package fileops

import (
	"errors"
	"io/fs"
	"os"

	"github.com/poruru/cppgen/internal/domain/scaffold"
)

const (
	dirMode  fs.FileMode = 0o755
	fileMode fs.FileMode = 0o644
)

// MkdirIfAbsent creates path (not its parents). An existing directory is not an error.
func MkdirIfAbsent(path string) error {
	err := os.Mkdir(path, dirMode)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrExist) && DirExists(path) {
		return nil
	}
	return scaffold.NewFilesystemError("create directory", path, err)
}

// RequireDir fails unless path is an existing directory.
func RequireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return scaffold.NewFilesystemError("stat directory", path, err)
	}
	if !info.IsDir() {
		return scaffold.NewFilesystemError("stat directory", path, errors.New("not a directory"))
	}
	return nil
}

// WriteFile creates or truncates path and writes content.
// The parent directory must already exist.
func WriteFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, fileMode)
	if err != nil {
		return scaffold.NewFilesystemError("open file", path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return scaffold.NewFilesystemError("write file", path, err)
	}
	if err := f.Close(); err != nil {
		return scaffold.NewFilesystemError("close file", path, err)
	}
	return nil
}

// FileExists reports whether path names a regular file (or any non-directory).
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists reports whether path names a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
