// Where: internal/infra/templategen/generate.go
// What: Render a scaffold request and write the files to disk.
// Why: Keep the only file-writing step of the generator in one place.
package templategen

import (
	"log/slog"

	"github.com/poruru/cppgen/internal/domain/scaffold"
	"github.com/poruru/cppgen/internal/infra/fileops"
)

// Result lists the paths written, in write order.
type Result struct {
	Files []string
}

// GenerateOptions configures Generate behavior.
type GenerateOptions struct {
	Logger *slog.Logger
}

// Generate writes the declaration, definition, and (when requested) template
// file for req. Existing files are truncated. A failed write aborts the batch
// and leaves earlier files in place; the returned Result lists what was written.
func Generate(req scaffold.Request, opts GenerateOptions) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	files, err := scaffold.Render(req)
	if err != nil {
		return Result{}, err
	}
	if err := fileops.RequireDir(req.Directory); err != nil {
		return Result{}, err
	}

	var result Result
	for _, file := range files {
		path := req.Path(file.Name)
		if fileops.FileExists(path) {
			logger.Info("overwriting existing file", "path", path)
		}
		if err := fileops.WriteFile(path, file.Content); err != nil {
			logger.Error("write failed", "kind", file.Kind, "path", path, "error", err)
			return result, err
		}
		logger.Debug("wrote file", "kind", file.Kind, "path", path, "bytes", len(file.Content))
		result.Files = append(result.Files, path)
	}
	return result, nil
}
