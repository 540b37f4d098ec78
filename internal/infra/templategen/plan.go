// Where: internal/infra/templategen/plan.go
// What: Dry-run plan rendered as YAML.
// Why: Show what would be written without touching the filesystem.
package templategen

import (
	"fmt"

	"github.com/poruru/cppgen/internal/domain/scaffold"
	"gopkg.in/yaml.v3"
)

// Plan describes the files a request would produce.
type Plan struct {
	Directory string        `yaml:"directory"`
	ClassName string        `yaml:"class_name"`
	Guard     string        `yaml:"include_guard"`
	Files     []PlannedFile `yaml:"files"`
}

// PlannedFile is one entry of a Plan.
type PlannedFile struct {
	Path  string            `yaml:"path"`
	Kind  scaffold.FileKind `yaml:"kind"`
	Bytes int               `yaml:"bytes"`
}

// BuildPlan renders req and returns the plan without writing anything.
func BuildPlan(req scaffold.Request) (Plan, error) {
	files, err := scaffold.Render(req)
	if err != nil {
		return Plan{}, err
	}
	plan := Plan{
		Directory: req.Directory,
		ClassName: req.ClassName(),
		Guard:     req.IncludeGuard(),
		Files:     make([]PlannedFile, 0, len(files)),
	}
	for _, file := range files {
		plan.Files = append(plan.Files, PlannedFile{
			Path:  req.Path(file.Name),
			Kind:  file.Kind,
			Bytes: len(file.Content),
		})
	}
	return plan, nil
}

// EncodePlan marshals plan as YAML.
func EncodePlan(plan Plan) (string, error) {
	payload, err := yaml.Marshal(&plan)
	if err != nil {
		return "", fmt.Errorf("encode plan: %w", err)
	}
	return string(payload), nil
}
