// Where: internal/domain/scaffold/renderer.go
// What: Render declaration, definition, and template file contents.
// Why: Keep rendering pure so it can be tested without touching the filesystem.
package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/poruru/cppgen/internal/meta"
)

// FileKind names the role a generated file plays.
type FileKind string

const (
	KindDeclaration FileKind = "declaration"
	KindDefinition  FileKind = "definition"
	KindTemplate    FileKind = "template"
)

// File is one rendered output, not yet written.
type File struct {
	Kind    FileKind
	Name    string
	Content string
}

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

type fileSpec struct {
	kind     FileKind
	ext      string
	template string
}

type fileTemplateData struct {
	Filename     string
	ClassName    string
	IncludeGuard string
	HeaderName   string
	CreateClass  bool
}

// Render produces the files for req in write order: declaration, definition,
// then the template file when requested. Output depends only on req.
func Render(req Request) ([]File, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	data := fileTemplateData{
		Filename:     req.Filename,
		ClassName:    req.ClassName(),
		IncludeGuard: req.IncludeGuard(),
		HeaderName:   req.HeaderName(),
		CreateClass:  req.CreateClass,
	}

	specs := []fileSpec{
		{kind: KindDeclaration, ext: meta.DeclarationExt, template: "declaration.hpp.tmpl"},
		{kind: KindDefinition, ext: meta.DefinitionExt, template: "definition.cpp.tmpl"},
	}
	if req.CreateTemplate {
		specs = append(specs, fileSpec{kind: KindTemplate, ext: meta.TemplateExt, template: "template.tpp.tmpl"})
	}

	files := make([]File, 0, len(specs))
	for _, spec := range specs {
		content, err := renderTemplate(spec.template, data)
		if err != nil {
			return nil, fmt.Errorf("render %s file: %w", spec.kind, err)
		}
		files = append(files, File{
			Kind:    spec.kind,
			Name:    req.Filename + spec.ext,
			Content: content,
		})
	}
	return files, nil
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		cached, ok := value.(*template.Template)
		if !ok {
			return nil, fmt.Errorf("template cache type mismatch for %s", name)
		}
		return cached, nil
	}
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, err
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}
