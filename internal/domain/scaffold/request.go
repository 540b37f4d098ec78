// Where: internal/domain/scaffold/request.go
// What: Generation request model and validation.
// Why: Build the request once from user input and keep it immutable afterwards.
package scaffold

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/poruru/cppgen/internal/meta"
)

// Request holds everything needed to render and write one file set.
type Request struct {
	Filename       string `validate:"required"`
	Directory      string `validate:"required"`
	CreateClass    bool
	CreateTemplate bool
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func requestValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// NewRequest trims the filename and returns a validated request.
func NewRequest(filename, directory string, createClass, createTemplate bool) (Request, error) {
	req := Request{
		Filename:       strings.TrimSpace(filename),
		Directory:      directory,
		CreateClass:    createClass,
		CreateTemplate: createTemplate,
	}
	if err := req.Validate(); err != nil {
		return Request{}, err
	}
	return req, nil
}

// Validate reports missing fields as ErrEmptyInput.
func (r Request) Validate() error {
	err := requestValidator().Struct(r)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		field := strings.ToLower(fieldErrs[0].Field())
		return fmt.Errorf("%w: %s is required", ErrEmptyInput, field)
	}
	return fmt.Errorf("validate request: %w", err)
}

// ClassName is the CamelCase class identifier for this request.
func (r Request) ClassName() string {
	return ClassName(r.Filename)
}

// IncludeGuard is the include guard token for this request.
func (r Request) IncludeGuard() string {
	return IncludeGuard(r.Filename)
}

// HeaderName is the declaration file's base name.
func (r Request) HeaderName() string {
	return r.Filename + meta.DeclarationExt
}

// Path joins name onto the request directory.
func (r Request) Path(name string) string {
	return filepath.Join(r.Directory, name)
}
