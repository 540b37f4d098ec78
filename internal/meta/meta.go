// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep the app identity and generated file layout in one place.
package meta

const (
	// Project Identity
	AppName     = "cppgen"
	Slug        = "cppgen"
	EnvPrefix   = "CPPGEN"
	Description = "C++ file generator with class and template support"

	// Config Files, lowest precedence first within one directory
	ConfigJSON = ".cppgen.json"
	ConfigTOML = ".cppgen.toml"
	ConfigYML  = ".cppgen.yml"
	ConfigYAML = ".cppgen.yaml"

	// Generated Files
	DeclarationExt     = ".hpp"
	DefinitionExt      = ".cpp"
	TemplateExt        = ".tpp"
	IncludeGuardSuffix = "_HPP"

	// Selection
	NewFolderToken = "new"
)
