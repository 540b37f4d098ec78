// Where: internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
	"github.com/lithammer/dedent"
	"github.com/poruru/cppgen/internal/infra/config"
	"github.com/poruru/cppgen/internal/infra/interaction"
	"github.com/poruru/cppgen/internal/meta"
	"github.com/poruru/cppgen/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
// Nil fields fall back to the process defaults.
type Dependencies struct {
	Out      io.Writer
	ErrOut   io.Writer
	In       io.Reader
	Prompter interaction.Prompter
	IsTTY    func() bool
	Getwd    func() (string, error)
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	SourceDir      string           `arg:"" name:"source_dir" help:"Source directory where files should be generated"`
	CreateClass    bool             `name:"create-class" envvar:"CREATE_CLASS" help:"Generate a class in the header and source file ($$CPPGEN_CREATE_CLASS)"`
	CreateTemplate bool             `name:"create-template" envvar:"CREATE_TEMPLATE" help:"Generate a template file ($$CPPGEN_CREATE_TEMPLATE)"`
	Filename       string           `short:"f" help:"Filename without extension (prompted when omitted)"`
	Select         string           `short:"s" help:"Directory number or 'new' (prompted when omitted)"`
	NewFolder      string           `name:"new-folder" help:"Folder name used with --select new (prompted when omitted)"`
	DryRun         bool             `name:"dry-run" help:"Print the generation plan without writing files"`
	Tree           bool             `envvar:"TREE" help:"Show available directories as a tree ($$CPPGEN_TREE)"`
	NoColor        bool             `name:"no-color" help:"Disable coloured output"`
	LogLevel       string           `name:"log-level" default:"warn" enum:"debug,info,warn,error" envvar:"LOG_LEVEL" help:"Diagnostic log level (debug/info/warn/error) ($$CPPGEN_LOG_LEVEL)"`
	Config         string           `help:"Config file with flag defaults (.yaml, .toml, or .json) ($$CPPGEN_CONFIG)"`
	EnvFile        string           `name:"env-file" help:"Path to .env file"`
	Version        kong.VersionFlag `help:"Show version information"`
}

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments and runs the generator flow.
// Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	deps = withDefaults(deps)
	out := deps.Out

	if len(args) == 0 {
		return runNoArgs(out)
	}

	workDir, err := deps.Getwd()
	if err != nil {
		return exitWithError(deps.ErrOut, fmt.Errorf("resolve working directory: %w", err))
	}
	if err := loadEnvFile(args, workDir, plainUI(deps.ErrOut)); err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	exit := &exitRecorder{}
	cli := CLI{}
	options := []kong.Option{
		kong.Name(cliName()),
		kong.Description(meta.Description),
		kong.Vars{"version": version.GetVersion()},
		kong.Writers(out, deps.ErrOut),
		kong.Exit(exit.record),
	}
	options = append(options, configOptions(config.CandidatePaths(config.ExplicitPath(args), workDir))...)
	options = append(options, kong.Resolvers(config.EnvResolver()))
	parser, err := kong.New(&cli, options...)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	_, err = parser.Parse(args)
	if exit.called {
		return exit.code
	}
	if err != nil {
		return handleParseError(err, deps.ErrOut)
	}

	if err := runGenerate(cli, deps); err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	return 0
}

// configOptions registers one loader per candidate. Kong keeps the last
// resolved value, so candidates arrive lowest precedence first and the
// environment resolver is appended after them.
func configOptions(candidates []config.Candidate) []kong.Option {
	options := make([]kong.Option, 0, len(candidates))
	for _, candidate := range candidates {
		options = append(options, kong.Configuration(configLoader(candidate.Format), candidate.Path))
	}
	return options
}

func configLoader(format config.Format) kong.ConfigurationLoader {
	switch format {
	case config.FormatYAML:
		return kongyaml.Loader
	case config.FormatTOML:
		return kongtoml.Loader
	default:
		return kong.JSON
	}
}

func withDefaults(deps Dependencies) Dependencies {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.In == nil {
		deps.In = os.Stdin
	}
	if deps.IsTTY == nil {
		deps.IsTTY = func() bool { return false }
	}
	if deps.Getwd == nil {
		deps.Getwd = os.Getwd
	}
	return deps
}

// exitRecorder replaces os.Exit for --help and --version so Run can return.
type exitRecorder struct {
	called bool
	code   int
}

func (e *exitRecorder) record(code int) {
	if e.called {
		return
	}
	e.called = true
	e.code = code
}

// runNoArgs handles the case when the CLI is invoked without arguments.
func runNoArgs(out io.Writer) int {
	cmd := cliName()
	usage := dedent.Dedent(fmt.Sprintf(`
		Usage:
		  %[1]s <source_dir> [--create-class] [--create-template] [flags]

		Examples:
		  %[1]s ./src --create-class
		  %[1]s ./src -f my_widget -s new --new-folder widgets --create-template

		Try: %[1]s --help`, cmd))
	ui := plainUI(out)
	for _, line := range strings.Split(strings.TrimPrefix(usage, "\n"), "\n") {
		ui.Info(line)
	}
	return 0
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(err error, out io.Writer) int {
	msg := err.Error()
	ui := plainUI(out)
	cmd := cliName()
	switch {
	case strings.Contains(msg, "expected \"<source_dir>\""):
		ui.Warn("A source directory is required.")
		ui.Info(fmt.Sprintf("Example: %s ./src --create-class", cmd))
		return 1
	case strings.Contains(msg, "--log-level"):
		ui.Warn("`--log-level` must be one of debug, info, warn, error.")
		ui.Info(fmt.Sprintf("Example: %s ./src --log-level debug", cmd))
		return 1
	}
	return exitWithError(out, err)
}
