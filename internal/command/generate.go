// Where: internal/command/generate.go
// What: Filename prompt, directory selection, and file generation flow.
// Why: Keep input gathering separate from rendering and writing.
package command

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/poruru/cppgen/internal/domain/scaffold"
	"github.com/poruru/cppgen/internal/infra/dirtree"
	"github.com/poruru/cppgen/internal/infra/interaction"
	"github.com/poruru/cppgen/internal/infra/logging"
	"github.com/poruru/cppgen/internal/infra/templategen"
	"github.com/poruru/cppgen/internal/infra/ui"
)

const (
	promptFilename  = "Enter the filename (without extension)"
	promptDirectory = "Enter the directory number to create files (or 'new' to create a new parent folder)"
	promptFolder    = "Enter the new folder name"
)

type generateFlow struct {
	cli      CLI
	ui       ui.UserInterface
	prompter interaction.Prompter
	logger   *slog.Logger
}

func runGenerate(cli CLI, deps Dependencies) error {
	logger, err := logging.New(cli.LogLevel, deps.ErrOut)
	if err != nil {
		return err
	}
	flow := generateFlow{
		cli:      cli,
		ui:       terminalUI(deps, cli.NoColor),
		prompter: resolvePrompter(deps),
		logger:   logger,
	}
	return flow.run()
}

func resolvePrompter(deps Dependencies) interaction.Prompter {
	if deps.Prompter != nil {
		return deps.Prompter
	}
	if deps.IsTTY() {
		return interaction.HuhPrompter{}
	}
	return interaction.NewLinePrompter(deps.In, deps.Out)
}

func (f generateFlow) run() error {
	filename, err := f.readFilename()
	if err != nil {
		return fmt.Errorf("read filename: %w", err)
	}

	dirs, err := dirtree.ListDirectories(f.cli.SourceDir)
	if err != nil {
		return fmt.Errorf("list directories: %w", err)
	}
	f.logger.Debug("listed directories", "start", f.cli.SourceDir, "count", len(dirs))
	if err := f.showDirectories(dirs); err != nil {
		return fmt.Errorf("list directories: %w", err)
	}

	target, err := f.selectDirectory(dirs)
	if err != nil {
		return fmt.Errorf("select directory: %w", err)
	}
	f.logger.Info("selected directory", "path", target)

	req, err := scaffold.NewRequest(filename, target, f.cli.CreateClass, f.cli.CreateTemplate)
	if err != nil {
		return fmt.Errorf("generate files: %w", err)
	}
	if f.cli.DryRun {
		return f.showPlan(req)
	}

	result, err := templategen.Generate(req, templategen.GenerateOptions{Logger: f.logger})
	if err != nil {
		return fmt.Errorf("generate files: %w", err)
	}
	f.ui.Success(templategen.Confirmation(result))
	return nil
}

func (f generateFlow) readFilename() (string, error) {
	filename := strings.TrimSpace(f.cli.Filename)
	if filename == "" {
		input, err := f.prompter.Input(promptFilename, nil)
		if err != nil {
			return "", err
		}
		filename = strings.TrimSpace(input)
	}
	if filename == "" {
		return "", fmt.Errorf("%w: filename is required", scaffold.ErrEmptyInput)
	}
	return filename, nil
}

func (f generateFlow) showDirectories(dirs []string) error {
	if !f.cli.Tree {
		f.ui.List("📁", "Available directories:", dirtree.FormatListing(dirs))
		return nil
	}
	tree, err := dirtree.RenderTree(dirs)
	if err != nil {
		return err
	}
	f.ui.List("📁", "Available directories:", strings.Split(strings.TrimRight(tree, "\n"), "\n"))
	return nil
}

func (f generateFlow) selectDirectory(dirs []string) (string, error) {
	choice := f.cli.Select
	if strings.TrimSpace(choice) == "" {
		input, err := f.prompter.Input(promptDirectory, []string{"new"})
		if err != nil {
			return "", fmt.Errorf("read selection: %w", err)
		}
		choice = input
	}
	return dirtree.ResolveSelection(
		f.cli.SourceDir,
		dirs,
		choice,
		f.askFolder,
		dirtree.SelectOptions{DryRun: f.cli.DryRun},
	)
}

func (f generateFlow) askFolder() (string, error) {
	if name := strings.TrimSpace(f.cli.NewFolder); name != "" {
		return name, nil
	}
	return f.prompter.Input(promptFolder, nil)
}

func (f generateFlow) showPlan(req scaffold.Request) error {
	plan, err := templategen.BuildPlan(req)
	if err != nil {
		return fmt.Errorf("generate files: %w", err)
	}
	encoded, err := templategen.EncodePlan(plan)
	if err != nil {
		return fmt.Errorf("generate files: %w", err)
	}
	f.ui.Block("🧪", "Dry run (nothing written)", []ui.KeyValue{
		{Key: "Directory", Value: plan.Directory},
		{Key: "Class", Value: plan.ClassName},
		{Key: "Include guard", Value: plan.Guard},
	})
	f.ui.Info(strings.TrimRight(encoded, "\n"))
	return nil
}
