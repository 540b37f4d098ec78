package config

import (
	"testing"

	"github.com/alecthomas/kong"
)

type envCLI struct {
	Tree     bool   `envvar:"TREE"`
	LogLevel string `name:"log-level" default:"warn" envvar:"LOG_LEVEL"`
	Filename string `short:"f"`
}

func parseWithEnv(t *testing.T, args ...string) envCLI {
	t.Helper()
	var cli envCLI
	parser, err := kong.New(&cli, kong.Resolvers(EnvResolver()))
	if err != nil {
		t.Fatalf("kong.New() error = %v", err)
	}
	if _, err := parser.Parse(args); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return cli
}

func TestEnvResolverReadsTaggedFlags(t *testing.T) {
	t.Setenv("CPPGEN_TREE", "true")
	t.Setenv("CPPGEN_LOG_LEVEL", "debug")
	t.Setenv("CPPGEN_FILENAME", "ignored")

	cli := parseWithEnv(t)
	if !cli.Tree || cli.LogLevel != "debug" {
		t.Fatalf("tagged flags not resolved: %+v", cli)
	}
	if cli.Filename != "" {
		t.Fatalf("untagged flag resolved from env: %q", cli.Filename)
	}
}

func TestEnvResolverLosesToFlags(t *testing.T) {
	t.Setenv("CPPGEN_LOG_LEVEL", "debug")
	cli := parseWithEnv(t, "--log-level", "error")
	if cli.LogLevel != "error" {
		t.Fatalf("LogLevel = %q, want error", cli.LogLevel)
	}
}

func TestEnvResolverSkipsBlankValues(t *testing.T) {
	t.Setenv("CPPGEN_LOG_LEVEL", "  ")
	cli := parseWithEnv(t)
	if cli.LogLevel != "warn" {
		t.Fatalf("LogLevel = %q, want default warn", cli.LogLevel)
	}
}
