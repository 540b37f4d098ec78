package command

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var errNoAnswer = errors.New("no scripted answer left")

type scriptedPrompter struct {
	answers []string
	titles  []string
}

func (p *scriptedPrompter) Input(title string, _ []string) (string, error) {
	p.titles = append(p.titles, title)
	if len(p.answers) == 0 {
		return "", errNoAnswer
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

type runHarness struct {
	out        bytes.Buffer
	errOut     bytes.Buffer
	wd         string
	configHome string
}

// newHarness isolates config and environment discovery from the developer's machine.
func newHarness(t *testing.T) *runHarness {
	t.Helper()
	h := &runHarness{wd: t.TempDir(), configHome: t.TempDir()}
	t.Setenv("CPPGEN_CONFIG_HOME", h.configHome)
	// CPPGEN_CREATE_TEMPLATE stays unset: godotenv skips keys that exist, even blank ones.
	for _, key := range []string{"CPPGEN_CONFIG", "CPPGEN_CREATE_CLASS", "CPPGEN_TREE", "CPPGEN_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	return h
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config %s: %v", path, err)
	}
}

func (h *runHarness) deps(prompter *scriptedPrompter, stdin string) Dependencies {
	deps := Dependencies{
		Out:    &h.out,
		ErrOut: &h.errOut,
		In:     strings.NewReader(stdin),
		Getwd:  func() (string, error) { return h.wd, nil },
	}
	if prompter != nil {
		deps.Prompter = prompter
	}
	return deps
}

func makeTree(t *testing.T, rels ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, rel := range rels {
		if err := os.MkdirAll(filepath.Join(root, rel), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", rel, err)
		}
	}
	return root
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
