// Where: internal/infra/interaction/interaction_test.go
// What: Tests for terminal detection and line prompts.
// Why: Keep non-interactive input deterministic in tests.
package interaction

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

func TestIsTerminalNilAndPipe(t *testing.T) {
	if IsTerminal(nil) {
		t.Fatal("IsTerminal(nil) must be false")
	}
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("create pipe: %v", err)
	}
	defer func() {
		_ = r.Close()
		_ = w.Close()
	}()
	if IsTerminal(r) {
		t.Fatal("IsTerminal(pipe) must be false")
	}
}

func TestLinePrompterReadsSequentialAnswers(t *testing.T) {
	var out bytes.Buffer
	prompter := NewLinePrompter(strings.NewReader("my_widget\r\nnew\ngen"), &out)

	want := []string{"my_widget", "new", "gen"}
	for i, title := range []string{"Filename", "Directory", "Folder"} {
		got, err := prompter.Input(title, nil)
		if err != nil {
			t.Fatalf("Input(%q) error = %v", title, err)
		}
		if got != want[i] {
			t.Fatalf("Input(%q) = %q, want %q", title, got, want[i])
		}
	}
	if out.String() != "Filename: Directory: Folder: " {
		t.Fatalf("prompts = %q", out.String())
	}
}

func TestLinePrompterExhausted(t *testing.T) {
	prompter := NewLinePrompter(strings.NewReader(""), io.Discard)

	_, err := prompter.Input("Filename", nil)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
	}
}

func TestLinePrompterKeepsEmptyLine(t *testing.T) {
	prompter := NewLinePrompter(strings.NewReader("\n"), io.Discard)

	got, err := prompter.Input("Filename", nil)
	if err != nil {
		t.Fatalf("Input() error = %v", err)
	}
	if got != "" {
		t.Fatalf("Input() = %q, want empty", got)
	}
}
