// Where: internal/infra/interaction/interaction.go
// What: Interactive primitives for CLI prompts and TTY detection.
// Why: Centralize user interaction to keep command handlers focused on orchestration.
package interaction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Prompter defines the interface for interactive user input.
type Prompter interface {
	Input(title string, suggestions []string) (string, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// LinePrompter reads one line per prompt. It is used when stdin is not a TTY,
// so answers can be piped in.
type LinePrompter struct {
	out    io.Writer
	reader *bufio.Reader
}

// NewLinePrompter prints prompts to out and reads answers from in.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}
	return &LinePrompter{out: out, reader: bufio.NewReader(in)}
}

// Input prints title and returns the next line without its line ending.
// A final line without a newline is accepted; an exhausted reader is io.ErrUnexpectedEOF.
func (p *LinePrompter) Input(title string, _ []string) (string, error) {
	_, _ = fmt.Fprintf(p.out, "%s: ", title)
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", fmt.Errorf("read input: %w", io.ErrUnexpectedEOF)
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
