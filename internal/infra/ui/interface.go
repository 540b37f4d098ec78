// Where: internal/infra/ui/interface.go
// What: UserInterface adapters for command output.
// Why: Let commands write through one surface whether or not the terminal is decorated.
package ui

import (
	"fmt"
	"io"
)

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes high-level output helpers used by commands.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
	Block(emoji, title string, rows []KeyValue)
	List(emoji, title string, lines []string)
}

// Options toggles decoration for NewTerminalUI.
type Options struct {
	Emoji bool
	Color bool
}

// NewPlainUI returns a UserInterface that writes undecorated lines.
func NewPlainUI(out io.Writer) UserInterface {
	return plainUI{
		out:     out,
		console: NewWithOptions(out, false, false),
	}
}

// NewTerminalUI returns a UserInterface with emoji and colour as configured.
func NewTerminalUI(out io.Writer, opts Options) UserInterface {
	return terminalUI{
		out:     out,
		console: NewWithOptions(out, opts.Emoji, opts.Color),
	}
}

type plainUI struct {
	out     io.Writer
	console *Console
}

func (p plainUI) Info(msg string) {
	fmt.Fprintln(p.out, msg)
}

func (p plainUI) Warn(msg string) {
	fmt.Fprintln(p.out, msg)
}

func (p plainUI) Success(msg string) {
	fmt.Fprintln(p.out, msg)
}

func (p plainUI) Block(emoji, title string, rows []KeyValue) {
	p.console.BlockStart(emoji, title)
	for _, kv := range rows {
		p.console.Item(kv.Key, kv.Value)
	}
	p.console.BlockEnd()
}

func (p plainUI) List(_ string, title string, lines []string) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, title)
	for _, line := range lines {
		fmt.Fprintln(p.out, line)
	}
}

type terminalUI struct {
	out     io.Writer
	console *Console
}

func (t terminalUI) Info(msg string) {
	fmt.Fprintln(t.out, msg)
}

func (t terminalUI) Warn(msg string) {
	t.console.Warn(msg)
}

func (t terminalUI) Success(msg string) {
	t.console.Success(msg)
}

func (t terminalUI) Block(emoji, title string, rows []KeyValue) {
	t.console.BlockStart(emoji, title)
	for _, kv := range rows {
		t.console.Item(kv.Key, kv.Value)
	}
	t.console.BlockEnd()
}

func (t terminalUI) List(emoji, title string, lines []string) {
	t.console.BlockStart(emoji, title)
	for _, line := range lines {
		t.console.Info(line)
	}
}
