package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// This type is the interface that the line editor has to satisfy.
type editor interface {
	ReadCode() (string, error)
	// AddHistory adds a line to the in-session history of the editor.
	AddHistory(line string)
	Close() error
}

type minEditor struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
}

func newMinEditor(in, out *os.File, prompt string) *minEditor {
	return &minEditor{bufio.NewReader(in), out, prompt}
}

func (ed *minEditor) ReadCode() (string, error) {
	fmt.Fprint(ed.out, ed.prompt)
	line, err := ed.in.ReadString('\n')
	if err == io.EOF && line != "" {
		// Handle the last line even if it has no line ending.
		err = nil
	}
	return chopLineEnding(line), err
}

// AddHistory is a no-op in the minimum editor since it doesn't keep history.
// The method is needed to satisfy the editor interface.
func (ed *minEditor) AddHistory(string) {}

func (ed *minEditor) Close() error { return nil }

func chopLineEnding(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// Line editor for terminals. It always works on the process's own terminal.
type lineEditor struct {
	state  *liner.State
	prompt string
}

func newLineEditor(prompt string, complete func(string) []string) *lineEditor {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	state.SetCompleter(complete)
	return &lineEditor{state, prompt}
}

func (ed *lineEditor) ReadCode() (string, error) {
	line, err := ed.state.Prompt(ed.prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		// Ctrl-C discards the current line.
		return "", nil
	}
	return line, err
}

func (ed *lineEditor) AddHistory(line string) { ed.state.AppendHistory(line) }

func (ed *lineEditor) Close() error { return ed.state.Close() }
