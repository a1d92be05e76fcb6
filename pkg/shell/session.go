package shell

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"src.rpncalc.dev/pkg/config"
	"src.rpncalc.dev/pkg/maths"
	"src.rpncalc.dev/pkg/rpn"
	"src.rpncalc.dev/pkg/store/storedefs"
	"src.rpncalc.dev/pkg/sys"
	"src.rpncalc.dev/pkg/vars"
)

var (
	errNoHistory      = errors.New("session history is not available")
	errNotAssignment  = errors.New("definitions must have the form: name = expr")
	clearScreenString = "\033c"
)

// State of a calculator session, shared by all the lines it handles.
type session struct {
	vars    vars.Store
	ans     float64
	verbose bool
	history storedefs.Store

	out io.Writer
	// Print a blank line after each response, for readability at a terminal.
	spacing bool
	columns int
	// Shows the value of an evaluated expression or assignment.
	showValue func(expr string, v float64)
}

func newSession(out io.Writer, cfg *config.Config) *session {
	s := &session{
		ans:     math.NaN(),
		verbose: cfg.Verbose,
		out:     out,
		columns: sys.DefaultColumns,
	}
	s.showValue = s.printValue
	return s
}

var commands = map[string]func(s *session) error{
	"reset": func(s *session) error {
		io.WriteString(s.out, clearScreenString)
		s.print(intro)
		return nil
	},
	"clear": func(s *session) error {
		io.WriteString(s.out, clearScreenString)
		return nil
	},
	"help":     func(s *session) error { s.print(help); return nil },
	"advhelp":  func(s *session) error { s.print(advancedHelp); return nil },
	"commands": func(s *session) error { s.print(commandList); return nil },
	"consts":   func(s *session) error { s.print(constantList); return nil },
	"vars": func(s *session) error {
		var sb strings.Builder
		for _, v := range s.vars.All() {
			fmt.Fprintf(&sb, "[%s = %s]\n", v.Name, rpn.FormatNumber(v.Value))
		}
		s.print(sb.String())
		return nil
	},
	"verbose": func(s *session) error {
		s.verbose = !s.verbose
		if s.verbose {
			s.print("verbose mode on\n")
		} else {
			s.print("verbose mode off\n")
		}
		return nil
	},
	"pop": func(s *session) error {
		if err := s.vars.Pop(); err != nil {
			return err
		}
		s.print("pop successful\n")
		return nil
	},
	"history": func(s *session) error {
		if s.history == nil {
			return errNoHistory
		}
		next, err := s.history.NextCmdSeq()
		if err != nil {
			return err
		}
		cmds, err := s.history.Cmds(0, next)
		if err != nil {
			return err
		}
		var sb strings.Builder
		for _, cmd := range cmds {
			fmt.Fprintf(&sb, "%4d  %s  = %s\n", cmd.Seq, cmd.Text, cmd.Result)
		}
		s.print(sb.String())
		return nil
	},
}

const (
	exitCommand   = "exit"
	removeCommand = "remove "
)

// Handles one line of input: a comment, a command, an assignment or an
// expression. It reports whether the session should end.
func (s *session) handleLine(src rpn.Source) (quit bool, err error) {
	src.Code = strings.TrimSpace(src.Code)
	line := src.Code
	switch {
	case line == "" || strings.HasPrefix(line, "#"):
		return false, nil
	case line == exitCommand:
		return true, nil
	case commands[line] != nil:
		return false, commands[line](s)
	case vars.IsAssignment(line):
		return false, s.assign(src)
	case strings.HasPrefix(line, removeCommand):
		name := strings.TrimSpace(line[len(removeCommand):])
		if err := s.vars.Remove(name); err != nil {
			return false, err
		}
		s.print("variable removed successfully\n")
		return false, nil
	}
	v, err := rpn.EvalExpression(line, s.ans, &s.vars, s.evalCfg())
	if err != nil {
		return false, rpn.Contextualize(src, 0, err)
	}
	s.ans = v
	s.showValue(line, v)
	s.record(line, v)
	return false, nil
}

// Evaluates a definition of the form "name = expr" without showing its value.
func (s *session) define(src rpn.Source) error {
	if !vars.IsAssignment(src.Code) {
		return errNotAssignment
	}
	_, err := s.evalAssignment(src)
	return err
}

func (s *session) assign(src rpn.Source) error {
	v, err := s.evalAssignment(src)
	if err != nil {
		return err
	}
	s.showValue(src.Code, v)
	s.record(src.Code, v)
	return nil
}

// Evaluates the right side of an assignment and stores the value under the
// name on its left side. The previous answer is not updated.
func (s *session) evalAssignment(src rpn.Source) (float64, error) {
	name, exprStart, err := vars.SplitAssignment(src.Code)
	if err != nil {
		return 0, err
	}
	v, err := rpn.EvalExpression(src.Code[exprStart:], s.ans, &s.vars, s.evalCfg())
	if err != nil {
		return 0, rpn.Contextualize(src, exprStart, err)
	}
	if s.vars.Set(name, v) {
		logger.Printf("defined variable %s", name)
	}
	return v, nil
}

func (s *session) evalCfg() rpn.EvalCfg {
	if !s.verbose {
		return rpn.EvalCfg{}
	}
	return rpn.EvalCfg{Snapshot: func(seq rpn.Sequence) {
		fmt.Fprintln(s.out, wrapSequence(seq, s.columns))
	}}
}

// Adds a successfully evaluated line to the session history.
func (s *session) record(text string, v float64) {
	if s.history == nil {
		return
	}
	_, err := s.history.AddCmd(storedefs.Cmd{Text: text, Result: rpn.FormatNumber(v)})
	if err != nil {
		logger.Println("failed to add to history:", err)
	}
}

func (s *session) printValue(_ string, v float64) {
	s.print("= " + rpn.FormatNumber(v) + "\n")
}

func (s *session) print(text string) {
	io.WriteString(s.out, text)
	if s.spacing {
		io.WriteString(s.out, "\n")
	}
}

// Formats a sequence like Sequence.String, breaking lines between tokens to
// keep them within width columns where possible.
func wrapSequence(seq rpn.Sequence, width int) string {
	if len(seq) == 0 {
		return "[]"
	}
	var sb strings.Builder
	lineLen := 0
	for i, t := range seq {
		item := t.String()
		if i == 0 {
			item = "[" + item
		}
		if i == len(seq)-1 {
			item += "]"
		} else {
			item += ","
		}
		if lineLen > 0 {
			if lineLen+1+len(item) > width {
				sb.WriteString("\n")
				lineLen = 0
			}
			sb.WriteString(" ")
			lineLen++
		}
		sb.WriteString(item)
		lineLen += len(item)
	}
	return sb.String()
}

var commandNames = func() []string {
	names := []string{exitCommand, strings.TrimSpace(removeCommand)}
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// Completes the last word of a line. Command names are only completed at the
// start of the line; words starting with $ complete to variable references.
func (s *session) complete(line string) []string {
	i := strings.LastIndexAny(line, " \t") + 1
	head, word := line[:i], line[i:]
	if word == "" {
		return nil
	}
	var candidates []string
	if strings.HasPrefix(word, rpn.VarSigil) {
		for _, v := range s.vars.All() {
			if name := rpn.VarSigil + v.Name; strings.HasPrefix(name, word) {
				candidates = append(candidates, head+name)
			}
		}
	} else {
		if head == "" {
			for _, name := range commandNames {
				if strings.HasPrefix(name, word) {
					candidates = append(candidates, name)
				}
			}
		}
		words := append([]string{rpn.AnsKeyword}, rpn.Keywords()...)
		for _, name := range append(words, maths.ConstantNames...) {
			if len(name) >= len(word) && strings.EqualFold(name[:len(word)], word) {
				candidates = append(candidates, head+name)
			}
		}
	}
	sort.Strings(candidates)
	return candidates
}
