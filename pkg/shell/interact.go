package shell

import (
	"fmt"
	"io"
	"os"
	"time"

	"src.rpncalc.dev/pkg/config"
	"src.rpncalc.dev/pkg/diag"
	"src.rpncalc.dev/pkg/rpn"
	"src.rpncalc.dev/pkg/sys"
)

// InteractConfig keeps configuration for the interactive mode.
type InteractConfig struct {
	Config *config.Config
}

// Interact runs an interactive calculator session.
func Interact(fds [3]*os.File, cfg *InteractConfig) {
	c := cfg.Config
	if c == nil {
		c = config.Default()
	}
	s := newSession(fds[1], c)
	s.spacing = true
	s.columns = sys.Columns(fds[1])

	history, cleanup := openHistory(fds[2])
	defer cleanup()
	s.history = history

	// Build Editor.
	var ed editor
	tty := fds[0] == os.Stdin && sys.IsATTY(fds[0].Fd())
	if tty {
		ed = newLineEditor(c.Prompt, s.complete)
	} else {
		ed = newMinEditor(fds[0], fds[2], c.Prompt)
	}
	defer func() { ed.Close() }()

	if c.Banner {
		if tty {
			io.WriteString(fds[1], clearScreenString)
		}
		s.print(intro)
	}
	applyDefinitions(s, fds[2], c.Definitions)

	cooldown := time.Second
	cmdNum := 0

	for {
		cmdNum++

		line, err := ed.ReadCode()

		if err == io.EOF {
			break
		} else if err != nil {
			fmt.Fprintln(fds[2], "Editor error:", err)
			if _, isMinEditor := ed.(*minEditor); !isMinEditor {
				fmt.Fprintln(fds[2], "Falling back to basic line editor")
				ed.Close()
				ed = newMinEditor(fds[0], fds[2], c.Prompt)
			} else {
				fmt.Fprintln(fds[2], "Don't know what to do, pid is", os.Getpid())
				fmt.Fprintln(fds[2], "Restarting editor in", cooldown)
				time.Sleep(cooldown)
				if cooldown < time.Minute {
					cooldown *= 2
				}
			}
			continue
		}

		// No error; reset cooldown.
		cooldown = time.Second

		ed.AddHistory(line)
		quit, err := s.handleLine(
			rpn.Source{Name: fmt.Sprintf("[tty %v]", cmdNum), Code: line})
		if err != nil {
			diag.ShowError(fds[2], err)
		}
		if quit {
			break
		}
	}
	logger.Printf("session ended after %d lines", cmdNum)
}
