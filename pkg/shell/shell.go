// Package shell is the entry point for the terminal interface of the
// calculator.
package shell

import (
	"fmt"
	"io"
	"os"

	"src.rpncalc.dev/pkg/config"
	"src.rpncalc.dev/pkg/diag"
	"src.rpncalc.dev/pkg/logutil"
	"src.rpncalc.dev/pkg/prog"
	"src.rpncalc.dev/pkg/rpn"
	"src.rpncalc.dev/pkg/store"
	"src.rpncalc.dev/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram.
type Program struct{}

func (p Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) > 0 && !f.CodeInArg {
		return prog.BadUsage("arguments are only allowed with -c")
	}
	if f.CodeInArg && len(args) == 0 {
		return prog.BadUsage("-c requires at least one expression")
	}
	if f.JSON && !f.CodeInArg {
		return prog.BadUsage("-json requires -c, -version or -buildinfo")
	}

	cfg := loadConfig(fds[2], f)
	if f.Verbose {
		cfg.Verbose = true
	}

	if f.CodeInArg {
		return prog.Exit(script(fds, args, &scriptCfg{Config: cfg, JSON: f.JSON}))
	}
	Interact(fds, &InteractConfig{Config: cfg})
	return nil
}

func loadConfig(stderr io.Writer, f *prog.Flags) *config.Config {
	if f.NoConfig {
		return config.Default()
	}
	cfg, err := config.Load(f.Config)
	if err != nil {
		fmt.Fprintln(stderr, "Warning:", err)
	}
	return cfg
}

// Evaluates the definitions from the configuration file. Failing definitions
// are reported and skipped.
func applyDefinitions(s *session, stderr io.Writer, defs []string) {
	for i, def := range defs {
		src := rpn.Source{Name: fmt.Sprintf("[definition %d]", i+1), Code: def}
		if err := s.define(src); err != nil {
			diag.ShowError(stderr, err)
		}
	}
}

// Opens the history store of a session. Failure to open it is reported, and
// the session continues without history.
func openHistory(stderr io.Writer) (storedefs.Store, func()) {
	st, err := store.NewTempStore()
	if err != nil {
		fmt.Fprintln(stderr, "Warning:", err)
		fmt.Fprintln(stderr, "Session history will not be available.")
		return nil, func() {}
	}
	return st, func() {
		if err := st.Close(); err != nil {
			logger.Println("failed to close history store:", err)
		}
	}
}
