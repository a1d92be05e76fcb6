package prog

import (
	"errors"
	"os"
)

// Program is a subprogram of rpncalc.
type Program interface {
	// Run runs the subprogram with the parsed flags and the remaining
	// arguments. It returns ErrNotSuitable if the flags are meant for another
	// subprogram.
	Run(fds [3]*os.File, f *Flags, args []string) error
}

// ErrNotSuitable is returned by a Program that doesn't handle the given
// flags.
var ErrNotSuitable = errors.New("internal error: no suitable subprogram")

// Composite returns a Program that runs the first of programs that doesn't
// return ErrNotSuitable.
func Composite(programs ...Program) Program {
	return compositeProgram(programs)
}

type compositeProgram []Program

func (cp compositeProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	for _, p := range cp {
		if err := p.Run(fds, f, args); !errors.Is(err, ErrNotSuitable) {
			return err
		}
	}
	return ErrNotSuitable
}

// BadUsage returns an error that makes Run print msg followed by the usage
// and exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns an error that makes Run exit with the given status without
// printing anything. Exit(0) returns nil.
func Exit(status int) error {
	if status == 0 {
		return nil
	}
	return exitError{status}
}

type exitError struct{ status int }

func (e exitError) Error() string { return "" }
