// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store API
// does not need to depend on the concrete implementation.
package storedefs

import "errors"

// ErrNoMatchingCmd is the error returned when a Cmd query completes with no
// result.
var ErrNoMatchingCmd = errors.New("no matching command line")

// Store is an interface satisfied by the session history store.
type Store interface {
	NextCmdSeq() (int, error)
	AddCmd(cmd Cmd) (int, error)
	Cmd(seq int) (Cmd, error)
	Cmds(from, upto int) ([]Cmd, error)
	Close() error
}

// Cmd is an entry in the session history: a line that was evaluated
// successfully, and its formatted result.
type Cmd struct {
	Text   string `json:"text"`
	Result string `json:"result"`
	Seq    int    `json:"-"`
}
