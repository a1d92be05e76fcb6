// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.rpncalc.dev/pkg/store/storedefs"
)

var (
	cmd1 = storedefs.Cmd{Text: "1 2 +", Result: "3"}
	cmd2 = storedefs.Cmd{Text: "x = 2 3 ^", Result: "8"}
	cmd3 = storedefs.Cmd{Text: "0 0 /", Result: "NaN"}
)

// TestCmd tests the command history functionality of a Store.
func TestCmd(t *testing.T, store storedefs.Store) {
	startSeq, err := store.NextCmdSeq()
	if startSeq != 1 || err != nil {
		t.Errorf("store.NextCmdSeq() -> (%v, %v), want (1, nil)",
			startSeq, err)
	}

	for i, cmd := range []storedefs.Cmd{cmd1, cmd2, cmd3} {
		wantSeq := startSeq + i
		seq, err := store.AddCmd(cmd)
		if seq != wantSeq || err != nil {
			t.Errorf("store.AddCmd(%v) -> (%v, %v), want (%v, nil)",
				cmd, seq, err, wantSeq)
		}
	}

	endSeq, err := store.NextCmdSeq()
	wantedEndSeq := startSeq + 3
	if endSeq != wantedEndSeq || err != nil {
		t.Errorf("store.NextCmdSeq() -> (%v, %v), want (%v, nil)",
			endSeq, err, wantedEndSeq)
	}

	cmd, err := store.Cmd(startSeq + 1)
	if want := withSeq(cmd2, startSeq+1); cmd != want || err != nil {
		t.Errorf("store.Cmd(%v) -> (%v, %v), want (%v, nil)",
			startSeq+1, cmd, err, want)
	}
	if _, err := store.Cmd(endSeq); err != storedefs.ErrNoMatchingCmd {
		t.Errorf("store.Cmd(%v) -> error %v, want ErrNoMatchingCmd",
			endSeq, err)
	}

	cmds, err := store.Cmds(startSeq, endSeq)
	wantCmds := []storedefs.Cmd{
		withSeq(cmd1, startSeq), withSeq(cmd2, startSeq+1), withSeq(cmd3, startSeq+2)}
	if err != nil {
		t.Errorf("store.Cmds(%v, %v) -> error %v", startSeq, endSeq, err)
	}
	if diff := cmp.Diff(wantCmds, cmds); diff != "" {
		t.Errorf("store.Cmds(%v, %v) (-want +got):\n%s", startSeq, endSeq, diff)
	}

	cmds, err = store.Cmds(startSeq+1, startSeq+2)
	if diff := cmp.Diff([]storedefs.Cmd{withSeq(cmd2, startSeq+1)}, cmds); diff != "" || err != nil {
		t.Errorf("store.Cmds(%v, %v) -> error %v, diff (-want +got):\n%s",
			startSeq+1, startSeq+2, err, diff)
	}
}

func withSeq(cmd storedefs.Cmd, seq int) storedefs.Cmd {
	cmd.Seq = seq
	return cmd
}
