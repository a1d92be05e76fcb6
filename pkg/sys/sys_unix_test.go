//go:build !windows && !plan9

package sys

import (
	"os"
	"testing"

	"github.com/creack/pty"
	"src.rpncalc.dev/pkg/must"
)

func TestIsATTY_Pty(t *testing.T) {
	_, tty := openPty(t)
	if !IsATTY(tty.Fd()) {
		t.Errorf("IsATTY(tty) = false, want true")
	}
}

func TestWinSize_Pty(t *testing.T) {
	ptmx, tty := openPty(t)
	must.OK(pty.Setsize(ptmx, &pty.Winsize{Rows: 30, Cols: 100}))

	if row, col := WinSize(tty); row != 30 || col != 100 {
		t.Errorf("WinSize(tty) = (%d, %d), want (30, 100)", row, col)
	}
	if col := Columns(tty); col != 100 {
		t.Errorf("Columns(tty) = %d, want 100", col)
	}
}

func TestWinSize_ZeroSizeFallsBack(t *testing.T) {
	ptmx, tty := openPty(t)
	must.OK(pty.Setsize(ptmx, &pty.Winsize{}))

	if row, col := WinSize(tty); row != 24 || col != DefaultColumns {
		t.Errorf("WinSize(tty) = (%d, %d), want (24, %d)", row, col, DefaultColumns)
	}
}

func openPty(t *testing.T) (ptmx, tty *os.File) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("pty not available:", err)
	}
	t.Cleanup(func() {
		ptmx.Close()
		tty.Close()
	})
	return ptmx, tty
}
