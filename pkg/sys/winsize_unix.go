//go:build !windows && !plan9

package sys

import (
	"os"

	"golang.org/x/sys/unix"
)

func winSize(file *os.File) (row, col int, err error) {
	ws, err := unix.IoctlGetWinsize(int(file.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	row, col = int(ws.Row), int(ws.Col)
	// Serial consoles may report zero sizes.
	if col == 0 {
		col = DefaultColumns
	}
	if row == 0 {
		row = 24
	}
	return row, col, nil
}
