package sys

import (
	"os"

	"golang.org/x/sys/windows"
)

// The size of the visible window of the console, not of its whole buffer.
// Window coordinates are inclusive.
func winSize(file *os.File) (row, col int, err error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(file.Fd()), &info); err != nil {
		return 0, 0, err
	}
	w := info.Window
	return int(w.Bottom-w.Top) + 1, int(w.Right-w.Left) + 1, nil
}
