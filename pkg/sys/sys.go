// Package sys provide system utilities with the same API across OSes.
package sys

import (
	"os"

	"github.com/mattn/go-isatty"
	"src.rpncalc.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[sys] ")

// DefaultColumns is the terminal width assumed when it cannot be queried.
const DefaultColumns = 80

// WinSize queries the size of the terminal referenced by the given file. It
// returns -1, -1 if the file is not a terminal.
func WinSize(file *os.File) (row, col int) {
	row, col, err := winSize(file)
	if err != nil {
		logger.Printf("cannot query size of %s: %v", file.Name(), err)
		return -1, -1
	}
	return row, col
}

// Columns returns the width of the terminal referenced by the given file, or
// DefaultColumns if it cannot be determined.
func Columns(file *os.File) int {
	_, col := WinSize(file)
	if col <= 0 {
		return DefaultColumns
	}
	return col
}

// IsATTY determines whether the given file is a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
