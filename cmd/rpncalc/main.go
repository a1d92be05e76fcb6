// Rpncalc is an interactive calculator for postfix (Reverse Polish Notation)
// expressions, with variables, bitwise operators and a language server for
// calculator documents.
package main

import (
	"os"

	"src.rpncalc.dev/pkg/buildinfo"
	"src.rpncalc.dev/pkg/lsp"
	"src.rpncalc.dev/pkg/prog"
	"src.rpncalc.dev/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(&buildinfo.Program{}, &lsp.Program{}, &shell.Program{})))
}
