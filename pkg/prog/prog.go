// Package prog is the entry point of rpncalc. It parses the command line,
// sets up logging and profiling, and hands over to the first subprogram that
// accepts the flags: the build information printer, the language server or
// the calculator itself.
package prog

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"src.rpncalc.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[prog] ")

// Flags keeps command-line flags.
type Flags struct {
	Log, CPUProfile string

	Help, Version, BuildInfo, JSON bool

	CodeInArg, Verbose bool

	Config   string
	NoConfig bool

	LSP bool
}

func newFlagSet(f *Flags) *flag.FlagSet {
	fs := flag.NewFlagSet("rpncalc", flag.ContinueOnError)
	// Errors and usage are printed by Run.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.Log, "log", "", "a file to write debug log to")
	fs.StringVar(&f.CPUProfile, "cpuprofile", "", "write cpu profile to file")

	fs.BoolVar(&f.Help, "help", false, "show usage help and quit")
	fs.BoolVar(&f.Version, "version", false, "show version and quit")
	fs.BoolVar(&f.BuildInfo, "buildinfo", false, "show build info and quit")
	fs.BoolVar(&f.JSON, "json", false, "show output in JSON. Useful with -buildinfo and -c")

	fs.BoolVar(&f.CodeInArg, "c", false, "evaluate the arguments as lines and quit")
	fs.BoolVar(&f.Verbose, "verbose", false, "start with verbose mode on")
	fs.StringVar(&f.Config, "config", "", "path to the configuration file")
	fs.BoolVar(&f.NoConfig, "noconfig", false, "do not load the configuration file")

	fs.BoolVar(&f.LSP, "lsp", false, "run the language server instead of the calculator")

	return fs
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: rpncalc [flags] [-c expr...]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Checks combinations of flags that no subprogram accepts.
func checkFlags(f *Flags) error {
	switch {
	case f.NoConfig && f.Config != "":
		return BadUsage("-config and -noconfig are mutually exclusive")
	case f.LSP && (f.CodeInArg || f.JSON):
		return BadUsage("-lsp can't be combined with -c or -json")
	}
	return nil
}

// Run parses the command-line flags in args[1:] and runs p. It returns the
// exit status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	f := &Flags{}
	fs := newFlagSet(f)
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			// Parse returns ErrHelp for -h, which is not defined, so it is
			// reported like any other undefined flag.
			err = errors.New("flag provided but not defined: -h")
		}
		fmt.Fprintln(fds[2], err)
		usage(fds[2], fs)
		return 2
	}

	if f.CPUProfile != "" {
		defer startCPUProfile(fds[2], f.CPUProfile)()
	}
	if f.Log != "" {
		if err := logutil.SetOutputFile(f.Log); err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}
	if f.Help {
		usage(fds[1], fs)
		return 0
	}

	logger.Printf("running with args %q", args[1:])
	err := checkFlags(f)
	if err == nil {
		err = p.Run(fds, f, fs.Args())
	}
	return handleError(fds[2], fs, err)
}

// Starts writing a CPU profile to path and returns a function that stops it.
// Failing to create the file only produces a warning.
func startCPUProfile(stderr io.Writer, path string) func() {
	file, err := os.Create(path)
	if err == nil {
		err = pprof.StartCPUProfile(file)
	}
	if err != nil {
		fmt.Fprintln(stderr, "Warning: cannot create CPU profile:", err)
		fmt.Fprintln(stderr, "Continuing without CPU profiling.")
		if file != nil {
			file.Close()
		}
		return func() {}
	}
	return func() {
		pprof.StopCPUProfile()
		file.Close()
	}
}

// Reports the error returned by a subprogram and converts it to an exit
// status.
func handleError(stderr io.Writer, fs *flag.FlagSet, err error) int {
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(stderr, msg)
	}
	var exit exitError
	switch {
	case errors.As(err, new(badUsageError)):
		usage(stderr, fs)
	case errors.As(err, &exit):
		return exit.status
	}
	return 2
}
