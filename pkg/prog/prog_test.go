package prog_test

import (
	"io"
	"os"
	"strings"
	"testing"

	"src.rpncalc.dev/pkg/logutil"
	"src.rpncalc.dev/pkg/must"
	. "src.rpncalc.dev/pkg/prog"
	"src.rpncalc.dev/pkg/prog/progtest"
	"src.rpncalc.dev/pkg/testutil"
)

var (
	Test        = progtest.Test
	ThatRPNCalc = progtest.ThatRPNCalc
)

func TestCommonFlagHandling(t *testing.T) {
	testutil.InTempDir(t)

	Test(t, testProgram{},
		ThatRPNCalc("-bad-flag").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -bad-flag\nUsage:"),
		// -h is treated as a bad flag
		ThatRPNCalc("-h").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -h\nUsage:"),

		ThatRPNCalc("-help").
			WritesStdoutContaining("Usage: rpncalc [flags] [-c expr...]"),

		ThatRPNCalc("-cpuprofile", "cpuprof").DoesNothing(),
		ThatRPNCalc("-cpuprofile", "/a/bad/path").
			WritesStderrContaining("Warning: cannot create CPU profile:"),

		ThatRPNCalc("-log", "/a/bad/path").
			WritesStderrContaining("/a/bad/path"),
	)

	// Check for the effect of -cpuprofile. There isn't much to test beyond a
	// sanity check that the profile file now exists.
	_, err := os.Stat("cpuprof")
	if err != nil {
		t.Errorf("CPU profile file does not exist: %v", err)
	}
}

func TestLogFlag(t *testing.T) {
	testutil.InTempDir(t)
	t.Cleanup(func() { logutil.SetOutput(io.Discard) })

	Test(t, testProgram{},
		ThatRPNCalc("-log", "log", "-c", "1 2 +").DoesNothing(),
	)

	if content := string(must.OK1(os.ReadFile("log"))); !strings.Contains(content, `"1 2 +"`) {
		t.Errorf("log file doesn't contain the arguments; got:\n%s", content)
	}
}

func TestFlagsArePassed(t *testing.T) {
	var got *Flags
	p := programFunc(func(fds [3]*os.File, f *Flags, args []string) error {
		got = f
		return nil
	})
	Test(t, p,
		ThatRPNCalc("-json", "-c", "-verbose", "-config", "c.yaml", "1").DoesNothing(),
	)
	want := Flags{JSON: true, CodeInArg: true, Verbose: true, Config: "c.yaml"}
	if got == nil || *got != want {
		t.Errorf("got flags %+v, want %+v", got, want)
	}

	Test(t, p, ThatRPNCalc("-lsp", "-noconfig").DoesNothing())
	want = Flags{LSP: true, NoConfig: true}
	if *got != want {
		t.Errorf("got flags %+v, want %+v", got, want)
	}
}

func TestConflictingFlags(t *testing.T) {
	Test(t, testProgram{writeOut: "should not run"},
		ThatRPNCalc("-config", "c.yaml", "-noconfig").
			ExitsWith(2).
			WritesStderrContaining("-config and -noconfig are mutually exclusive\nUsage:"),
		ThatRPNCalc("-lsp", "-c", "1").
			ExitsWith(2).
			WritesStderrContaining("-lsp can't be combined with -c or -json\nUsage:"),
		ThatRPNCalc("-lsp", "-json").
			ExitsWith(2).
			WritesStderrContaining("-lsp can't be combined with -c or -json"),
	)
}

func TestNoSuitableSubprogram(t *testing.T) {
	Test(t, testProgram{notSuitable: true},
		ThatRPNCalc().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestComposite(t *testing.T) {
	Test(t,
		Composite(testProgram{notSuitable: true}, testProgram{writeOut: "program 2"}),
		ThatRPNCalc().WritesStdout("program 2"),
	)
}

func TestComposite_NoSuitableSubprogram(t *testing.T) {
	Test(t,
		Composite(testProgram{notSuitable: true}, testProgram{notSuitable: true}),
		ThatRPNCalc().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestComposite_PreferEarlierSubprogram(t *testing.T) {
	Test(t,
		Composite(
			testProgram{writeOut: "program 1"}, testProgram{writeOut: "program 2"}),
		ThatRPNCalc().WritesStdout("program 1"),
	)
}

func TestBadUsageError(t *testing.T) {
	Test(t,
		testProgram{returnErr: BadUsage("lorem ipsum")},
		ThatRPNCalc().ExitsWith(2).WritesStderrContaining("lorem ipsum\nUsage:"),
	)
}

func TestExitError(t *testing.T) {
	Test(t, testProgram{returnErr: Exit(3)},
		ThatRPNCalc().ExitsWith(3),
	)
}

func TestExitError_0(t *testing.T) {
	Test(t, testProgram{returnErr: Exit(0)},
		ThatRPNCalc().ExitsWith(0),
	)
}

type testProgram struct {
	notSuitable bool
	writeOut    string
	returnErr   error
}

func (p testProgram) Run(fds [3]*os.File, _ *Flags, args []string) error {
	if p.notSuitable {
		return ErrNotSuitable
	}
	fds[1].WriteString(p.writeOut)
	return p.returnErr
}

type programFunc func(fds [3]*os.File, f *Flags, args []string) error

func (p programFunc) Run(fds [3]*os.File, f *Flags, args []string) error {
	return p(fds, f, args)
}
