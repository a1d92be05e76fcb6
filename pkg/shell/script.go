package shell

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"src.rpncalc.dev/pkg/config"
	"src.rpncalc.dev/pkg/diag"
	"src.rpncalc.dev/pkg/rpn"
)

// Configuration for the script mode.
type scriptCfg struct {
	Config *config.Config
	JSON   bool
}

// Handles each argument as a line, stopping at the first error. It returns the
// exit status.
func script(fds [3]*os.File, args []string, cfg *scriptCfg) int {
	s := newSession(fds[1], cfg.Config)
	history, cleanup := openHistory(fds[2])
	defer cleanup()
	s.history = history
	if cfg.JSON {
		s.showValue = func(expr string, v float64) {
			writeJSON(fds[1], resultInJSON{Expr: expr, Result: jsonNumber(v)})
		}
	}
	applyDefinitions(s, fds[2], cfg.Config.Definitions)

	for i, arg := range args {
		src := rpn.Source{Name: fmt.Sprintf("[arg %d]", i+1), Code: arg}
		quit, err := s.handleLine(src)
		if err != nil {
			if cfg.JSON {
				writeJSON(fds[1], resultInJSON{Expr: arg, Error: err.Error()})
			} else {
				diag.ShowError(fds[2], err)
			}
			return 2
		}
		if quit {
			break
		}
	}
	return 0
}

// An auxiliary struct for converting results to JSON.
type resultInJSON struct {
	Expr   string `json:"expr"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// JSON has no representation of NaN and infinities; they are written as
// strings.
func jsonNumber(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return rpn.FormatNumber(v)
	}
	return v
}

func writeJSON(w io.Writer, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		b = []byte(`{"error":"unable to convert the result to JSON"}`)
	}
	fmt.Fprintf(w, "%s\n", b)
}
