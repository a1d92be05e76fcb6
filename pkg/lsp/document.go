package lsp

import (
	"errors"
	"math"
	"strings"
	"unicode"

	"src.rpncalc.dev/pkg/diag"
	"src.rpncalc.dev/pkg/rpn"
	"src.rpncalc.dev/pkg/vars"
)

// Outcome of evaluating one line of a document.
type lineResult struct {
	// Range of the line without its line ending.
	diag.Ranging
	value    float64
	hasValue bool
	err      error
}

// Evaluates all lines of a document. Blank lines and comments produce no
// result; a failing line doesn't stop the evaluation of later lines.
func evalDocument(docName, content string) []lineResult {
	var store vars.Store
	ans := math.NaN()
	src := rpn.Source{Name: docName, Code: content}

	var results []lineResult
	for _, r := range lineRanges(content) {
		line := content[r.From:r.To]
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		start := r.From + len(line) - len(strings.TrimLeftFunc(line, unicode.IsSpace))
		res := lineResult{Ranging: r}

		if vars.IsAssignment(trimmed) {
			name, exprStart, err := vars.SplitAssignment(trimmed)
			if err != nil {
				res.err = err
			} else if v, err := rpn.EvalExpression(trimmed[exprStart:], ans, &store, rpn.EvalCfg{}); err != nil {
				res.err = rpn.Contextualize(src, start+exprStart, err)
			} else {
				store.Set(name, v)
				res.value, res.hasValue = v, true
			}
		} else if v, err := rpn.EvalExpression(trimmed, ans, &store, rpn.EvalCfg{}); err != nil {
			res.err = rpn.Contextualize(src, start, err)
		} else {
			ans = v
			res.value, res.hasValue = v, true
		}
		results = append(results, res)
	}
	return results
}

// Returns the ranges of all lines in s, excluding line endings. Both \n and
// \r\n end lines.
func lineRanges(s string) []diag.Ranging {
	var ranges []diag.Ranging
	for from := 0; from <= len(s); {
		i := strings.IndexByte(s[from:], '\n')
		if i == -1 {
			if from < len(s) {
				ranges = append(ranges, diag.Ranging{From: from, To: len(s)})
			}
			break
		}
		to := from + i
		if to > from && s[to-1] == '\r' {
			to--
		}
		ranges = append(ranges, diag.Ranging{From: from, To: to})
		from += i + 1
	}
	return ranges
}

// Returns the range and message of an error in a line result. Errors without
// a position cover the whole line.
func errorRange(res lineResult) (diag.Ranging, string) {
	var derr *diag.Error
	if errors.As(res.err, &derr) {
		return derr.Range(), derr.Message
	}
	return res.Ranging, res.err.Error()
}
