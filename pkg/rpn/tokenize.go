package rpn

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"src.rpncalc.dev/pkg/diag"
	"src.rpncalc.dev/pkg/maths"
)

// VarLookup is the read-only view of the variable store needed by Tokenize.
type VarLookup interface {
	Lookup(name string) (float64, bool)
}

// NoVars is a VarLookup with no variables.
var NoVars VarLookup = noVars{}

type noVars struct{}

func (noVars) Lookup(string) (float64, bool) { return 0, false }

// AnsKeyword is the item that refers to the previous answer.
const AnsKeyword = "ans"

// VarSigil starts a variable reference.
const VarSigil = "$"

var operators = map[string]Kind{
	"+":    Add,
	"-":    Sub,
	"*":    Mul,
	"/":    Div,
	"%":    Mod,
	"^":    Pow,
	"root": Root,
	"fact": Factorial,
	"and":  And,
	"not":  Not,
	"or":   Or,
	"xor":  Xor,
	"<<":   LeftShift,
	">>":   RightShift,
}

// Keywords returns the operators that are spelled as words, sorted.
func Keywords() []string {
	var words []string
	for name := range operators {
		if name[0] >= 'a' && name[0] <= 'z' {
			words = append(words, name)
		}
	}
	sort.Strings(words)
	return words
}

// Tokenize converts an expression into a Sequence. Items are separated by ASCII
// whitespace and classified in this order: operator keywords, ans, constants
// (case-insensitive), $variable references and number literals.
//
// Tokenization stops at the first item that cannot be classified; the error is
// then an *InvalidToken or an *UndefinedVariable, and no sequence is returned.
func Tokenize(expr string, vars VarLookup, prevAns float64) (Sequence, error) {
	if vars == nil {
		vars = NoVars
	}
	items := splitItems(expr)
	seq := make(Sequence, 0, len(items))
	for _, it := range items {
		tok, err := classify(it, vars, prevAns)
		if err != nil {
			return nil, err
		}
		seq = append(seq, tok)
	}
	return seq, nil
}

func classify(it item, vars VarLookup, prevAns float64) (Token, error) {
	if kind, ok := operators[it.text]; ok {
		return Token{Kind: kind}, nil
	}
	if it.text == AnsKeyword {
		return NumberToken(prevAns), nil
	}
	if v, ok := maths.Constant(it.text); ok {
		return NumberToken(v), nil
	}
	if name, ok := strings.CutPrefix(it.text, VarSigil); ok {
		if v, ok := vars.Lookup(name); ok {
			return NumberToken(v), nil
		}
		return Token{}, &UndefinedVariable{Name: name, Ranging: it.Ranging}
	}
	if v, ok := parseNumber(it.text); ok {
		return NumberToken(v), nil
	}
	return Token{}, &InvalidToken{Item: it.text, Ranging: it.Ranging}
}

// Parses a decimal floating-point literal. Literals too large in magnitude
// become infinities. Digit separators and hexadecimal literals are not
// accepted.
func parseNumber(s string) (float64, bool) {
	unsigned := strings.TrimLeft(s, "+-")
	if strings.ContainsRune(s, '_') ||
		strings.HasPrefix(unsigned, "0x") || strings.HasPrefix(unsigned, "0X") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			// v is ±Inf.
			return v, true
		}
		return 0, false
	}
	return v, true
}

// A whitespace-delimited part of an expression and its position.
type item struct {
	text string
	diag.Ranging
}

func splitItems(s string) []item {
	var items []item
	for i := 0; i < len(s); {
		if isSpace(s[i]) {
			i++
			continue
		}
		begin := i
		for i < len(s) && !isSpace(s[i]) {
			i++
		}
		items = append(items, item{s[begin:i], diag.Ranging{From: begin, To: i}})
	}
	return items
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
