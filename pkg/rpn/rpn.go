// Package rpn implements tokenization and evaluation of postfix (Reverse
// Polish Notation) expressions.
//
// An expression is a whitespace-separated list of items, for example
//
//	2 3 + $x * ans -
//
// Tokenize turns the items into a Sequence of tokens, resolving constants,
// variables and ans to numbers, and Evaluate reduces the sequence in place.
// EvalExpression combines the two.
package rpn

import "math"

// EvalExpression tokenizes and evaluates expr. It reads vars and prevAns and
// never modifies them; updating the variable store and the previous answer
// after a success is up to the caller.
func EvalExpression(expr string, prevAns float64, vars VarLookup, cfg EvalCfg) (float64, error) {
	seq, err := Tokenize(expr, vars, prevAns)
	if err != nil {
		return math.NaN(), err
	}
	return Evaluate(seq, cfg)
}
