package rpn

import (
	"math"

	"src.rpncalc.dev/pkg/maths"
)

// EvalCfg keeps configuration for Evaluate.
type EvalCfg struct {
	// If not nil, called with the sequence before each reduction and once
	// more after the last one. The sequence must not be modified or retained.
	Snapshot func(Sequence)
}

// Evaluate reduces seq in a single left-to-right pass and returns the value
// of the whole expression.
//
// Each operator at index i takes its operands from the nearest slots to its
// left that have not been consumed yet, writes its result into its own slot as
// an Answer and marks the operand slots as Used. No operand stack is kept; the
// sequence itself records what has been consumed. When there are too few
// operands the search stops at index 0, so malformed expressions reuse the
// first slot instead of failing.
//
// The value of the expression is the last Answer in the sequence, or the last
// Number if no operator ran, or NaN if there is neither.
func Evaluate(seq Sequence, cfg EvalCfg) (float64, error) {
	for i := range seq {
		if !seq[i].Kind.IsOperator() {
			continue
		}
		if cfg.Snapshot != nil {
			cfg.Snapshot(seq)
		}
		if err := seq.reduce(i); err != nil {
			return math.NaN(), err
		}
	}
	if cfg.Snapshot != nil {
		cfg.Snapshot(seq)
	}
	return seq.Result(), nil
}

// Result returns the value of a fully reduced sequence.
func (s Sequence) Result() float64 {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].Kind == Answer {
			return s[i].Value
		}
	}
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].Kind == Number {
			return s[i].Value
		}
	}
	return math.NaN()
}

// Executes the operator at index i. The sequence is only written when the
// operands could be read.
func (s Sequence) reduce(i int) error {
	op := s[i].Kind
	var result float64
	if op.Arity() == 1 {
		x, err := s.operand(i, 1)
		if err != nil {
			return err
		}
		result = applyUnary(op, x)
	} else {
		left, err := s.operand(i, 2)
		if err != nil {
			return err
		}
		right, err := s.operand(i, 1)
		if err != nil {
			return err
		}
		result = applyBinary(op, left, right)
	}

	s[i] = AnswerToken(result)
	s[s.skipBack(i, 1)] = Token{Kind: Used}
	if op.Arity() == 2 {
		s[s.skipBack(i, 2)] = Token{Kind: Used}
	}
	return nil
}

func (s Sequence) operand(i, distance int) (float64, error) {
	j := s.skipBack(i, distance)
	v, ok := s[j].Float()
	if !ok {
		return 0, &NotANumber{Index: j, Token: s[j]}
	}
	return v, nil
}

// Returns the index reached by stepping back distance slots from i, or to 0 if
// that would go below 0, and then further back past Used slots. The search
// never goes below index 0, even if slot 0 is Used.
func (s Sequence) skipBack(i, distance int) int {
	j := i - distance
	if j < 0 {
		j = 0
	}
	for j > 0 && s[j].Kind == Used {
		j--
	}
	return j
}

func applyUnary(op Kind, x float64) float64 {
	switch op {
	case Factorial:
		return maths.Factorial(maths.ToUint32(x)).Float64()
	case Not:
		return maths.Not(x)
	}
	panic("unreachable")
}

func applyBinary(op Kind, left, right float64) float64 {
	switch op {
	case Add:
		return left + right
	case Sub:
		return left - right
	case Mul:
		return left * right
	case Div:
		return left / right
	case Mod:
		return math.Mod(left, right)
	case Pow:
		return math.Pow(left, right)
	case Root:
		return maths.NthRoot(left, right)
	case And:
		return maths.And(left, right)
	case Or:
		return maths.Or(left, right)
	case Xor:
		return maths.Xor(left, right)
	case LeftShift:
		return maths.LeftShift(left, right)
	case RightShift:
		return maths.RightShift(left, right)
	}
	panic("unreachable")
}
