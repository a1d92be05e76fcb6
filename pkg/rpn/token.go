package rpn

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the variant of a Token.
type Kind int

// Possible values of Kind. Operator kinds come first, so that IsOperator is a
// range check.
const (
	Add Kind = iota
	Sub
	Mul
	Div
	Mod
	Pow
	Root
	Factorial
	And
	Or
	Not
	Xor
	LeftShift
	RightShift

	// A literal, a constant or the value of a variable or of ans.
	Number
	// The result of a reduction.
	Answer
	// A slot whose value was consumed by a reduction.
	Used
)

var kindNames = [...]string{
	Add: "Add", Sub: "Sub", Mul: "Mul", Div: "Div", Mod: "Mod", Pow: "Pow",
	Root: "Root", Factorial: "Factorial", And: "And", Or: "Or", Not: "Not",
	Xor: "Xor", LeftShift: "LeftShift", RightShift: "RightShift",
	Number: "Number", Answer: "Answer", Used: "Used",
}

func (k Kind) String() string {
	if 0 <= k && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsOperator reports whether k is one of the operator kinds.
func (k Kind) IsOperator() bool { return Add <= k && k <= RightShift }

// Arity returns the number of operands an operator consumes: 1 for Factorial
// and Not, 2 for the other operators and 0 for non-operators.
func (k Kind) Arity() int {
	switch {
	case k == Factorial || k == Not:
		return 1
	case k.IsOperator():
		return 2
	}
	return 0
}

// Token is one slot of a Sequence. Value is only meaningful when Kind is
// Number or Answer.
type Token struct {
	Kind  Kind
	Value float64
}

// NumberToken returns a Number token.
func NumberToken(v float64) Token { return Token{Kind: Number, Value: v} }

// AnswerToken returns an Answer token.
func AnswerToken(v float64) Token { return Token{Kind: Answer, Value: v} }

// Float returns the numeric payload of Number and Answer tokens. The second
// return value is false for all other kinds.
func (t Token) Float() (float64, bool) {
	if t.Kind == Number || t.Kind == Answer {
		return t.Value, true
	}
	return 0, false
}

func (t Token) String() string {
	if _, ok := t.Float(); ok {
		return t.Kind.String() + "(" + FormatNumber(t.Value) + ")"
	}
	return t.Kind.String()
}

// Sequence is the tokenized form of one expression. Its length is fixed after
// tokenization; evaluation mutates it in place.
type Sequence []Token

func (s Sequence) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, t := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(t.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// FormatNumber formats a number the way the calculator prints it: the shortest
// decimal representation that parses back to the same value, never using an
// exponent. Infinities are written as inf and -inf, which the tokenizer
// accepts as literals.
func FormatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
