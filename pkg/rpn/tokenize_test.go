package rpn

import (
	"math"
	"testing"

	"src.rpncalc.dev/pkg/diag"
	. "src.rpncalc.dev/pkg/tt"
)

type varMap map[string]float64

func (m varMap) Lookup(name string) (float64, bool) {
	v, ok := m[name]
	return v, ok
}

func op(k Kind) Token { return Token{Kind: k} }

var testVars = varMap{"x": 5, "pi": 1, "long_name": -2.5}

func TestTokenize(t *testing.T) {
	Test(t, Fn("Tokenize", Tokenize), Table{
		Args("2 3 +", testVars, 0.0).Rets(
			Sequence{NumberToken(2), NumberToken(3), op(Add)}, nil),
		Args("+ - * / % ^ root fact and not or xor << >>", nil, 0.0).Rets(
			Sequence{
				op(Add), op(Sub), op(Mul), op(Div), op(Mod), op(Pow), op(Root),
				op(Factorial), op(And), op(Not), op(Or), op(Xor),
				op(LeftShift), op(RightShift)},
			nil),
		// Whitespace
		Args("  2\t\n3\r\f+  ", nil, 0.0).Rets(
			Sequence{NumberToken(2), NumberToken(3), op(Add)}, nil),
		Args("", nil, 0.0).Rets(Sequence{}, nil),
		Args(" \t ", nil, 0.0).Rets(Sequence{}, nil),
		// ans
		Args("ans", nil, 7.5).Rets(Sequence{NumberToken(7.5)}, nil),
		Args("ans", nil, math.NaN()).Rets(Sequence{NumberToken(math.NaN())}, nil),
		// Constants, case-insensitive
		Args("PI pi Tau E e", nil, 0.0).Rets(
			Sequence{
				NumberToken(math.Pi), NumberToken(math.Pi),
				NumberToken(2 * math.Pi), NumberToken(math.E), NumberToken(math.E)},
			nil),
		// Variables; a bare word is a constant before it is anything else
		Args("$x $long_name", testVars, 0.0).Rets(
			Sequence{NumberToken(5), NumberToken(-2.5)}, nil),
		Args("pi $pi", testVars, 0.0).Rets(
			Sequence{NumberToken(math.Pi), NumberToken(1)}, nil),
		// Number literals
		Args("1e3 -2.5 +4 .5 inf -Inf nan", nil, 0.0).Rets(
			Sequence{
				NumberToken(1000), NumberToken(-2.5), NumberToken(4),
				NumberToken(0.5), NumberToken(math.Inf(1)),
				NumberToken(math.Inf(-1)), NumberToken(math.NaN())},
			nil),
		// Out of range literals are infinities
		Args("1e400 -1e400", nil, 0.0).Rets(
			Sequence{NumberToken(math.Inf(1)), NumberToken(math.Inf(-1))}, nil),

		// Errors
		Args("2 foo +", testVars, 0.0).Rets(
			Sequence(nil), &InvalidToken{Item: "foo", Ranging: diag.Ranging{From: 2, To: 5}}),
		Args("Ans", nil, 0.0).Rets(
			Sequence(nil), &InvalidToken{Item: "Ans", Ranging: diag.Ranging{From: 0, To: 3}}),
		Args("2 ROOT", nil, 0.0).Rets(
			Sequence(nil), &InvalidToken{Item: "ROOT", Ranging: diag.Ranging{From: 2, To: 6}}),
		Args("1 $nope +", testVars, 0.0).Rets(
			Sequence(nil), &UndefinedVariable{Name: "nope", Ranging: diag.Ranging{From: 2, To: 7}}),
		Args("$", testVars, 0.0).Rets(
			Sequence(nil), &UndefinedVariable{Name: "", Ranging: diag.Ranging{From: 0, To: 1}}),
		Args("$x", nil, 0.0).Rets(
			Sequence(nil), &UndefinedVariable{Name: "x", Ranging: diag.Ranging{From: 0, To: 2}}),
		// Only decimal literals without digit separators
		Args("0x1p4", nil, 0.0).Rets(
			Sequence(nil), &InvalidToken{Item: "0x1p4", Ranging: diag.Ranging{From: 0, To: 5}}),
		Args("1 -0X10p0", nil, 0.0).Rets(
			Sequence(nil), &InvalidToken{Item: "-0X10p0", Ranging: diag.Ranging{From: 2, To: 9}}),
		Args("1_000", nil, 0.0).Rets(
			Sequence(nil), &InvalidToken{Item: "1_000", Ranging: diag.Ranging{From: 0, To: 5}}),
		// The first bad item wins
		Args("bad $nope", testVars, 0.0).Rets(
			Sequence(nil), &InvalidToken{Item: "bad", Ranging: diag.Ranging{From: 0, To: 3}}),
	})
}

func TestKind(t *testing.T) {
	Test(t, Fn("Kind.String", Kind.String), Table{
		Args(Add).Rets("Add"),
		Args(RightShift).Rets("RightShift"),
		Args(Used).Rets("Used"),
		Args(Kind(100)).Rets("Kind(100)"),
	})
	Test(t, Fn("Kind.Arity", Kind.Arity), Table{
		Args(Add).Rets(2),
		Args(Root).Rets(2),
		Args(Factorial).Rets(1),
		Args(Not).Rets(1),
		Args(Number).Rets(0),
		Args(Used).Rets(0),
	})
}

func TestSequence_String(t *testing.T) {
	seq := Sequence{op(Used), AnswerToken(5), NumberToken(0.25), op(Mul)}
	want := "[Used, Answer(5), Number(0.25), Mul]"
	if got := seq.String(); got != want {
		t.Errorf("String() -> %q, want %q", got, want)
	}
}

func TestFormatNumber(t *testing.T) {
	Test(t, Fn("FormatNumber", FormatNumber), Table{
		Args(5.0).Rets("5"),
		Args(-1.0).Rets("-1"),
		Args(0.1).Rets("0.1"),
		Args(1e21).Rets("1000000000000000000000"),
		Args(math.Inf(1)).Rets("inf"),
		Args(math.Inf(-1)).Rets("-inf"),
		Args(math.NaN()).Rets("NaN"),
	})
}

func TestKeywords(t *testing.T) {
	Test(t, Fn("Keywords", Keywords), Table{
		Args().Rets([]string{"and", "fact", "not", "or", "root", "xor"}),
	})
}
