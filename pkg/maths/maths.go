// Package maths contains the numeric operations of the calculator: named
// constants, nth roots, factorials and bitwise operations on truncated
// integers.
//
// All functions are pure and safe to call from multiple goroutines.
package maths

import (
	"math"
	"strings"
)

// Constants that can be referenced by name in expressions. Names are matched
// case-insensitively.
var constants = map[string]float64{
	"PI":  math.Pi,
	"TAU": 2 * math.Pi,
	"E":   math.E,
}

// ConstantNames lists the names of all constants, in the order they are
// documented.
var ConstantNames = []string{"PI", "TAU", "E"}

// Constant returns the value of the named constant.
func Constant(name string) (float64, bool) {
	v, ok := constants[strings.ToUpper(name)]
	return v, ok
}

// NthRoot returns the n-th root of x, computed as x^(1/n).
func NthRoot(n, x float64) float64 {
	return math.Pow(x, 1/n)
}

// Factorial returns n! in a 128-bit accumulator. Products that do not fit in
// 128 bits wrap around.
func Factorial(n uint32) Uint128 {
	acc := Uint128{Lo: 1}
	for x := uint64(n); x > 1; x-- {
		acc = acc.Mul64(x)
		if acc.IsZero() {
			// Every further product stays zero.
			break
		}
	}
	return acc
}

// ToUint32 truncates f towards zero, saturating at the bounds of uint32. NaN
// becomes 0.
func ToUint32(f float64) uint32 {
	switch {
	case f != f, f <= 0:
		return 0
	case f >= math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(f)
}

// ToInt64 truncates f towards zero, saturating at the bounds of int64. NaN
// becomes 0.
func ToInt64(f float64) int64 {
	switch {
	case f != f:
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}
