package maths

import (
	"math/big"
	"math/bits"
)

// Uint128 is an unsigned 128-bit integer with wrapping multiplication.
type Uint128 struct {
	Hi, Lo uint64
}

// Mul64 returns u*x modulo 2^128.
func (u Uint128) Mul64(x uint64) Uint128 {
	hi, lo := bits.Mul64(u.Lo, x)
	return Uint128{Hi: hi + u.Hi*x, Lo: lo}
}

// IsZero reports whether u is 0.
func (u Uint128) IsZero() bool { return u.Hi == 0 && u.Lo == 0 }

// Big returns u as a big.Int.
func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

// Float64 returns the float64 nearest to u.
func (u Uint128) Float64() float64 {
	if u.Hi == 0 {
		return float64(u.Lo)
	}
	f, _ := new(big.Float).SetInt(u.Big()).Float64()
	return f
}

func (u Uint128) String() string { return u.Big().String() }
