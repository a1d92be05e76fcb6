package maths

// The bitwise operations truncate their operands to int64 with ToInt64 and
// convert the result back to float64.

func And(a, b float64) float64 { return float64(ToInt64(a) & ToInt64(b)) }

func Or(a, b float64) float64 { return float64(ToInt64(a) | ToInt64(b)) }

func Xor(a, b float64) float64 { return float64(ToInt64(a) ^ ToInt64(b)) }

func Not(a float64) float64 { return float64(^ToInt64(a)) }

// LeftShift shifts a left by amt. Only the low 6 bits of amt are used.
func LeftShift(a, amt float64) float64 {
	return float64(ToInt64(a) << shiftAmount(amt))
}

// RightShift shifts a right by amt, preserving the sign. Only the low 6 bits
// of amt are used.
func RightShift(a, amt float64) float64 {
	return float64(ToInt64(a) >> shiftAmount(amt))
}

func shiftAmount(amt float64) uint {
	return uint(ToInt64(amt) & 63)
}
