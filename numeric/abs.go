package numeric

import "github.com/lycantropos/clipping/types"

// Abs computes the absolute value of a signed number.
//
// This function is generic and works for any type that satisfies the
// [types.SignedNumber] constraint (e.g., int, int32, int64, float32, float64).
func Abs[T types.SignedNumber](n T) T {
	if n < 0 {
		return -n
	}
	return n
}
