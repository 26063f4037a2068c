package numeric

import (
	"fmt"
	"math/big"

	"github.com/lycantropos/clipping/types"
)

// ToRat converts a coordinate value of any [types.SignedNumber] type into an
// exact [big.Rat].
//
// Integer representations convert without any loss of precision. Floating
// representations convert via [big.Rat.SetFloat64], which is exact for the
// specific IEEE-754 value held by v (it does not "fix up" whatever rounding
// already happened when that float was produced). The orientation and
// intersection predicates built on ToRat therefore never introduce
// additional rounding of their own.
func ToRat[T types.SignedNumber](v T) *big.Rat {
	switch x := any(v).(type) {
	case int:
		return new(big.Rat).SetInt64(int64(x))
	case int32:
		return new(big.Rat).SetInt64(int64(x))
	case int64:
		return new(big.Rat).SetInt64(x)
	case float32:
		return new(big.Rat).SetFloat64(float64(x))
	case float64:
		return new(big.Rat).SetFloat64(x)
	default:
		panic(fmt.Errorf("numeric.ToRat: unsupported coordinate type %T", v))
	}
}

// Sign returns -1, 0, or 1 according to whether r is negative, zero, or
// positive. It is a thin wrapper over [big.Rat.Sign] kept so callers reason
// about orientation signs without reaching into math/big directly.
func Sign(r *big.Rat) int {
	return r.Sign()
}

// FromRat converts an exact [big.Rat] back into a [types.SignedNumber]
// coordinate. Floating representations always succeed (the conversion is
// via [big.Rat.Float64]/[big.Rat.Float32], exact whenever the float type can
// hold the value and the nearest representable one otherwise, matching how
// every other float64-based geometry library in the ecosystem rounds).
// Integer representations only succeed when r has denominator 1, meaning
// the value landed exactly on T's lattice; ok is false otherwise (the
// engine produced a genuine fractional crossing point for an
// integer-coordinate input pair, which an integer T cannot represent, so
// the caller reports that rather than silently rounding it away).
func FromRat[T types.SignedNumber](r *big.Rat) (T, bool) {
	var zero T
	switch any(zero).(type) {
	case int, int32, int64:
		if !r.IsInt() {
			return zero, false
		}
		return T(r.Num().Int64()), true
	case float32:
		f, _ := r.Float32()
		return T(f), true
	case float64:
		f, _ := r.Float64()
		return T(f), true
	default:
		return zero, false
	}
}
