// Package numeric provides the exact-arithmetic helpers the rest of the
// clipping library builds its predicates on.
//
// # Overview
//
// Every orientation, intersection, and ordering test in this library must
// be exact when its input coordinates are exact integers; no
// floating-point heuristics enter the core predicates. This package gives the
// generic geometric types a single place to convert a [types.SignedNumber]
// coordinate into a [math/big.Rat] (exact for every supported
// representation, integer or floating-point) so that downstream sign tests
// never round.
//
// # Features
//
//   - Abs computes the absolute value of any signed number.
//   - ToRat converts any SignedNumber to an exact math/big.Rat.
//   - Sign returns the exact sign of a math/big.Rat (-1, 0, or 1).
package numeric
