package bignum

import "github.com/shoparoo/bignum/calc"

// RoundingMode is an alias of calc.RoundingMode, re-exported so callers of
// this package never need to import calc directly.
type RoundingMode = calc.RoundingMode

// The rounding modes. See calc.Decide for their exact semantics.
const (
	Unnecessary = calc.Unnecessary
	Up          = calc.Up
	Down        = calc.Down
	Ceiling     = calc.Ceiling
	Floor       = calc.Floor
	HalfUp      = calc.HalfUp
	HalfDown    = calc.HalfDown
	HalfCeiling = calc.HalfCeiling
	HalfFloor   = calc.HalfFloor
	HalfEven    = calc.HalfEven
)
