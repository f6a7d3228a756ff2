package bignum

import "github.com/shoparoo/bignum/calc"

// Error kinds returned by this package, re-exported from calc so callers
// never need to import calc directly just to match on an error.
var (
	ErrNumberFormat    = calc.ErrNumberFormat
	ErrInvalidArgument = calc.ErrInvalidArgument
	ErrDivisionByZero  = calc.ErrDivisionByZero
	ErrRoundingNeeded  = calc.ErrRoundingNeeded
	ErrNegativeNumber  = calc.ErrNegativeNumber
	ErrOverflow        = calc.ErrOverflow
	ErrNoInverse       = calc.ErrNoInverse
	ErrRandomSource    = calc.ErrRandomSource
)
