package calc

import "errors"

// Error kinds shared by every Calculator implementation and by the bignum
// package that sits on top of them. Callers should match against these with
// errors.Is rather than comparing error strings.
var (
	ErrNumberFormat    = errors.New("number format")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrRoundingNeeded  = errors.New("rounding necessary")
	ErrNegativeNumber  = errors.New("negative number")
	ErrOverflow        = errors.New("integer overflow")
	ErrNoInverse       = errors.New("no modular inverse")
	ErrRandomSource    = errors.New("random source")
)
