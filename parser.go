package bignum

import (
	"strings"

	"github.com/calebcase/oops"
)

// ParseNumber dispatches a textual literal to the right concrete kind by
// grammar: a literal containing '/' parses as a BigRational, one
// containing '.', 'e' or 'E' parses as a BigDecimal, and anything else
// parses as a BigInteger.
func ParseNumber(s string) (Number, error) {
	n, err := parseNumber(s)
	if err != nil {
		return nil, oops.Trace(err)
	}
	return n, nil
}

func parseNumber(s string) (Number, error) {
	switch {
	case strings.ContainsRune(s, '/'):
		return ParseBigRational(s)
	case strings.ContainsAny(s, ".eE"):
		return ParseBigDecimal(s)
	default:
		return ParseBigInteger(s)
	}
}

// MustParseNumber is like ParseNumber but panics on error.
func MustParseNumber(s string) Number {
	n, err := ParseNumber(s)
	if err != nil {
		panic(err)
	}
	return n
}

// ConvertToInteger coerces n to BigInteger, returning ErrRoundingNeeded
// if n carries a non-zero fractional part.
func ConvertToInteger(n Number) (BigInteger, error) {
	r := n.AsBigRational()
	if !r.IsInteger() {
		return BigInteger{}, ErrRoundingNeeded
	}
	return r.Num(), nil
}

// ConvertToDecimal coerces n to BigDecimal at the given scale, rounding
// according to mode.
func ConvertToDecimal(n Number, scale int, mode RoundingMode) (BigDecimal, error) {
	return n.AsBigRational().ToDecimal(scale, mode)
}

// ConvertToRational embeds n into BigRational, the broadest kind, which
// never loses precision regardless of n's concrete kind.
func ConvertToRational(n Number) BigRational {
	return n.AsBigRational()
}
