package bignum

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/calebcase/oops"
)

// BigRational is an arbitrary-precision fraction, stored as a numerator
// carrying the sign and a denominator that is always positive and
// coprime with the numerator. The zero value is not valid; use
// ZeroRational, NewBigRational or ParseBigRational.
type BigRational struct {
	num BigInteger
	den BigInteger
}

var bigRationalZero = BigRational{num: bigIntegerZero, den: bigIntegerOne}
var bigRationalOne = BigRational{num: bigIntegerOne, den: bigIntegerOne}

// ZeroRational returns the BigRational 0/1.
func ZeroRational() BigRational { return bigRationalZero }

// OneRational returns the BigRational 1/1.
func OneRational() BigRational { return bigRationalOne }

// NewBigRational builds num/den in lowest terms, moving any sign onto the
// numerator. It returns ErrDivisionByZero if den is zero.
func NewBigRational(num, den BigInteger) (BigRational, error) {
	if den.IsZero() {
		return BigRational{}, ErrDivisionByZero
	}
	if den.IsNeg() {
		num, den = num.Neg(), den.Neg()
	}
	return reduceRational(num, den)
}

// MustNewBigRational is like NewBigRational but panics on error.
func MustNewBigRational(num, den BigInteger) BigRational {
	r, err := NewBigRational(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

func reduceRational(num, den BigInteger) (BigRational, error) {
	if num.IsZero() {
		return BigRational{num: bigIntegerZero, den: bigIntegerOne}, nil
	}
	g, err := num.Abs().GCD(den)
	if err != nil {
		return BigRational{}, oops.Trace(err)
	}
	if !g.Equal(bigIntegerOne) {
		num, err = num.QuoRemExact(g)
		if err != nil {
			return BigRational{}, oops.Trace(err)
		}
		den, err = den.QuoRemExact(g)
		if err != nil {
			return BigRational{}, oops.Trace(err)
		}
	}
	return BigRational{num: num, den: den}, nil
}

// QuoRemExact divides b by o, which must divide it evenly, and returns the
// quotient. It is a small convenience wrapper around QuoRem for the common
// case of dividing out a known common factor; the remainder is not
// checked, and an error is returned only when o is zero.
func (b BigInteger) QuoRemExact(o BigInteger) (BigInteger, error) {
	q, _, err := b.QuoRem(o)
	if err != nil {
		return BigInteger{}, err
	}
	return q, nil
}

// ParseBigRational parses either "m/n" rational notation or a plain
// decimal literal accepted by ParseBigDecimal.
func ParseBigRational(s string) (BigRational, error) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		numStr, denStr := s[:i], s[i+1:]
		num, err := ParseBigInteger(numStr)
		if err != nil {
			return BigRational{}, oops.Trace(err)
		}
		den, err := ParseBigInteger(denStr)
		if err != nil {
			return BigRational{}, oops.Trace(err)
		}
		r, err := NewBigRational(num, den)
		if err != nil {
			return BigRational{}, oops.Trace(err)
		}
		return r, nil
	}
	d, err := ParseBigDecimal(s)
	if err != nil {
		return BigRational{}, oops.Trace(err)
	}
	return d.ToRational()
}

// MustParseBigRational is like ParseBigRational but panics on error.
func MustParseBigRational(s string) BigRational {
	r, err := ParseBigRational(s)
	if err != nil {
		panic(err)
	}
	return r
}

func (r BigRational) Num() BigInteger { return r.num }
func (r BigRational) Den() BigInteger { return r.den }

func (r BigRational) Sign() int    { return r.num.Sign() }
func (r BigRational) IsZero() bool { return r.num.IsZero() }
func (r BigRational) IsPos() bool  { return r.num.IsPos() }
func (r BigRational) IsNeg() bool  { return r.num.IsNeg() }

// IsInteger reports whether r's denominator is 1.
func (r BigRational) IsInteger() bool { return r.den.Equal(bigIntegerOne) }

func (r BigRational) Neg() BigRational { return BigRational{num: r.num.Neg(), den: r.den} }

func (r BigRational) Abs() BigRational {
	if r.IsNeg() {
		return r.Neg()
	}
	return r
}

// Inv returns 1/r, or ErrDivisionByZero if r is zero.
func (r BigRational) Inv() (BigRational, error) {
	if r.IsZero() {
		return BigRational{}, ErrDivisionByZero
	}
	if r.num.IsNeg() {
		return BigRational{num: r.den.Neg(), den: r.num.Neg()}, nil
	}
	return BigRational{num: r.den, den: r.num}, nil
}

func (r BigRational) Add(o BigRational) (BigRational, error) {
	// a/b + c/d = (a*d + c*b) / (b*d)
	ad, err := r.num.Mul(o.den)
	if err != nil {
		return BigRational{}, oops.Trace(err)
	}
	cb, err := o.num.Mul(r.den)
	if err != nil {
		return BigRational{}, oops.Trace(err)
	}
	num, err := ad.Add(cb)
	if err != nil {
		return BigRational{}, oops.Trace(err)
	}
	den, err := r.den.Mul(o.den)
	if err != nil {
		return BigRational{}, oops.Trace(err)
	}
	return reduceRational(num, den)
}

func (r BigRational) Sub(o BigRational) (BigRational, error) { return r.Add(o.Neg()) }

func (r BigRational) Mul(o BigRational) (BigRational, error) {
	// Cross-reduce before multiplying, the way a fraction is simplified by
	// hand, so the intermediate products stay as small as possible.
	a, b := r.num, r.den
	c, d := o.num, o.den
	if g, err := a.Abs().GCD(d); err != nil {
		panic(err) // canonical operands; GCD cannot fail.
	} else if !g.Equal(bigIntegerOne) {
		a, _ = a.QuoRemExact(g)
		d, _ = d.QuoRemExact(g)
	}
	if g, err := c.Abs().GCD(b); err != nil {
		panic(err)
	} else if !g.Equal(bigIntegerOne) {
		c, _ = c.QuoRemExact(g)
		b, _ = b.QuoRemExact(g)
	}
	num, err := a.Mul(c)
	if err != nil {
		return BigRational{}, oops.Trace(err)
	}
	den, err := b.Mul(d)
	if err != nil {
		return BigRational{}, oops.Trace(err)
	}
	return reduceRational(num, den)
}

// DivBy returns r/o, or ErrDivisionByZero if o is zero.
func (r BigRational) DivBy(o BigRational) (BigRational, error) {
	inv, err := o.Inv()
	if err != nil {
		return BigRational{}, err
	}
	return r.Mul(inv)
}

// IntegralPart returns the truncated-toward-zero integer part of r, as
// numerator quotient denominator.
func (r BigRational) IntegralPart() (BigInteger, error) {
	q, _, err := r.num.QuoRem(r.den)
	if err != nil {
		return BigInteger{}, oops.Trace(err)
	}
	return q, nil
}

// FractionalPart returns the signed remainder of r, such that
// IntegralPart() + FractionalPart() == r exactly.
func (r BigRational) FractionalPart() (BigRational, error) {
	_, rem, err := r.num.QuoRem(r.den)
	if err != nil {
		return BigRational{}, oops.Trace(err)
	}
	return reduceRational(rem, r.den)
}

// RepeatingDecimalString renders r as a decimal expansion, enclosing any
// repeating digit block in parentheses and terminating exactly when the
// division does. It tracks each remainder seen at each digit position
// via long division; a remainder recurring identifies the start of the
// repeating block, and a remainder of zero identifies termination.
func (r BigRational) RepeatingDecimalString() string {
	intPart, err := r.IntegralPart()
	if err != nil {
		panic(err)
	}
	frac, err := r.FractionalPart()
	if err != nil {
		panic(err)
	}
	if frac.IsZero() {
		return intPart.String()
	}

	neg := frac.IsNeg()
	rem := frac.num.Abs()
	den := frac.den
	ten := NewBigInteger(10)

	var digits strings.Builder
	seen := map[string]int{}
	repeatStart := -1
	for !rem.IsZero() {
		key := rem.String()
		if pos, ok := seen[key]; ok {
			repeatStart = pos
			break
		}
		seen[key] = digits.Len()
		rem, err = rem.Mul(ten)
		if err != nil {
			panic(err)
		}
		var digit BigInteger
		digit, rem, err = rem.QuoRem(den)
		if err != nil {
			panic(err)
		}
		digits.WriteString(digit.String())
	}

	var buf strings.Builder
	if neg {
		buf.WriteByte('-')
	}
	buf.WriteString(intPart.Abs().String())
	buf.WriteByte('.')
	all := digits.String()
	if repeatStart < 0 {
		buf.WriteString(all)
	} else {
		buf.WriteString(all[:repeatStart])
		buf.WriteByte('(')
		buf.WriteString(all[repeatStart:])
		buf.WriteByte(')')
	}
	return buf.String()
}

// Power raises r to the exp-th power. A negative exponent inverts r
// first, and returns ErrDivisionByZero if r is zero.
func (r BigRational) Power(exp int64) (BigRational, error) {
	if exp < 0 {
		inv, err := r.Inv()
		if err != nil {
			return BigRational{}, err
		}
		return inv.Power(-exp)
	}
	num, err := r.num.Pow(uint64(exp))
	if err != nil {
		return BigRational{}, oops.Trace(err)
	}
	den, err := r.den.Pow(uint64(exp))
	if err != nil {
		return BigRational{}, oops.Trace(err)
	}
	return BigRational{num: num, den: den}, nil
}

// Cmp compares the numeric values of r and o.
func (r BigRational) Cmp(o BigRational) int {
	lhs, err := r.num.Mul(o.den)
	if err != nil {
		panic(err)
	}
	rhs, err := o.num.Mul(r.den)
	if err != nil {
		panic(err)
	}
	return lhs.Cmp(rhs)
}

func (r BigRational) Equal(o BigRational) bool { return r.num.Equal(o.num) && r.den.Equal(o.den) }

func MaxRational(a, b BigRational) BigRational {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func MinRational(a, b BigRational) BigRational {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// String renders r as "num/den", omitting the denominator when r is an
// integer.
func (r BigRational) String() string {
	if r.IsInteger() {
		return r.num.String()
	}
	return r.num.String() + "/" + r.den.String()
}

// RationalString renders r as "num<sep>den" unconditionally, even when
// r is an integer.
func (r BigRational) RationalString(sep string) string {
	return r.num.String() + sep + r.den.String()
}

// ToDecimal converts r to a BigDecimal at the given scale, rounding
// according to mode.
func (r BigRational) ToDecimal(scale int, mode RoundingMode) (BigDecimal, error) {
	num, err := NewBigDecimal(r.num, 0)
	if err != nil {
		return BigDecimal{}, err
	}
	den, err := NewBigDecimal(r.den, 0)
	if err != nil {
		return BigDecimal{}, err
	}
	return num.DivideBy(den, scale, mode)
}

// ToRational converts d to the exactly equal BigRational.
func (d BigDecimal) ToRational() (BigRational, error) {
	den := pow10(d.scale)
	return NewBigRational(d.unscaled, den)
}

// ToExactDecimal converts r to the exactly equal BigDecimal, if r's
// denominator's only prime factors are 2 and 5; otherwise it returns
// ErrRoundingNeeded, since the expansion is non-terminating and no
// finite scale can represent the value exactly.
func (r BigRational) ToExactDecimal() (BigDecimal, error) {
	scale, ok := scaleFromReducedFractionDenominator(r.den)
	if !ok {
		return BigDecimal{}, fmt.Errorf("%w: %s has no finite decimal expansion", ErrRoundingNeeded, r.String())
	}
	factor, err := pow10(scale).QuoRemExact(r.den)
	if err != nil {
		return BigDecimal{}, oops.Trace(err)
	}
	unscaled, err := r.num.Mul(factor)
	if err != nil {
		return BigDecimal{}, oops.Trace(err)
	}
	return NewBigDecimal(unscaled, scale)
}

// ApproxFloat64 returns a float64 approximation of r's value, computed
// as float64(num) / float64(den). exact is true only when r is an
// integer that the returned float64 equals precisely; a non-integer r
// is always reported as inexact, even when the float64 happens to equal
// it (as for 1/2).
func (r BigRational) ApproxFloat64() (v float64, exact bool) {
	num, errN := strconv.ParseFloat(r.num.String(), 64)
	den, errD := strconv.ParseFloat(r.den.String(), 64)
	if errN != nil || errD != nil || den == 0 {
		return 0, false
	}
	v = num / den
	exact = r.IsInteger() && strconv.FormatFloat(v, 'f', 0, 64) == r.num.String()
	return v, exact
}
