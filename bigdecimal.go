package bignum

import (
	"encoding/binary"
	"fmt"
	"io"
	"strconv"

	"github.com/calebcase/oops"
)

// BigDecimal is an unscaled BigInteger paired with a non-negative scale:
// value = unscaled x 10^(-scale). The coefficient is unbounded; scale
// bookkeeping and method shapes follow a conventional fixed-width decimal
// type, generalized to arbitrary precision.
type BigDecimal struct {
	unscaled BigInteger
	scale    int
}

var bigDecimalZero = BigDecimal{unscaled: bigIntegerZero, scale: 0}
var bigDecimalOne = BigDecimal{unscaled: bigIntegerOne, scale: 0}

// ZeroDecimal returns the BigDecimal 0.
func ZeroDecimal() BigDecimal { return bigDecimalZero }

// OneDecimal returns the BigDecimal 1.
func OneDecimal() BigDecimal { return bigDecimalOne }

// NewBigDecimal builds a BigDecimal from an unscaled coefficient and a
// non-negative scale.
func NewBigDecimal(unscaled BigInteger, scale int) (BigDecimal, error) {
	if scale < 0 {
		return BigDecimal{}, fmt.Errorf("%w: negative scale", ErrInvalidArgument)
	}
	return BigDecimal{unscaled: unscaled, scale: scale}, nil
}

// ParseBigDecimal parses a decimal literal: an optional sign, digits, an
// optional '.' followed by digits, and an optional exponent ('e' or 'E',
// an optional sign, and digits). At least one digit must appear before
// any exponent.
func ParseBigDecimal(s string) (BigDecimal, error) {
	d, err := parseBigDecimal(s)
	if err != nil {
		return BigDecimal{}, oops.Trace(err)
	}
	return d, nil
}

// MustParseBigDecimal is like ParseBigDecimal but panics on error.
func MustParseBigDecimal(s string) BigDecimal {
	d, err := ParseBigDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

func parseBigDecimal(s string) (BigDecimal, error) {
	if s == "" {
		return BigDecimal{}, fmt.Errorf("%w: empty string", ErrNumberFormat)
	}
	i := 0
	neg := false
	if s[i] == '+' || s[i] == '-' {
		neg = s[i] == '-'
		i++
	}
	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intPart := s[intStart:i]

	fracPart := ""
	if i < len(s) && s[i] == '.' {
		i++
		fracStart := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		fracPart = s[fracStart:i]
	}

	if intPart == "" && fracPart == "" {
		return BigDecimal{}, fmt.Errorf("%w: %q has no digits", ErrNumberFormat, s)
	}

	exp := 0
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		eneg := false
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			eneg = s[i] == '-'
			i++
		}
		expStart := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if expStart == i {
			return BigDecimal{}, fmt.Errorf("%w: %q has a malformed exponent", ErrNumberFormat, s)
		}
		ev, err := strconv.Atoi(s[expStart:i])
		if err != nil {
			return BigDecimal{}, fmt.Errorf("%w: %q has a malformed exponent", ErrNumberFormat, s)
		}
		if eneg {
			ev = -ev
		}
		exp = ev
	}

	if i != len(s) {
		return BigDecimal{}, fmt.Errorf("%w: %q has trailing characters", ErrNumberFormat, s)
	}

	digits := intPart + fracPart
	if digits == "" {
		digits = "0"
	}
	unscaled, err := ParseBigInteger(digits)
	if err != nil {
		return BigDecimal{}, err
	}
	scale := len(fracPart) - exp
	if scale < 0 {
		unscaled, err = unscaled.Mul(pow10(-scale))
		if err != nil {
			return BigDecimal{}, err
		}
		scale = 0
	}
	if neg && !unscaled.IsZero() {
		unscaled = unscaled.Neg()
	}
	return BigDecimal{unscaled: unscaled, scale: scale}, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (d BigDecimal) Unscaled() BigInteger { return d.unscaled }
func (d BigDecimal) Scale() int           { return d.scale }

func (d BigDecimal) Sign() int   { return d.unscaled.Sign() }
func (d BigDecimal) IsZero() bool { return d.unscaled.IsZero() }
func (d BigDecimal) IsPos() bool  { return d.unscaled.IsPos() }
func (d BigDecimal) IsNeg() bool  { return d.unscaled.IsNeg() }

func (d BigDecimal) Neg() BigDecimal { return BigDecimal{unscaled: d.unscaled.Neg(), scale: d.scale} }

func (d BigDecimal) Abs() BigDecimal {
	if d.IsNeg() {
		return d.Neg()
	}
	return d
}

// CopySign returns d with the sign of e.
func (d BigDecimal) CopySign(e BigDecimal) BigDecimal {
	if d.IsNeg() != e.IsNeg() {
		return d.Neg()
	}
	return d
}

// Reduce strips trailing zero digits from the unscaled coefficient,
// lowering the scale as far as possible without changing the value.
func (d BigDecimal) Reduce() BigDecimal {
	u := d.unscaled
	s := d.scale
	ten := NewBigInteger(10)
	for s > 0 && !u.IsZero() {
		q, r, err := u.QuoRem(ten)
		if err != nil {
			panic(err)
		}
		if !r.IsZero() {
			break
		}
		u = q
		s--
	}
	if u.IsZero() {
		s = 0
	}
	return BigDecimal{unscaled: u, scale: s}
}

// MinScale returns the smallest scale at which d's value can be
// represented exactly.
func (d BigDecimal) MinScale() int { return d.Reduce().scale }

func (d BigDecimal) IsInt() bool { return d.MinScale() == 0 }

func (d BigDecimal) IsOne() bool {
	r := d.Reduce()
	return r.scale == 0 && r.unscaled.Equal(bigIntegerOne)
}

// WithinOne reports whether |d| < 1.
func (d BigDecimal) WithinOne() bool { return d.Abs().Cmp(bigDecimalOne) < 0 }

// Prec returns the number of significant decimal digits in d's reduced
// coefficient (at least 1, even for zero).
func (d BigDecimal) Prec() int {
	r := d.Reduce()
	return len(r.unscaled.Abs().val)
}

func alignScale(a, b BigDecimal) (au, bu BigInteger, scale int, err error) {
	scale = a.scale
	if b.scale > scale {
		scale = b.scale
	}
	au, err = a.unscaled.Mul(pow10(scale - a.scale))
	if err != nil {
		return
	}
	bu, err = b.unscaled.Mul(pow10(scale - b.scale))
	return
}

func (d BigDecimal) Add(e BigDecimal) (BigDecimal, error) {
	au, bu, scale, err := alignScale(d, e)
	if err != nil {
		return BigDecimal{}, oops.Trace(err)
	}
	sum, err := au.Add(bu)
	if err != nil {
		return BigDecimal{}, oops.Trace(err)
	}
	return BigDecimal{unscaled: sum, scale: scale}, nil
}

func (d BigDecimal) Sub(e BigDecimal) (BigDecimal, error) {
	au, bu, scale, err := alignScale(d, e)
	if err != nil {
		return BigDecimal{}, oops.Trace(err)
	}
	diff, err := au.Sub(bu)
	if err != nil {
		return BigDecimal{}, oops.Trace(err)
	}
	return BigDecimal{unscaled: diff, scale: scale}, nil
}

func (d BigDecimal) Mul(e BigDecimal) (BigDecimal, error) {
	prod, err := d.unscaled.Mul(e.unscaled)
	if err != nil {
		return BigDecimal{}, oops.Trace(err)
	}
	return BigDecimal{unscaled: prod, scale: d.scale + e.scale}, nil
}

// Rescale returns d represented at the given scale, rounding according
// to mode when the scale is reduced.
func (d BigDecimal) Rescale(scale int, mode RoundingMode) (BigDecimal, error) {
	if scale < 0 {
		return BigDecimal{}, fmt.Errorf("%w: negative scale", ErrInvalidArgument)
	}
	diff := scale - d.scale
	if diff >= 0 {
		u, err := d.unscaled.Mul(pow10(diff))
		if err != nil {
			return BigDecimal{}, oops.Trace(err)
		}
		return BigDecimal{unscaled: u, scale: scale}, nil
	}
	divisor := pow10(-diff)
	v, err := calculator().DivRound(d.unscaled.val, divisor.val, mode)
	if err != nil {
		return BigDecimal{}, oops.Trace(err)
	}
	return BigDecimal{unscaled: BigInteger{val: v}, scale: scale}, nil
}

// Round is an alias of Rescale, named the way most decimal libraries
// name the operation.
func (d BigDecimal) Round(scale int, mode RoundingMode) (BigDecimal, error) { return d.Rescale(scale, mode) }

func (d BigDecimal) Trunc(scale int) (BigDecimal, error) { return d.Rescale(scale, Down) }
func (d BigDecimal) Ceil(scale int) (BigDecimal, error)  { return d.Rescale(scale, Ceiling) }
func (d BigDecimal) Floor(scale int) (BigDecimal, error) { return d.Rescale(scale, Floor) }

// Quantize rescales d to e's scale, as Rescale(e.Scale(), mode).
func (d BigDecimal) Quantize(e BigDecimal, mode RoundingMode) (BigDecimal, error) {
	return d.Rescale(e.scale, mode)
}

// Quo returns the truncated integer quotient of d/e, at scale 0.
func (d BigDecimal) Quo(e BigDecimal) (BigDecimal, error) {
	q, _, err := d.QuoRem(e)
	return q, err
}

// Rem returns the remainder of d/e at scale max(d.Scale(), e.Scale()),
// carrying the sign of d.
func (d BigDecimal) Rem(e BigDecimal) (BigDecimal, error) {
	_, r, err := d.QuoRem(e)
	return r, err
}

// QuoRem returns the truncated integer quotient of d/e (scale 0) and the
// corresponding remainder (scale max(d.Scale(), e.Scale()), sign of d),
// such that quotient.Rescale(0, Down)'s unscaled value times e, plus the
// remainder, reconstructs d at their common scale.
func (d BigDecimal) QuoRem(e BigDecimal) (quotient, remainder BigDecimal, err error) {
	if e.IsZero() {
		return BigDecimal{}, BigDecimal{}, ErrDivisionByZero
	}
	au, bu, scale, err := alignScale(d, e)
	if err != nil {
		return BigDecimal{}, BigDecimal{}, oops.Trace(err)
	}
	q, r, err := au.QuoRem(bu)
	if err != nil {
		return BigDecimal{}, BigDecimal{}, oops.Trace(err)
	}
	return BigDecimal{unscaled: q, scale: 0}, BigDecimal{unscaled: r, scale: scale}, nil
}

// DivideBy returns d/e rounded to scale fractional digits according to
// mode. If e is exactly 1, the division is skipped in favor of a plain
// rescale, since d/1 == d at any scale.
func (d BigDecimal) DivideBy(e BigDecimal, scale int, mode RoundingMode) (BigDecimal, error) {
	if scale < 0 {
		return BigDecimal{}, fmt.Errorf("%w: negative scale", ErrInvalidArgument)
	}
	if e.IsZero() {
		return BigDecimal{}, ErrDivisionByZero
	}
	if e.IsOne() {
		return d.Rescale(scale, mode)
	}
	exp := e.scale + scale - d.scale
	num := d.unscaled
	denom := e.unscaled
	var err error
	if exp >= 0 {
		num, err = num.Mul(pow10(exp))
	} else {
		denom, err = denom.Mul(pow10(-exp))
	}
	if err != nil {
		return BigDecimal{}, oops.Trace(err)
	}
	v, err := calculator().DivRound(num.val, denom.val, mode)
	if err != nil {
		return BigDecimal{}, oops.Trace(err)
	}
	return BigDecimal{unscaled: BigInteger{val: v}, scale: scale}, nil
}

// Sqrt returns the square root of d rounded to scale fractional digits
// according to mode. d must be non-negative. The root is first truncated
// at a working precision of two digits beyond scale (or half of d's own
// scale, whichever is larger). When that truncated root is inexact, a
// non-zero digit is appended before the final rounding step, so it lies
// strictly between the same two rounding boundaries as the exact root
// and every mode rounds it the way it would round the exact root.
func (d BigDecimal) Sqrt(scale int, mode RoundingMode) (BigDecimal, error) {
	if d.IsNeg() {
		return BigDecimal{}, ErrNegativeNumber
	}
	if scale < 0 {
		return BigDecimal{}, fmt.Errorf("%w: negative scale", ErrInvalidArgument)
	}
	const guard = 2
	working := scale + guard
	if half := (d.scale + 1) / 2; half > working {
		working = half
	}
	exp := 2*working - d.scale
	n, err := d.unscaled.Mul(pow10(exp))
	if err != nil {
		return BigDecimal{}, oops.Trace(err)
	}
	y, err := n.Sqrt(Down)
	if err != nil {
		return BigDecimal{}, oops.Trace(err)
	}
	sq, err := y.Mul(y)
	if err != nil {
		return BigDecimal{}, oops.Trace(err)
	}
	if !sq.Equal(n) {
		if y, err = y.Mul(NewBigInteger(10)); err == nil {
			y, err = y.Add(bigIntegerOne)
		}
		if err != nil {
			return BigDecimal{}, oops.Trace(err)
		}
		working++
	}
	return BigDecimal{unscaled: y, scale: working}.Rescale(scale, mode)
}

// Cmp compares the numeric values of d and e, ignoring scale.
func (d BigDecimal) Cmp(e BigDecimal) int {
	au, bu, _, err := alignScale(d, e)
	if err != nil {
		panic(err)
	}
	return au.Cmp(bu)
}

func (d BigDecimal) Equal(e BigDecimal) bool { return d.Cmp(e) == 0 }

// CmpTotal orders by value first and, for equal values, by scale, so
// that 1.0 and 1.00 compare equal under Cmp but distinct under
// CmpTotal.
func (d BigDecimal) CmpTotal(e BigDecimal) int {
	if c := d.Cmp(e); c != 0 {
		return c
	}
	switch {
	case d.scale < e.scale:
		return -1
	case d.scale > e.scale:
		return 1
	default:
		return 0
	}
}

func MaxDecimal(a, b BigDecimal) BigDecimal {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func MinDecimal(a, b BigDecimal) BigDecimal {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// String renders d without scientific notation, following the grammar
// [sign] digits ['.' digits].
func (d BigDecimal) String() string {
	neg, mag := splitSign(d.unscaled.val)
	if d.scale == 0 {
		if neg {
			return "-" + mag
		}
		return mag
	}
	for len(mag) <= d.scale {
		mag = "0" + mag
	}
	intPart := mag[:len(mag)-d.scale]
	fracPart := mag[len(mag)-d.scale:]
	s := intPart + "." + fracPart
	if neg {
		s = "-" + s
	}
	return s
}

// Format implements fmt.Formatter, supporting 'v' and 's' (plain
// String), 'q' (quoted), 'f' (String after rescaling to the verb's
// precision, when one is given) and 'k' (percentage: d*100 followed by
// a '%' sign).
func (d BigDecimal) Format(state fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		io.WriteString(state, d.String())
	case 'q':
		io.WriteString(state, strconv.Quote(d.String()))
	case 'f':
		if p, ok := state.Precision(); ok {
			r, err := d.Rescale(p, HalfEven)
			if err != nil {
				io.WriteString(state, d.String())
				return
			}
			io.WriteString(state, r.String())
			return
		}
		io.WriteString(state, d.String())
	case 'k':
		hundred := BigDecimal{unscaled: NewBigInteger(100), scale: 0}
		pct, err := d.Mul(hundred)
		if err != nil {
			io.WriteString(state, d.String())
			return
		}
		if p, ok := state.Precision(); ok {
			pct, err = pct.Rescale(p, HalfEven)
			if err != nil {
				io.WriteString(state, d.String())
				return
			}
		}
		io.WriteString(state, pct.String()+"%")
	default:
		fmt.Fprintf(state, "%%!%c(BigDecimal=%s)", verb, d.String())
	}
}

// MarshalBinary implements encoding.BinaryMarshaler by writing the scale
// as a fixed 4-byte big-endian prefix followed by the unscaled
// coefficient's own binary encoding.
func (d BigDecimal) MarshalBinary() ([]byte, error) {
	u, err := d.unscaled.MarshalBinary()
	if err != nil {
		return nil, oops.Trace(err)
	}
	out := make([]byte, 4+len(u))
	binary.BigEndian.PutUint32(out[:4], uint32(d.scale))
	copy(out[4:], u)
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler, the inverse of
// MarshalBinary.
func (d *BigDecimal) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return fmt.Errorf("%w: binary decimal needs at least 4 bytes, got %d", ErrInvalidArgument, len(data))
	}
	scale := int(binary.BigEndian.Uint32(data[:4]))
	if scale < 0 {
		return fmt.Errorf("%w: negative scale", ErrInvalidArgument)
	}
	var u BigInteger
	if err := u.UnmarshalBinary(data[4:]); err != nil {
		return oops.Trace(err)
	}
	*d = BigDecimal{unscaled: u, scale: scale}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d BigDecimal) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *BigDecimal) UnmarshalText(text []byte) error {
	v, err := ParseBigDecimal(string(text))
	if err != nil {
		return oops.Trace(err)
	}
	*d = v
	return nil
}
