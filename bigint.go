package bignum

import (
	"crypto/rand"
	"fmt"
	"io"
	"strconv"

	"github.com/calebcase/oops"
)

// BigInteger is a signed arbitrary-precision integer: a canonical decimal
// digit string with an optional leading '-'. The zero value is not a
// valid BigInteger; use ZeroInt(), ParseBigInteger or NewBigInteger.
type BigInteger struct {
	val string
}

var bigIntegerZero = BigInteger{val: "0"}
var bigIntegerOne = BigInteger{val: "1"}

// ZeroInt returns the BigInteger 0.
func ZeroInt() BigInteger { return bigIntegerZero }

// OneInt returns the BigInteger 1.
func OneInt() BigInteger { return bigIntegerOne }

// NewBigInteger converts a machine int64 to a BigInteger.
func NewBigInteger(v int64) BigInteger {
	return BigInteger{val: strconv.FormatInt(v, 10)}
}

// ParseBigInteger parses a signed run of decimal digits, tolerating a
// leading '+' and redundant leading zeros, and returns the canonical
// BigInteger they denote.
func ParseBigInteger(s string) (BigInteger, error) {
	v, err := canonicalizeInteger(s)
	if err != nil {
		return BigInteger{}, oops.Trace(err)
	}
	return BigInteger{val: v}, nil
}

// MustParseBigInteger is like ParseBigInteger but panics on error.
func MustParseBigInteger(s string) BigInteger {
	v, err := ParseBigInteger(s)
	if err != nil {
		panic(err)
	}
	return v
}

func canonicalizeInteger(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("%w: empty string", ErrNumberFormat)
	}
	neg := false
	i := 0
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		i = 1
	}
	if i >= len(s) {
		return "", fmt.Errorf("%w: %q", ErrNumberFormat, s)
	}
	for j := i; j < len(s); j++ {
		if s[j] < '0' || s[j] > '9' {
			return "", fmt.Errorf("%w: %q", ErrNumberFormat, s)
		}
	}
	digits := s[i:]
	k := 0
	for k < len(digits)-1 && digits[k] == '0' {
		k++
	}
	digits = digits[k:]
	if digits == "0" {
		return "0", nil
	}
	if neg {
		return "-" + digits, nil
	}
	return digits, nil
}

func splitSign(v string) (neg bool, mag string) {
	if v[0] == '-' {
		return true, v[1:]
	}
	return false, v
}

func fromSign(neg bool, mag string) BigInteger {
	if mag == "0" || !neg {
		return BigInteger{val: mag}
	}
	return BigInteger{val: "-" + mag}
}

// String returns the canonical decimal representation.
func (b BigInteger) String() string { return b.val }

// Sign returns -1, 0 or 1.
func (b BigInteger) Sign() int {
	switch {
	case b.val == "0":
		return 0
	case b.val[0] == '-':
		return -1
	default:
		return 1
	}
}

func (b BigInteger) IsZero() bool { return b.val == "0" }
func (b BigInteger) IsNeg() bool  { return b.val != "0" && b.val[0] == '-' }
func (b BigInteger) IsPos() bool  { return b.val != "0" && b.val[0] != '-' }

// Neg returns -b.
func (b BigInteger) Neg() BigInteger {
	v, err := calculator().Neg(b.val)
	if err != nil {
		panic(err) // b.val is always canonical; Neg cannot fail.
	}
	return BigInteger{val: v}
}

// Abs returns |b|.
func (b BigInteger) Abs() BigInteger {
	if b.IsNeg() {
		return b.Neg()
	}
	return b
}

func (b BigInteger) Add(o BigInteger) (BigInteger, error) {
	v, err := calculator().Add(b.val, o.val)
	if err != nil {
		return BigInteger{}, oops.Trace(err)
	}
	return BigInteger{val: v}, nil
}

func (b BigInteger) Sub(o BigInteger) (BigInteger, error) {
	v, err := calculator().Sub(b.val, o.val)
	if err != nil {
		return BigInteger{}, oops.Trace(err)
	}
	return BigInteger{val: v}, nil
}

func (b BigInteger) Mul(o BigInteger) (BigInteger, error) {
	v, err := calculator().Mul(b.val, o.val)
	if err != nil {
		return BigInteger{}, oops.Trace(err)
	}
	return BigInteger{val: v}, nil
}

// QuoRem returns the truncated quotient and remainder of b/o: the
// quotient rounds toward zero and the remainder shares b's sign.
func (b BigInteger) QuoRem(o BigInteger) (q, r BigInteger, err error) {
	qs, rs, err := calculator().DivQR(b.val, o.val)
	if err != nil {
		return BigInteger{}, BigInteger{}, oops.Trace(err)
	}
	return BigInteger{val: qs}, BigInteger{val: rs}, nil
}

// Quo returns the truncated quotient of b/o, the q half of QuoRem.
func (b BigInteger) Quo(o BigInteger) (BigInteger, error) {
	q, _, err := b.QuoRem(o)
	return q, err
}

// Rem returns the truncated remainder of b/o, the r half of QuoRem.
func (b BigInteger) Rem(o BigInteger) (BigInteger, error) {
	_, r, err := b.QuoRem(o)
	return r, err
}

// Mod returns the Euclidean remainder of b modulo m, always in [0, |m|).
func (b BigInteger) Mod(m BigInteger) (BigInteger, error) {
	v, err := calculator().Mod(b.val, m.val)
	if err != nil {
		return BigInteger{}, oops.Trace(err)
	}
	return BigInteger{val: v}, nil
}

// FloorDiv returns the quotient of b/o rounded toward negative infinity,
// as opposed to QuoRem's truncation toward zero. Truncated and floored
// division agree unless the truncated remainder is non-zero and its
// sign disagrees with the divisor's, in which case the floored quotient
// is one less.
func (b BigInteger) FloorDiv(o BigInteger) (BigInteger, error) {
	q, r, err := b.QuoRem(o)
	if err != nil {
		return BigInteger{}, err
	}
	if !r.IsZero() && r.IsNeg() != o.IsNeg() {
		return q.Sub(bigIntegerOne)
	}
	return q, nil
}

func (b BigInteger) Pow(exp uint64) (BigInteger, error) {
	v, err := calculator().Pow(b.val, exp)
	if err != nil {
		return BigInteger{}, oops.Trace(err)
	}
	return BigInteger{val: v}, nil
}

func (b BigInteger) ModPow(exp, mod BigInteger) (BigInteger, error) {
	v, err := calculator().ModPow(b.val, exp.val, mod.val)
	if err != nil {
		return BigInteger{}, oops.Trace(err)
	}
	return BigInteger{val: v}, nil
}

// ModInverse returns the inverse of b modulo m, or ErrNoInverse if
// gcd(b, m) != 1.
func (b BigInteger) ModInverse(m BigInteger) (BigInteger, error) {
	v, err := calculator().ModInverse(b.val, m.val)
	if err != nil {
		return BigInteger{}, oops.Trace(err)
	}
	return BigInteger{val: v}, nil
}

func (b BigInteger) GCD(o BigInteger) (BigInteger, error) {
	v, err := calculator().GCD(b.val, o.val)
	if err != nil {
		return BigInteger{}, oops.Trace(err)
	}
	return BigInteger{val: v}, nil
}

func (b BigInteger) LCM(o BigInteger) (BigInteger, error) {
	v, err := calculator().LCM(b.val, o.val)
	if err != nil {
		return BigInteger{}, oops.Trace(err)
	}
	return BigInteger{val: v}, nil
}

// Sqrt returns the integer square root of b, rounded per mode. b must be
// non-negative.
func (b BigInteger) Sqrt(mode RoundingMode) (BigInteger, error) {
	v, err := calculator().Sqrt(b.val, mode)
	if err != nil {
		return BigInteger{}, oops.Trace(err)
	}
	return BigInteger{val: v}, nil
}

func (b BigInteger) Cmp(o BigInteger) int {
	c, err := calculator().Cmp(b.val, o.val)
	if err != nil {
		panic(err) // both operands are already canonical.
	}
	return c
}

func (b BigInteger) Equal(o BigInteger) bool { return b.val == o.val }

func Max(a, b BigInteger) BigInteger {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func Min(a, b BigInteger) BigInteger {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

func (b BigInteger) And(o BigInteger) (BigInteger, error) {
	v, err := calculator().And(b.val, o.val)
	if err != nil {
		return BigInteger{}, oops.Trace(err)
	}
	return BigInteger{val: v}, nil
}

func (b BigInteger) Or(o BigInteger) (BigInteger, error) {
	v, err := calculator().Or(b.val, o.val)
	if err != nil {
		return BigInteger{}, oops.Trace(err)
	}
	return BigInteger{val: v}, nil
}

func (b BigInteger) Xor(o BigInteger) (BigInteger, error) {
	v, err := calculator().Xor(b.val, o.val)
	if err != nil {
		return BigInteger{}, oops.Trace(err)
	}
	return BigInteger{val: v}, nil
}

func (b BigInteger) Not() BigInteger {
	v, err := calculator().Not(b.val)
	if err != nil {
		panic(err)
	}
	return BigInteger{val: v}
}

// IsEven reports whether b is divisible by 2.
func (b BigInteger) IsEven() bool {
	return (b.val[len(b.val)-1]-'0')&1 == 0
}

// IsOdd reports whether b is not divisible by 2.
func (b BigInteger) IsOdd() bool { return !b.IsEven() }

// ShiftedLeft returns b * 2^bits, bits >= 0.
func (b BigInteger) ShiftedLeft(bits int) (BigInteger, error) {
	if bits < 0 {
		return BigInteger{}, fmt.Errorf("%w: negative shift", ErrInvalidArgument)
	}
	return b.Mul(twoPow(bits))
}

// ShiftedRight returns b divided by 2^bits, rounding toward -infinity
// (an arithmetic shift): truncated for non-negative b, floored for
// negative b, so the result always equals floor(b / 2^bits).
func (b BigInteger) ShiftedRight(bits int) (BigInteger, error) {
	if bits < 0 {
		return BigInteger{}, fmt.Errorf("%w: negative shift", ErrInvalidArgument)
	}
	return b.FloorDiv(twoPow(bits))
}

// BitLen returns the number of bits in the minimal two's-complement
// representation of b, excluding the sign bit (so BitLen(-1) == 0, just
// as in java.math.BigInteger).
func (b BigInteger) BitLen() int {
	if b.IsZero() {
		return 0
	}
	neg, mag := splitSign(b.val)
	if neg {
		m, _ := ParseBigInteger(mag)
		m1, _ := m.Sub(bigIntegerOne)
		if m1.IsZero() {
			return 0
		}
		s, _ := calculator().ToBase(m1.val, 2)
		return len(s)
	}
	s, _ := calculator().ToBase(mag, 2)
	return len(s)
}

// LowestSetBit returns the index of the lowest set bit, or -1 if b is
// zero. -x and x share the same lowest set bit in two's complement.
func (b BigInteger) LowestSetBit() int {
	if b.IsZero() {
		return -1
	}
	_, mag := splitSign(b.val)
	m, _ := ParseBigInteger(mag)
	two, _ := ParseBigInteger("2")
	n := 0
	for {
		_, r, err := m.QuoRem(two)
		if err != nil {
			panic(err)
		}
		if !r.IsZero() {
			return n
		}
		m, _, err = m.QuoRem(two)
		if err != nil {
			panic(err)
		}
		n++
	}
}

// TestBit reports the value of bit i (0-indexed, least significant
// first) of b's infinite-precision two's-complement representation.
func (b BigInteger) TestBit(i int) (bool, error) {
	if i < 0 {
		return false, fmt.Errorf("%w: negative bit index", ErrInvalidArgument)
	}
	pow, err := ParseBigInteger("2")
	if err != nil {
		return false, err
	}
	pow, err = pow.Pow(uint64(i))
	if err != nil {
		return false, err
	}
	shifted, err := b.FloorDiv(pow)
	if err != nil {
		return false, err
	}
	two, err := ParseBigInteger("2")
	if err != nil {
		return false, err
	}
	r, err := shifted.Mod(two)
	if err != nil {
		return false, err
	}
	return !r.IsZero(), nil
}

// FromBase parses s (with an optional leading sign) in the given base
// (2-36) using the conventional 0-9a-z alphabet.
func FromBase(s string, base int) (BigInteger, error) {
	v, err := calculator().FromBase(s, base)
	if err != nil {
		return BigInteger{}, oops.Trace(err)
	}
	return BigInteger{val: v}, nil
}

// ToBase renders b in the given base (2-36) using the lowercase 0-9a-z
// alphabet, with a leading '-' for negative values.
func (b BigInteger) ToBase(base int) (string, error) {
	s, err := calculator().ToBase(b.val, base)
	if err != nil {
		return "", oops.Trace(err)
	}
	return s, nil
}

// FromArbitraryBase parses s, a non-negative value, using alphabet's byte
// positions as digit values (base = len(alphabet)).
func FromArbitraryBase(s, alphabet string) (BigInteger, error) {
	v, err := calculator().FromArbitraryBase(s, alphabet)
	if err != nil {
		return BigInteger{}, oops.Trace(err)
	}
	return BigInteger{val: v}, nil
}

// ToArbitraryBase renders b (which must be non-negative) using
// alphabet's bytes as digits.
func (b BigInteger) ToArbitraryBase(alphabet string) (string, error) {
	s, err := calculator().ToArbitraryBase(b.val, alphabet)
	if err != nil {
		return "", oops.Trace(err)
	}
	return s, nil
}

var byteAlphabet = func() string {
	buf := make([]byte, 256)
	for i := range buf {
		buf[i] = byte(i)
	}
	return string(buf)
}()

// magnitudeBytes returns the big-endian base-256 encoding of |b|, with
// zero encoding as a single zero byte rather than an empty slice. It
// never fails, since it always operates on a magnitude.
func (b BigInteger) magnitudeBytes() []byte {
	_, mag := splitSign(b.val)
	s, err := calculator().ToArbitraryBase(mag, byteAlphabet)
	if err != nil {
		panic(err)
	}
	return []byte(s)
}

func bigIntegerFromMagnitudeBytes(data []byte) (BigInteger, error) {
	s, err := calculator().FromArbitraryBase(string(data), byteAlphabet)
	if err != nil {
		return BigInteger{}, oops.Trace(err)
	}
	return BigInteger{val: s}, nil
}

// Bytes returns the unsigned big-endian base-256 encoding of b, with
// zero encoding as a single zero byte. It returns ErrNegativeNumber if
// b is negative, since there is no sign to carry.
func (b BigInteger) Bytes() ([]byte, error) {
	if b.IsNeg() {
		return nil, ErrNegativeNumber
	}
	return b.magnitudeBytes(), nil
}

// BigIntegerFromBytes interprets data as an unsigned big-endian base-256
// magnitude, the inverse of Bytes.
func BigIntegerFromBytes(data []byte) (BigInteger, error) {
	return bigIntegerFromMagnitudeBytes(data)
}

// twoPow returns 2^n as a BigInteger.
func twoPow(n int) BigInteger {
	v, err := NewBigInteger(2).Pow(uint64(n))
	if err != nil {
		panic(err)
	}
	return v
}

// SignedBytes returns the big-endian two's-complement encoding of b,
// using the minimum number of bytes that can represent it, including a
// leading 0x00 or 0xFF sign byte only when one is needed to disambiguate
// the sign of the high-order byte. Zero encodes as a single zero byte.
func (b BigInteger) SignedBytes() []byte {
	n := b.BitLen()/8 + 1
	val := b
	if b.IsNeg() {
		val, _ = twoPow(8 * n).Add(b)
	}
	mag := val.magnitudeBytes()
	if len(mag) >= n {
		return mag
	}
	padded := make([]byte, n)
	copy(padded[n-len(mag):], mag)
	return padded
}

// BigIntegerFromSignedBytes interprets data as a big-endian
// two's-complement integer, the inverse of SignedBytes. An empty slice
// is rejected as malformed.
func BigIntegerFromSignedBytes(data []byte) (BigInteger, error) {
	if len(data) == 0 {
		return BigInteger{}, fmt.Errorf("%w: empty byte slice", ErrNumberFormat)
	}
	val, err := bigIntegerFromMagnitudeBytes(data)
	if err != nil {
		return BigInteger{}, oops.Trace(err)
	}
	if data[0]&0x80 == 0 {
		return val, nil
	}
	mod := twoPow(8 * len(data))
	return val.Sub(mod)
}

// MarshalBinary implements encoding.BinaryMarshaler by packing the sign
// into the lowest bit of the doubled magnitude, so the encoding is a
// single self-describing byte string for any BigInteger including zero.
func (b BigInteger) MarshalBinary() ([]byte, error) {
	neg, mag := splitSign(b.val)
	m, err := ParseBigInteger(mag)
	if err != nil {
		return nil, err
	}
	two, _ := ParseBigInteger("2")
	doubled, err := m.Mul(two)
	if err != nil {
		return nil, err
	}
	if neg {
		doubled, err = doubled.Add(bigIntegerOne)
		if err != nil {
			return nil, err
		}
	}
	return doubled.magnitudeBytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler, the inverse of
// MarshalBinary.
func (b *BigInteger) UnmarshalBinary(data []byte) error {
	doubled, err := BigIntegerFromBytes(data)
	if err != nil {
		return oops.Trace(err)
	}
	two, _ := ParseBigInteger("2")
	q, r, err := doubled.QuoRem(two)
	if err != nil {
		return err
	}
	*b = fromSign(!r.IsZero(), q.val)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (b BigInteger) MarshalText() ([]byte, error) { return []byte(b.val), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BigInteger) UnmarshalText(text []byte) error {
	v, err := ParseBigInteger(string(text))
	if err != nil {
		return oops.Trace(err)
	}
	*b = v
	return nil
}

// RandomSource supplies cryptographically secure random bytes. It is the
// interface crypto/rand.Reader satisfies, kept as a named type so tests
// can substitute a deterministic source.
type RandomSource interface {
	io.Reader
}

// DefaultRandomSource is crypto/rand.Reader, used by RandomBits and
// RandomRange when no source is supplied.
var DefaultRandomSource RandomSource = rand.Reader

// RandomBits returns a uniformly random BigInteger in [0, 2^n), read from
// src. Excess bits in the top byte of the underlying read are masked off;
// no bit is forced, so the zero value is reachable like any other.
func RandomBits(n int, src RandomSource) (BigInteger, error) {
	if n <= 0 {
		return BigInteger{}, fmt.Errorf("%w: bit count must be positive", ErrInvalidArgument)
	}
	nbytes := (n + 7) / 8
	buf := make([]byte, nbytes)
	if _, err := io.ReadFull(src, buf); err != nil {
		return BigInteger{}, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	excess := nbytes*8 - n
	if excess > 0 {
		buf[0] &= 0xFF >> uint(excess)
	}
	return BigIntegerFromBytes(buf)
}

// RandomRange returns a uniformly random BigInteger in [lo, hi), read
// from src, via rejection sampling over RandomBits(bitLen(hi-lo)): redraw
// whenever the candidate falls outside the width, so every value in
// range is equally likely.
func RandomRange(lo, hi BigInteger, src RandomSource) (BigInteger, error) {
	if lo.Cmp(hi) >= 0 {
		return BigInteger{}, fmt.Errorf("%w: empty range", ErrInvalidArgument)
	}
	width, err := hi.Sub(lo)
	if err != nil {
		return BigInteger{}, err
	}
	n := width.BitLen()
	for {
		candidate, err := RandomBits(n, src)
		if err != nil {
			return BigInteger{}, err
		}
		if candidate.Cmp(width) >= 0 {
			continue
		}
		return candidate.Add(lo)
	}
}
