package bignum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBigIntegerCanonicalizes(t *testing.T) {
	tcs := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "123", "123"},
		{"leading plus", "+123", "123"},
		{"leading zeros", "000123", "123"},
		{"negative", "-42", "-42"},
		{"negative zero", "-0", "0"},
		{"zero with zeros", "000", "0"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			v, err := ParseBigInteger(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, v.String())
		})
	}
}

func TestParseBigIntegerRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "+", "-", "12a", "1 2", "1.5"} {
		_, err := ParseBigInteger(in)
		require.ErrorIs(t, err, ErrNumberFormat, "input %q", in)
	}
}

func TestBigIntegerArithmetic(t *testing.T) {
	a := MustParseBigInteger("170141183460469231731687303715884105727")
	b := NewBigInteger(1)
	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, "170141183460469231731687303715884105728", sum.String())

	q, r, err := MustParseBigInteger("-7").QuoRem(NewBigInteger(2))
	require.NoError(t, err)
	require.Equal(t, "-3", q.String())
	require.Equal(t, "-1", r.String())

	m, err := MustParseBigInteger("-7").Mod(NewBigInteger(2))
	require.NoError(t, err)
	require.Equal(t, "1", m.String())
}

func TestBigIntegerFloorDiv(t *testing.T) {
	q, err := MustParseBigInteger("-7").FloorDiv(NewBigInteger(2))
	require.NoError(t, err)
	require.Equal(t, "-4", q.String())

	q, err = MustParseBigInteger("7").FloorDiv(NewBigInteger(-2))
	require.NoError(t, err)
	require.Equal(t, "-4", q.String())
}

func TestBigIntegerModPowModInverse(t *testing.T) {
	got, err := MustParseBigInteger("4").ModPow(NewBigInteger(13), NewBigInteger(497))
	require.NoError(t, err)
	require.Equal(t, "445", got.String())

	inv, err := MustParseBigInteger("3").ModInverse(NewBigInteger(11))
	require.NoError(t, err)
	require.Equal(t, "4", inv.String())

	_, err = MustParseBigInteger("2").ModInverse(NewBigInteger(4))
	require.ErrorIs(t, err, ErrNoInverse)
}

func TestBigIntegerGCDLCM(t *testing.T) {
	g, err := MustParseBigInteger("48").GCD(NewBigInteger(18))
	require.NoError(t, err)
	require.Equal(t, "6", g.String())

	l, err := MustParseBigInteger("4").LCM(NewBigInteger(6))
	require.NoError(t, err)
	require.Equal(t, "12", l.String())
}

func TestBigIntegerSqrt(t *testing.T) {
	got, err := MustParseBigInteger("1000000").Sqrt(Down)
	require.NoError(t, err)
	require.Equal(t, "1000", got.String())

	_, err = MustParseBigInteger("-1").Sqrt(Down)
	require.ErrorIs(t, err, ErrNegativeNumber)
}

func TestBigIntegerBitLen(t *testing.T) {
	require.Equal(t, 0, NewBigInteger(0).BitLen())
	require.Equal(t, 4, NewBigInteger(12).BitLen())
	require.Equal(t, 0, NewBigInteger(-1).BitLen())
	require.Equal(t, 4, NewBigInteger(-12).BitLen())
}

func TestBigIntegerLowestSetBit(t *testing.T) {
	require.Equal(t, -1, NewBigInteger(0).LowestSetBit())
	require.Equal(t, 2, NewBigInteger(12).LowestSetBit())
	require.Equal(t, 2, NewBigInteger(-12).LowestSetBit())
}

func TestBigIntegerTestBit(t *testing.T) {
	v := NewBigInteger(12) // 0b1100
	bit0, err := v.TestBit(0)
	require.NoError(t, err)
	require.False(t, bit0)
	bit2, err := v.TestBit(2)
	require.NoError(t, err)
	require.True(t, bit2)
}

func TestBigIntegerBitwise(t *testing.T) {
	and, err := NewBigInteger(12).And(NewBigInteger(10))
	require.NoError(t, err)
	require.Equal(t, "8", and.String())

	or, err := NewBigInteger(12).Or(NewBigInteger(10))
	require.NoError(t, err)
	require.Equal(t, "14", or.String())

	xor, err := NewBigInteger(12).Xor(NewBigInteger(10))
	require.NoError(t, err)
	require.Equal(t, "6", xor.String())

	require.Equal(t, "-1", NewBigInteger(0).Not().String())
}

func TestBigIntegerBaseConversion(t *testing.T) {
	v, err := FromBase("ff", 16)
	require.NoError(t, err)
	require.Equal(t, "255", v.String())

	s, err := NewBigInteger(255).ToBase(16)
	require.NoError(t, err)
	require.Equal(t, "ff", s)
}

func TestBigIntegerBytesRoundTrip(t *testing.T) {
	v := NewBigInteger(255)
	b, err := v.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0xff}, b)

	got, err := BigIntegerFromBytes([]byte{0xff})
	require.NoError(t, err)
	require.Equal(t, v, got)

	zero := NewBigInteger(0)
	b, err = zero.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0x00}, b)

	_, err = NewBigInteger(-1).Bytes()
	require.ErrorIs(t, err, ErrNegativeNumber)
}

func TestBigIntegerSignedBytesRoundTrip(t *testing.T) {
	tcs := []struct {
		v    int64
		want []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7f}},
		{128, []byte{0x00, 0x80}},
		{-1, []byte{0xff}},
		{-128, []byte{0x80}},
		{-129, []byte{0xff, 0x7f}},
	}
	for _, tc := range tcs {
		v := NewBigInteger(tc.v)
		require.Equal(t, tc.want, v.SignedBytes(), "v=%d", tc.v)

		got, err := BigIntegerFromSignedBytes(tc.want)
		require.NoError(t, err)
		require.Equal(t, v, got, "v=%d", tc.v)
	}
}

func TestBigIntegerMarshalBinaryRoundTrip(t *testing.T) {
	for _, v := range []BigInteger{NewBigInteger(0), NewBigInteger(1), NewBigInteger(-1), NewBigInteger(127), NewBigInteger(-127)} {
		data, err := v.MarshalBinary()
		require.NoError(t, err)
		var got BigInteger
		require.NoError(t, got.UnmarshalBinary(data))
		require.Equal(t, v, got)
	}
}

func TestArbitraryBaseRejectsDuplicateAlphabet(t *testing.T) {
	_, err := FromArbitraryBase("10", "aab")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewBigInteger(5).ToArbitraryBase("aab")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestBigIntegerMaxMin(t *testing.T) {
	a, b := NewBigInteger(3), NewBigInteger(5)
	require.Equal(t, b, Max(a, b))
	require.Equal(t, a, Min(a, b))
}

func TestRandomBitsMasksToRequestedBitCount(t *testing.T) {
	src := repeatingSource{0xff}
	v, err := RandomBits(9, src)
	require.NoError(t, err)
	require.Equal(t, 9, v.BitLen())
}

func TestRandomBitsCanReturnZero(t *testing.T) {
	v, err := RandomBits(8, repeatingSource{0x00})
	require.NoError(t, err)
	require.True(t, v.IsZero(), "an all-zero source must be able to produce zero, not a forced-set bit")
}

func TestRandomRangeRejectsOutOfWidthCandidates(t *testing.T) {
	// width = 5 needs 3 bits; a source that first offers 0b111 (7, out of
	// range) and then 0b010 (2, in range) must reject the first draw and
	// accept the second rather than reducing 7 mod 5 into range.
	src := &sequenceSource{draws: [][]byte{{0x07}, {0x02}}}
	v, err := RandomRange(NewBigInteger(10), NewBigInteger(15), src)
	require.NoError(t, err)
	require.Equal(t, "12", v.String())
	require.Equal(t, 2, src.calls)
}

type sequenceSource struct {
	draws [][]byte
	calls int
}

func (s *sequenceSource) Read(p []byte) (int, error) {
	copy(p, s.draws[s.calls])
	s.calls++
	return len(p), nil
}

func TestBigIntegerShiftedLeftRight(t *testing.T) {
	v := NewBigInteger(5)
	sl, err := v.ShiftedLeft(3)
	require.NoError(t, err)
	require.Equal(t, "40", sl.String())

	sr, err := sl.ShiftedRight(3)
	require.NoError(t, err)
	require.Equal(t, "5", sr.String())

	neg := NewBigInteger(-5)
	sr, err = neg.ShiftedRight(1)
	require.NoError(t, err)
	require.Equal(t, "-3", sr.String())

	_, err = v.ShiftedLeft(-1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestBigIntegerIsEvenIsOdd(t *testing.T) {
	require.True(t, NewBigInteger(4).IsEven())
	require.False(t, NewBigInteger(4).IsOdd())
	require.True(t, NewBigInteger(-3).IsOdd())
	require.False(t, NewBigInteger(-3).IsEven())
	require.True(t, NewBigInteger(0).IsEven())
}

type repeatingSource []byte

func (s repeatingSource) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = s[i%len(s)]
	}
	return len(p), nil
}
