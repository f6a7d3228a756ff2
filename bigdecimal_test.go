package bignum

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBigDecimalCanonicalizes(t *testing.T) {
	tcs := []struct {
		name string
		in   string
		want string
	}{
		{"plain integer", "123", "123"},
		{"fraction", "1.50", "1.50"},
		{"negative fraction", "-0.25", "-0.25"},
		{"positive exponent", "1.5e2", "150"},
		{"negative exponent", "150e-2", "1.50"},
		{"leading dot", ".5", "0.5"},
		{"trailing dot", "5.", "5"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			d, err := ParseBigDecimal(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, d.String())
		})
	}
}

func TestParseBigDecimalRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "+", "-", ".", "1.2.3", "1e", "abc"} {
		_, err := ParseBigDecimal(in)
		require.ErrorIs(t, err, ErrNumberFormat, "input %q", in)
	}
}

func TestBigDecimalAddSub(t *testing.T) {
	a := MustParseBigDecimal("1.5")
	b := MustParseBigDecimal("2.25")
	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, "3.75", sum.String())

	diff, err := b.Sub(a)
	require.NoError(t, err)
	require.Equal(t, "0.75", diff.String())
}

func TestBigDecimalMul(t *testing.T) {
	a := MustParseBigDecimal("1.5")
	b := MustParseBigDecimal("0.2")
	prod, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, "0.30", prod.String())
}

func TestBigDecimalDivideBy(t *testing.T) {
	a := MustParseBigDecimal("1")
	b := MustParseBigDecimal("3")
	q, err := a.DivideBy(b, 5, HalfEven)
	require.NoError(t, err)
	require.Equal(t, "0.33333", q.String())

	_, err = a.DivideBy(MustParseBigDecimal("0"), 2, HalfEven)
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestBigDecimalRescaleRounding(t *testing.T) {
	d := MustParseBigDecimal("1.25")
	up, err := d.Rescale(1, HalfEven)
	require.NoError(t, err)
	require.Equal(t, "1.2", up.String())

	widened, err := d.Rescale(4, HalfEven)
	require.NoError(t, err)
	require.Equal(t, "1.2500", widened.String())

	_, err = d.Rescale(1, Unnecessary)
	require.ErrorIs(t, err, ErrRoundingNeeded)
}

func TestBigDecimalTruncCeilFloor(t *testing.T) {
	d := MustParseBigDecimal("-1.25")
	tr, err := d.Trunc(1)
	require.NoError(t, err)
	require.Equal(t, "-1.2", tr.String())

	ce, err := d.Ceil(1)
	require.NoError(t, err)
	require.Equal(t, "-1.2", ce.String())

	fl, err := d.Floor(1)
	require.NoError(t, err)
	require.Equal(t, "-1.3", fl.String())
}

func TestBigDecimalReduceMinScale(t *testing.T) {
	d := MustParseBigDecimal("1.5000")
	require.Equal(t, "1.5", d.Reduce().String())
	require.Equal(t, 1, d.MinScale())

	z := MustParseBigDecimal("0.000")
	require.True(t, z.IsZero())
	require.Equal(t, 0, z.MinScale())
}

func TestBigDecimalIsIntIsOne(t *testing.T) {
	require.True(t, MustParseBigDecimal("4.00").IsInt())
	require.False(t, MustParseBigDecimal("4.01").IsInt())
	require.True(t, MustParseBigDecimal("1.00").IsOne())
	require.False(t, MustParseBigDecimal("1.01").IsOne())
}

func TestBigDecimalCmpAndCmpTotal(t *testing.T) {
	a := MustParseBigDecimal("1.0")
	b := MustParseBigDecimal("1.00")
	require.Equal(t, 0, a.Cmp(b))
	require.NotEqual(t, 0, a.CmpTotal(b))

	c := MustParseBigDecimal("2.0")
	require.Equal(t, -1, a.Cmp(c))
}

func TestBigDecimalWithinOneAndPrec(t *testing.T) {
	require.True(t, MustParseBigDecimal("0.999").WithinOne())
	require.False(t, MustParseBigDecimal("1.001").WithinOne())
	require.Equal(t, 3, MustParseBigDecimal("1.230").Prec())
}

func TestBigDecimalSqrt(t *testing.T) {
	d := MustParseBigDecimal("2")
	got, err := d.Sqrt(5, HalfEven)
	require.NoError(t, err)
	require.Equal(t, "1.41421", got.String())

	zero := MustParseBigDecimal("0")
	z, err := zero.Sqrt(3, HalfEven)
	require.NoError(t, err)
	require.Equal(t, "0.000", z.String())

	_, err = MustParseBigDecimal("-1").Sqrt(2, HalfEven)
	require.ErrorIs(t, err, ErrNegativeNumber)
}

func TestBigDecimalMaxMin(t *testing.T) {
	a := MustParseBigDecimal("1.5")
	b := MustParseBigDecimal("2.5")
	require.Equal(t, b, MaxDecimal(a, b))
	require.Equal(t, a, MinDecimal(a, b))
}

func TestBigDecimalQuoRem(t *testing.T) {
	a := MustParseBigDecimal("7.5")
	b := MustParseBigDecimal("2")
	q, r, err := a.QuoRem(b)
	require.NoError(t, err)
	require.Equal(t, "3", q.String())
	require.Equal(t, "1.5", r.String())

	neg := MustParseBigDecimal("-7.5")
	q, r, err = neg.QuoRem(b)
	require.NoError(t, err)
	require.Equal(t, "-3", q.String())
	require.Equal(t, "-1.5", r.String())

	_, _, err = a.QuoRem(MustParseBigDecimal("0"))
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestBigDecimalMarshalBinaryRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1.50", "-3.001", "1000"} {
		d := MustParseBigDecimal(s)
		data, err := d.MarshalBinary()
		require.NoError(t, err)
		var got BigDecimal
		require.NoError(t, got.UnmarshalBinary(data))
		require.Equal(t, d, got)
	}
}

func TestBigDecimalMarshalTextRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1.50", "-3.001", "1000"} {
		d := MustParseBigDecimal(s)
		text, err := d.MarshalText()
		require.NoError(t, err)
		var got BigDecimal
		require.NoError(t, got.UnmarshalText(text))
		require.Equal(t, d, got)
	}
}

func TestBigDecimalFormatVerbs(t *testing.T) {
	d := MustParseBigDecimal("0.125")
	require.Equal(t, "0.125", fmt.Sprintf("%v", d))
	require.Equal(t, "0.125", fmt.Sprintf("%s", d))
	require.Equal(t, `"0.125"`, fmt.Sprintf("%q", d))
	require.Equal(t, "0.12", fmt.Sprintf("%.2f", d))
	require.Equal(t, "12.500%", fmt.Sprintf("%k", d))
	require.Equal(t, "12.50%", fmt.Sprintf("%.2k", d))
}

func TestBigDecimalNegAbsCopySign(t *testing.T) {
	d := MustParseBigDecimal("1.5")
	require.Equal(t, "-1.5", d.Neg().String())
	require.Equal(t, "1.5", d.Neg().Abs().String())
	require.Equal(t, "-1.5", d.CopySign(MustParseBigDecimal("-9")).String())
}
