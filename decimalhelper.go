package bignum

// pow10Cache holds 10^0 .. 10^18, the same style of small lookup table
// a bounded fixed-precision decimal type keeps for its machine-word
// coefficient. Larger exponents fall back to BigInteger.Pow, since this
// package's decimals have no precision ceiling to size a table around.
var pow10Cache = func() [19]BigInteger {
	var tbl [19]BigInteger
	ten := NewBigInteger(10)
	tbl[0] = bigIntegerOne
	for i := 1; i < len(tbl); i++ {
		tbl[i], _ = tbl[i-1].Mul(ten)
	}
	return tbl
}()

// pow10 returns 10^n for n >= 0.
func pow10(n int) BigInteger {
	if n < 0 {
		panic("bignum: negative power of ten")
	}
	if n < len(pow10Cache) {
		return pow10Cache[n]
	}
	ten := NewBigInteger(10)
	v, err := ten.Pow(uint64(n))
	if err != nil {
		panic(err) // ten.Pow only fails on malformed operands, which ten is not.
	}
	return v
}

// scaleFromReducedFractionDenominator reports the smallest non-negative
// scale s such that 10^s is a multiple of denom, the denominator of a
// fraction already in lowest terms, or ok=false if no finite decimal
// scale represents that fraction (equivalently, if denom has a prime
// factor other than 2 or 5).
//
// The scale is max(count of 2 in denom, count of 5 in denom): each factor
// of 2 needs one more fractional digit to cancel (since 1/2 = 0.5) and
// likewise for 5 (1/5 = 0.2); any remaining factor can never terminate.
func scaleFromReducedFractionDenominator(denom BigInteger) (scale int, ok bool) {
	two := NewBigInteger(2)
	five := NewBigInteger(5)
	rest := denom.Abs()
	var twos, fives int
	for {
		q, r, err := rest.QuoRem(two)
		if err != nil {
			panic(err)
		}
		if !r.IsZero() {
			break
		}
		rest = q
		twos++
	}
	for {
		q, r, err := rest.QuoRem(five)
		if err != nil {
			panic(err)
		}
		if !r.IsZero() {
			break
		}
		rest = q
		fives++
	}
	if !rest.Equal(bigIntegerOne) {
		return 0, false
	}
	if twos > fives {
		return twos, true
	}
	return fives, true
}
