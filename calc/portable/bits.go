package portable

// twosComplementBits returns the infinite-precision two's-complement bit
// pattern of a signed magnitude, truncated to n bits, least significant
// first. For non-negative values bit i is simply bit i of m; for negative
// values bit i is the complement of bit i of (m-1), per the standard
// identity NOT(x) = -x-1.
func twosComplementBits(neg bool, m mag, n int) []bool {
	var src []bool
	if neg {
		src = bitsOf(subSmallMag(m, 1))
	} else {
		src = bitsOf(m)
	}
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		var b bool
		if i < len(src) {
			b = src[i]
		}
		if neg {
			b = !b
		}
		out[i] = b
	}
	return out
}

func subSmallMag(m mag, x uint64) mag {
	return subMag(m, magFromUint64(x))
}

func magFromUint64(x uint64) mag {
	if x < limbBase {
		if x == 0 {
			return nil
		}
		return mag{uint32(x)}
	}
	return mag{uint32(x % limbBase), uint32(x / limbBase)}
}

func bitwiseCombine(aneg bool, am mag, bneg bool, bm mag, op func(a, b bool) bool, resultNeg bool) mag {
	n := bitLen(am)
	if bl := bitLen(bm); bl > n {
		n = bl
	}
	n += 2 // guard bits for the infinite sign-extension on either side.
	bitsA := twosComplementBits(aneg, am, n)
	bitsB := twosComplementBits(bneg, bm, n)
	result := make([]bool, n)
	for i := range result {
		result[i] = op(bitsA[i], bitsB[i])
	}
	if resultNeg {
		for i := range result {
			result[i] = !result[i]
		}
		return addSmall(bitsToMag(result), 1)
	}
	return bitsToMag(result)
}

// and, or, xor and not implement the two's-complement bitwise operators
// described by spec.md's BigInteger bitwise section.
func and(aneg bool, am mag, bneg bool, bm mag) (neg bool, m mag) {
	neg = aneg && bneg
	return neg, bitwiseCombine(aneg, am, bneg, bm, func(a, b bool) bool { return a && b }, neg)
}

func or(aneg bool, am mag, bneg bool, bm mag) (neg bool, m mag) {
	neg = aneg || bneg
	return neg, bitwiseCombine(aneg, am, bneg, bm, func(a, b bool) bool { return a || b }, neg)
}

func xor(aneg bool, am mag, bneg bool, bm mag) (neg bool, m mag) {
	neg = aneg != bneg
	return neg, bitwiseCombine(aneg, am, bneg, bm, func(a, b bool) bool { return a != b }, neg)
}

// not implements NOT(x) = -x-1 directly, without going through the bit
// arrays and is exact for all values including zero.
func not(aneg bool, am mag) (neg bool, m mag) {
	if !aneg {
		return true, addSmall(am, 1)
	}
	// am >= 1 here since aneg is true only for non-zero values.
	return false, subMag(am, mag{1})
}
