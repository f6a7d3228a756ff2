package bignum

import (
	"github.com/shoparoo/bignum/calc"
	"github.com/shoparoo/bignum/calc/native"
)

// calculators is the process-wide registry consulted by every BigInteger,
// BigDecimal and BigRational operation. math/big has no availability
// constraints of its own (it is pure Go, part of the standard library),
// so autodetection always resolves to calc/native; calc/portable exists
// to be reached explicitly, for example in tests that want to exercise
// both backends against the same inputs, or in a build that deliberately
// excludes math/big.
var calculators = calc.NewRegistry(func() calc.Calculator {
	return native.New()
})

// SetCalculator overrides the active calculator backend for the whole
// process. It is intended for tests; production code should rely on
// autodetection.
func SetCalculator(c calc.Calculator) {
	calculators.Set(c)
}

func calculator() calc.Calculator {
	return calculators.Get()
}
