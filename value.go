package bignum

// Number is the abstract surface shared by BigInteger, BigDecimal and
// BigRational, letting callers hold a heterogeneous collection of values
// and still compare, negate, print or losslessly widen them without
// knowing which concrete kind each one is. The unexported method seals
// the interface to this package's three kinds.
type Number interface {
	CompareTo(Number) int
	Negated() Number
	String() string

	// AsBigRational embeds the value into BigRational, the broadest
	// kind, without any loss of precision.
	AsBigRational() BigRational

	numberKind() int
}

// Kind ranks, in widening order: integer < decimal < rational.
const (
	kindInteger = iota
	kindDecimal
	kindRational
)

func (b BigInteger) numberKind() int  { return kindInteger }
func (d BigDecimal) numberKind() int  { return kindDecimal }
func (r BigRational) numberKind() int { return kindRational }

func (b BigInteger) AsBigRational() BigRational {
	return BigRational{num: b, den: bigIntegerOne}
}

func (d BigDecimal) AsBigRational() BigRational {
	r, err := d.ToRational()
	if err != nil {
		panic(err) // d.scale is always non-negative, so denom = 10^scale never fails.
	}
	return r
}

func (r BigRational) AsBigRational() BigRational { return r }

func (b BigInteger) CompareTo(o Number) int { return b.AsBigRational().Cmp(o.AsBigRational()) }
func (d BigDecimal) CompareTo(o Number) int { return d.AsBigRational().Cmp(o.AsBigRational()) }
func (r BigRational) CompareTo(o Number) int { return r.Cmp(o.AsBigRational()) }

func (b BigInteger) Negated() Number { return b.Neg() }
func (d BigDecimal) Negated() Number { return d.Neg() }
func (r BigRational) Negated() Number { return r.Neg() }

// widenToRank narrows or keeps acc (always an exact value) as the kind
// named by rank. rank must be the broadest kind actually present among
// the operands that produced acc, so the narrowing step (rational back
// down to decimal or integer) is always exact and never rounds.
func widenToRank(acc BigRational, rank int) (Number, error) {
	switch rank {
	case kindInteger:
		v, err := acc.IntegralPart()
		if err != nil {
			return nil, err
		}
		return v, nil
	case kindDecimal:
		d, err := acc.ToExactDecimal()
		if err != nil {
			return nil, err
		}
		return d, nil
	default:
		return acc, nil
	}
}

func broadestKind(ns []Number) int {
	rank := kindInteger
	for _, n := range ns {
		if k := n.numberKind(); k > rank {
			rank = k
		}
	}
	return rank
}

// SumNumbers adds a heterogeneous slice of Numbers and returns the sum
// widened to the broadest kind among them, computed by accumulating
// exactly as a BigRational and narrowing back down at the end (so a
// run of integers stays an integer, and decimals mixed with integers
// stay an exact decimal) rather than rounding at each step.
func SumNumbers(ns ...Number) (Number, error) {
	if len(ns) == 0 {
		return ZeroInt(), nil
	}
	acc := ZeroRational()
	for _, n := range ns {
		var err error
		acc, err = acc.Add(n.AsBigRational())
		if err != nil {
			return nil, err
		}
	}
	return widenToRank(acc, broadestKind(ns))
}

// MaxNumbers returns the largest of a heterogeneous, non-empty slice of
// Numbers, widened to the broadest kind among them.
func MaxNumbers(ns ...Number) (Number, error) {
	return extremeNumber(ns, func(cmp int) bool { return cmp > 0 })
}

// MinNumbers returns the smallest of a heterogeneous, non-empty slice of
// Numbers, widened to the broadest kind among them.
func MinNumbers(ns ...Number) (Number, error) {
	return extremeNumber(ns, func(cmp int) bool { return cmp < 0 })
}

func extremeNumber(ns []Number, better func(cmp int) bool) (Number, error) {
	if len(ns) == 0 {
		return nil, ErrInvalidArgument
	}
	best := ns[0]
	for _, n := range ns[1:] {
		if better(n.CompareTo(best)) {
			best = n
		}
	}
	return widenToRank(best.AsBigRational(), broadestKind(ns))
}
