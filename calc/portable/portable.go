package portable

import (
	"fmt"

	"github.com/shoparoo/bignum/calc"
)

// Calculator is the pure-Go calc.Calculator implementation. The zero value
// is ready to use.
type Calculator struct{}

// New returns a portable Calculator. The bignum package's registry always
// autodetects calc/native, so this backend is active only when installed
// explicitly, for example with bignum.SetCalculator.
func New() calc.Calculator { return Calculator{} }

func parseSigned(s string) (neg bool, m mag, err error) {
	if s == "" {
		return false, nil, calc.ErrNumberFormat
	}
	neg = s[0] == '-'
	digits := s
	if neg || s[0] == '+' {
		digits = s[1:]
	}
	m, ok := parseMag(digits)
	if !ok {
		return false, nil, fmt.Errorf("%w: %q", calc.ErrNumberFormat, s)
	}
	if isZero(m) {
		neg = false
	}
	return neg, m, nil
}

func formatSigned(neg bool, m mag) string {
	if isZero(m) {
		return "0"
	}
	if neg {
		return "-" + m.String()
	}
	return m.String()
}

func (Calculator) Add(a, b string) (string, error) {
	an, am, err := parseSigned(a)
	if err != nil {
		return "", err
	}
	bn, bm, err := parseSigned(b)
	if err != nil {
		return "", err
	}
	r := addS(snum{an, am}, snum{bn, bm})
	return formatSigned(r.neg, r.m), nil
}

func (Calculator) Sub(a, b string) (string, error) {
	an, am, err := parseSigned(a)
	if err != nil {
		return "", err
	}
	bn, bm, err := parseSigned(b)
	if err != nil {
		return "", err
	}
	r := subS(snum{an, am}, snum{bn, bm})
	return formatSigned(r.neg, r.m), nil
}

func (Calculator) Mul(a, b string) (string, error) {
	an, am, err := parseSigned(a)
	if err != nil {
		return "", err
	}
	bn, bm, err := parseSigned(b)
	if err != nil {
		return "", err
	}
	r := mulS(snum{an, am}, snum{bn, bm})
	return formatSigned(r.neg, r.m), nil
}

func (Calculator) DivQR(a, b string) (string, string, error) {
	an, am, err := parseSigned(a)
	if err != nil {
		return "", "", err
	}
	bn, bm, err := parseSigned(b)
	if err != nil {
		return "", "", err
	}
	if isZero(bm) {
		return "", "", calc.ErrDivisionByZero
	}
	q, r := divModSigned(snum{an, am}, snum{bn, bm})
	return formatSigned(q.neg, q.m), formatSigned(r.neg, r.m), nil
}

func (c Calculator) DivRound(a, b string, mode calc.RoundingMode) (string, error) {
	an, am, err := parseSigned(a)
	if err != nil {
		return "", err
	}
	bn, bm, err := parseSigned(b)
	if err != nil {
		return "", err
	}
	if isZero(bm) {
		return "", calc.ErrDivisionByZero
	}
	qm, rm := divModMag(am, bm)
	sign := 1
	if an != bn {
		sign = -1
	}
	if isZero(rm) {
		return formatSigned(sign < 0, qm), nil
	}
	twiceRem := mulSmall(rm, 2)
	remCmp := cmpMag(twiceRem, bm)
	var qLow uint64 = 0
	if len(qm) > 0 {
		qLow = uint64(qm[0])
	}
	roundUp, err := calc.Decide(mode, sign, qLow%2 == 1, remCmp)
	if err != nil {
		return "", err
	}
	if roundUp {
		qm = addSmall(qm, 1)
	}
	return formatSigned(sign < 0 && !isZero(qm), qm), nil
}

func (Calculator) Pow(a string, e uint64) (string, error) {
	an, am, err := parseSigned(a)
	if err != nil {
		return "", err
	}
	result := mag{1}
	resultNeg := false
	base := am
	baseNeg := an
	exp := e
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMag(result, base)
			resultNeg = resultNeg != baseNeg
		}
		base = mulMag(base, base)
		baseNeg = false
		exp >>= 1
	}
	if isZero(result) {
		resultNeg = false
	}
	return formatSigned(resultNeg, result), nil
}

func (Calculator) ModPow(base, exp, mod string) (string, error) {
	bn, bm, err := parseSigned(base)
	if err != nil {
		return "", err
	}
	en, em, err := parseSigned(exp)
	if err != nil {
		return "", err
	}
	if en {
		return "", fmt.Errorf("%w: negative exponent", calc.ErrInvalidArgument)
	}
	_, mm, err := parseSigned(mod)
	if err != nil {
		return "", err
	}
	if isZero(mm) {
		return "", calc.ErrDivisionByZero
	}
	_, base0 := divModMag(bm, mm)
	if bn && !isZero(base0) {
		base0 = subMag(mm, base0)
	}
	result := mag{1}
	e := em
	for !isZero(e) {
		if e[0]%2 == 1 {
			result = mulMag(result, base0)
			_, result = divModMag(result, mm)
		}
		base0 = mulMag(base0, base0)
		_, base0 = divModMag(base0, mm)
		e, _ = divModSmall(e, 2)
	}
	return formatSigned(false, result), nil
}

func (Calculator) Mod(a, m string) (string, error) {
	an, am, err := parseSigned(a)
	if err != nil {
		return "", err
	}
	_, mm, err := parseSigned(m)
	if err != nil {
		return "", err
	}
	if isZero(mm) {
		return "", calc.ErrDivisionByZero
	}
	_, r := divModMag(am, mm)
	if an && !isZero(r) {
		r = subMag(mm, r)
	}
	return formatSigned(false, r), nil
}

func (Calculator) ModInverse(a, m string) (string, error) {
	an, am, err := parseSigned(a)
	if err != nil {
		return "", err
	}
	_, mm, err := parseSigned(m)
	if err != nil {
		return "", err
	}
	if isZero(mm) {
		return "", calc.ErrDivisionByZero
	}
	g, x, _ := extGCD(am, mm)
	if cmpMag(g, mag{1}) != 0 {
		return "", calc.ErrNoInverse
	}
	if an {
		x = negS(x)
	}
	_, mx := divModMag(x.m, mm)
	if x.neg && !isZero(mx) {
		mx = subMag(mm, mx)
	}
	return formatSigned(false, mx), nil
}

func (Calculator) GCD(a, b string) (string, error) {
	_, am, err := parseSigned(a)
	if err != nil {
		return "", err
	}
	_, bm, err := parseSigned(b)
	if err != nil {
		return "", err
	}
	return formatSigned(false, gcdMag(am, bm)), nil
}

func (Calculator) LCM(a, b string) (string, error) {
	_, am, err := parseSigned(a)
	if err != nil {
		return "", err
	}
	_, bm, err := parseSigned(b)
	if err != nil {
		return "", err
	}
	if isZero(am) || isZero(bm) {
		return "0", nil
	}
	g := gcdMag(am, bm)
	prod := mulMag(am, bm)
	q, _ := divModMag(prod, g)
	return formatSigned(false, q), nil
}

func (Calculator) Sqrt(n string, mode calc.RoundingMode) (string, error) {
	neg, m, err := parseSigned(n)
	if err != nil {
		return "", err
	}
	if neg {
		return "", calc.ErrNegativeNumber
	}
	q, r := isqrt(m)
	if isZero(r) {
		return formatSigned(false, q), nil
	}
	gap := addSmall(mulSmall(q, 2), 1)
	remCmp := cmpMag(mulSmall(r, 2), gap)
	var qLow uint64
	if len(q) > 0 {
		qLow = uint64(q[0])
	}
	roundUp, err := calc.Decide(mode, 1, qLow%2 == 1, remCmp)
	if err != nil {
		return "", err
	}
	if roundUp {
		q = addSmall(q, 1)
	}
	return formatSigned(false, q), nil
}

func (Calculator) Cmp(a, b string) (int, error) {
	an, am, err := parseSigned(a)
	if err != nil {
		return 0, err
	}
	bn, bm, err := parseSigned(b)
	if err != nil {
		return 0, err
	}
	switch {
	case an && !bn:
		return -1, nil
	case !an && bn:
		return 1, nil
	case an:
		return -cmpMag(am, bm), nil
	default:
		return cmpMag(am, bm), nil
	}
}

func (Calculator) Neg(a string) (string, error) {
	an, am, err := parseSigned(a)
	if err != nil {
		return "", err
	}
	return formatSigned(!an && !isZero(am), am), nil
}

func (Calculator) And(a, b string) (string, error) {
	an, am, err := parseSigned(a)
	if err != nil {
		return "", err
	}
	bn, bm, err := parseSigned(b)
	if err != nil {
		return "", err
	}
	neg, m := and(an, am, bn, bm)
	return formatSigned(neg, m), nil
}

func (Calculator) Or(a, b string) (string, error) {
	an, am, err := parseSigned(a)
	if err != nil {
		return "", err
	}
	bn, bm, err := parseSigned(b)
	if err != nil {
		return "", err
	}
	neg, m := or(an, am, bn, bm)
	return formatSigned(neg, m), nil
}

func (Calculator) Xor(a, b string) (string, error) {
	an, am, err := parseSigned(a)
	if err != nil {
		return "", err
	}
	bn, bm, err := parseSigned(b)
	if err != nil {
		return "", err
	}
	neg, m := xor(an, am, bn, bm)
	return formatSigned(neg, m), nil
}

func (Calculator) Not(a string) (string, error) {
	an, am, err := parseSigned(a)
	if err != nil {
		return "", err
	}
	neg, m := not(an, am)
	return formatSigned(neg, m), nil
}

func (Calculator) FromBase(s string, base int) (string, error) {
	neg := false
	digits := s
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		digits = s[1:]
	}
	m, ok := fromBase(digits, base)
	if !ok {
		return "", fmt.Errorf("%w: %q in base %d", calc.ErrNumberFormat, s, base)
	}
	return formatSigned(neg && !isZero(m), m), nil
}

func (Calculator) ToBase(n string, base int) (string, error) {
	neg, m, err := parseSigned(n)
	if err != nil {
		return "", err
	}
	s := toBase(m, base)
	if neg {
		return "-" + s, nil
	}
	return s, nil
}

func (Calculator) FromArbitraryBase(s, alphabet string) (string, error) {
	if alphabetHasDuplicates(alphabet) {
		return "", fmt.Errorf("%w: alphabet has duplicate digits", calc.ErrInvalidArgument)
	}
	m, ok := fromArbitraryBase(s, alphabet)
	if !ok {
		return "", fmt.Errorf("%w: %q not representable in given alphabet", calc.ErrNumberFormat, s)
	}
	return formatSigned(false, m), nil
}

func (Calculator) ToArbitraryBase(n, alphabet string) (string, error) {
	if alphabetHasDuplicates(alphabet) {
		return "", fmt.Errorf("%w: alphabet has duplicate digits", calc.ErrInvalidArgument)
	}
	neg, m, err := parseSigned(n)
	if err != nil {
		return "", err
	}
	if neg {
		return "", fmt.Errorf("%w: negative value has no arbitrary-base rendering", calc.ErrNegativeNumber)
	}
	s, ok := toArbitraryBase(m, alphabet)
	if !ok {
		return "", fmt.Errorf("%w: alphabet too small", calc.ErrInvalidArgument)
	}
	return s, nil
}
