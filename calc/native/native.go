// Package native implements the calc.Calculator interface as a thin
// wrapper over math/big, the ecosystem's native arbitrary-precision
// integer library. It is the default backend autodetected by
// calc.Registry (spec.md §5).
package native

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/shoparoo/bignum/calc"
)

// Calculator is the math/big-backed calc.Calculator implementation.
type Calculator struct{}

// New returns a native Calculator.
func New() calc.Calculator { return Calculator{} }

var bigIntPool = sync.Pool{
	New: func() any { return new(big.Int) },
}

func getInt() *big.Int {
	return bigIntPool.Get().(*big.Int)
}

func putInt(x *big.Int) {
	bigIntPool.Put(x)
}

func parse(s string) (*big.Int, error) {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", calc.ErrNumberFormat, s)
	}
	return x, nil
}

func (Calculator) Add(a, b string) (string, error) {
	x, err := parse(a)
	if err != nil {
		return "", err
	}
	y, err := parse(b)
	if err != nil {
		return "", err
	}
	z := getInt()
	defer putInt(z)
	return z.Add(x, y).String(), nil
}

func (Calculator) Sub(a, b string) (string, error) {
	x, err := parse(a)
	if err != nil {
		return "", err
	}
	y, err := parse(b)
	if err != nil {
		return "", err
	}
	z := getInt()
	defer putInt(z)
	return z.Sub(x, y).String(), nil
}

func (Calculator) Mul(a, b string) (string, error) {
	x, err := parse(a)
	if err != nil {
		return "", err
	}
	y, err := parse(b)
	if err != nil {
		return "", err
	}
	z := getInt()
	defer putInt(z)
	return z.Mul(x, y).String(), nil
}

// DivQR uses big.Int.QuoRem, which implements truncated division exactly
// as spec.md requires: quotient toward zero, remainder sharing the
// dividend's sign.
func (Calculator) DivQR(a, b string) (string, string, error) {
	x, err := parse(a)
	if err != nil {
		return "", "", err
	}
	y, err := parse(b)
	if err != nil {
		return "", "", err
	}
	if y.Sign() == 0 {
		return "", "", calc.ErrDivisionByZero
	}
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(x, y, r)
	return q.String(), r.String(), nil
}

func (Calculator) DivRound(a, b string, mode calc.RoundingMode) (string, error) {
	x, err := parse(a)
	if err != nil {
		return "", err
	}
	y, err := parse(b)
	if err != nil {
		return "", err
	}
	if y.Sign() == 0 {
		return "", calc.ErrDivisionByZero
	}
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(x, y, r)
	if r.Sign() == 0 {
		return q.String(), nil
	}
	sign := x.Sign() * y.Sign()
	twiceRem := new(big.Int).Abs(r)
	twiceRem.Lsh(twiceRem, 1)
	remCmp := twiceRem.CmpAbs(y)
	roundUp, err := calc.Decide(mode, sign, q.Bit(0) == 1, remCmp)
	if err != nil {
		return "", err
	}
	if roundUp {
		if sign < 0 {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}
	return q.String(), nil
}

func (Calculator) Pow(a string, e uint64) (string, error) {
	x, err := parse(a)
	if err != nil {
		return "", err
	}
	z := new(big.Int).Exp(x, new(big.Int).SetUint64(e), nil)
	return z.String(), nil
}

func (Calculator) ModPow(base, exp, mod string) (string, error) {
	b, err := parse(base)
	if err != nil {
		return "", err
	}
	e, err := parse(exp)
	if err != nil {
		return "", err
	}
	if e.Sign() < 0 {
		return "", fmt.Errorf("%w: negative exponent", calc.ErrInvalidArgument)
	}
	m, err := parse(mod)
	if err != nil {
		return "", err
	}
	if m.Sign() == 0 {
		return "", calc.ErrDivisionByZero
	}
	return new(big.Int).Exp(b, e, m).String(), nil
}

// Mod uses big.Int.Mod, which implements Euclidean modulus exactly as
// spec.md requires: the result is always in [0, |m|).
func (Calculator) Mod(a, m string) (string, error) {
	x, err := parse(a)
	if err != nil {
		return "", err
	}
	y, err := parse(m)
	if err != nil {
		return "", err
	}
	if y.Sign() == 0 {
		return "", calc.ErrDivisionByZero
	}
	return new(big.Int).Mod(x, y).String(), nil
}

func (Calculator) ModInverse(a, m string) (string, error) {
	x, err := parse(a)
	if err != nil {
		return "", err
	}
	y, err := parse(m)
	if err != nil {
		return "", err
	}
	if y.Sign() == 0 {
		return "", calc.ErrDivisionByZero
	}
	z := new(big.Int).ModInverse(x, y)
	if z == nil {
		return "", calc.ErrNoInverse
	}
	return z.String(), nil
}

func (Calculator) GCD(a, b string) (string, error) {
	x, err := parse(a)
	if err != nil {
		return "", err
	}
	y, err := parse(b)
	if err != nil {
		return "", err
	}
	return new(big.Int).GCD(nil, nil, new(big.Int).Abs(x), new(big.Int).Abs(y)).String(), nil
}

func (Calculator) LCM(a, b string) (string, error) {
	x, err := parse(a)
	if err != nil {
		return "", err
	}
	y, err := parse(b)
	if err != nil {
		return "", err
	}
	if x.Sign() == 0 || y.Sign() == 0 {
		return "0", nil
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(x), new(big.Int).Abs(y))
	prod := new(big.Int).Mul(x, y)
	prod.Abs(prod)
	return prod.Div(prod, g).String(), nil
}

func (Calculator) Sqrt(n string, mode calc.RoundingMode) (string, error) {
	x, err := parse(n)
	if err != nil {
		return "", err
	}
	if x.Sign() < 0 {
		return "", calc.ErrNegativeNumber
	}
	q := new(big.Int).Sqrt(x)
	r := new(big.Int).Mul(q, q)
	r.Sub(x, r)
	if r.Sign() == 0 {
		return q.String(), nil
	}
	gap := new(big.Int).Lsh(q, 1)
	gap.Add(gap, big.NewInt(1))
	twiceRem := new(big.Int).Lsh(r, 1)
	remCmp := twiceRem.Cmp(gap)
	roundUp, err := calc.Decide(mode, 1, q.Bit(0) == 1, remCmp)
	if err != nil {
		return "", err
	}
	if roundUp {
		q.Add(q, big.NewInt(1))
	}
	return q.String(), nil
}

func (Calculator) Cmp(a, b string) (int, error) {
	x, err := parse(a)
	if err != nil {
		return 0, err
	}
	y, err := parse(b)
	if err != nil {
		return 0, err
	}
	return x.Cmp(y), nil
}

func (Calculator) Neg(a string) (string, error) {
	x, err := parse(a)
	if err != nil {
		return "", err
	}
	return new(big.Int).Neg(x).String(), nil
}

// And, Or and Xor delegate directly to math/big, whose two's-complement
// semantics for negative operands already match spec.md's sign rules.
func (Calculator) And(a, b string) (string, error) {
	x, err := parse(a)
	if err != nil {
		return "", err
	}
	y, err := parse(b)
	if err != nil {
		return "", err
	}
	return new(big.Int).And(x, y).String(), nil
}

func (Calculator) Or(a, b string) (string, error) {
	x, err := parse(a)
	if err != nil {
		return "", err
	}
	y, err := parse(b)
	if err != nil {
		return "", err
	}
	return new(big.Int).Or(x, y).String(), nil
}

func (Calculator) Xor(a, b string) (string, error) {
	x, err := parse(a)
	if err != nil {
		return "", err
	}
	y, err := parse(b)
	if err != nil {
		return "", err
	}
	return new(big.Int).Xor(x, y).String(), nil
}

func (Calculator) Not(a string) (string, error) {
	x, err := parse(a)
	if err != nil {
		return "", err
	}
	return new(big.Int).Not(x).String(), nil
}

func (Calculator) FromBase(s string, base int) (string, error) {
	x, ok := new(big.Int).SetString(s, base)
	if !ok {
		return "", fmt.Errorf("%w: %q in base %d", calc.ErrNumberFormat, s, base)
	}
	return x.String(), nil
}

func (Calculator) ToBase(n string, base int) (string, error) {
	x, err := parse(n)
	if err != nil {
		return "", err
	}
	return x.Text(base), nil
}

func (Calculator) FromArbitraryBase(s, alphabet string) (string, error) {
	base := len(alphabet)
	if base < 2 {
		return "", fmt.Errorf("%w: alphabet too small", calc.ErrInvalidArgument)
	}
	if alphabetHasDuplicates(alphabet) {
		return "", fmt.Errorf("%w: alphabet has duplicate digits", calc.ErrInvalidArgument)
	}
	acc := new(big.Int)
	baseBig := big.NewInt(int64(base))
	for i := 0; i < len(s); i++ {
		v := indexByte(alphabet, s[i])
		if v < 0 {
			return "", fmt.Errorf("%w: %q not representable in given alphabet", calc.ErrNumberFormat, s)
		}
		acc.Mul(acc, baseBig)
		acc.Add(acc, big.NewInt(int64(v)))
	}
	return acc.String(), nil
}

func (Calculator) ToArbitraryBase(n, alphabet string) (string, error) {
	base := len(alphabet)
	if base < 2 {
		return "", fmt.Errorf("%w: alphabet too small", calc.ErrInvalidArgument)
	}
	if alphabetHasDuplicates(alphabet) {
		return "", fmt.Errorf("%w: alphabet has duplicate digits", calc.ErrInvalidArgument)
	}
	x, err := parse(n)
	if err != nil {
		return "", err
	}
	if x.Sign() < 0 {
		return "", fmt.Errorf("%w: negative value has no arbitrary-base rendering", calc.ErrNegativeNumber)
	}
	if x.Sign() == 0 {
		return string(alphabet[0]), nil
	}
	baseBig := big.NewInt(int64(base))
	rem := new(big.Int)
	var out []byte
	cur := new(big.Int).Set(x)
	for cur.Sign() != 0 {
		cur.QuoRem(cur, baseBig, rem)
		out = append(out, alphabet[rem.Int64()])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}

func indexByte(alphabet string, c byte) int {
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == c {
			return i
		}
	}
	return -1
}

// alphabetHasDuplicates reports whether any byte occurs more than once
// in alphabet, which would make the digit-to-value mapping ambiguous.
func alphabetHasDuplicates(alphabet string) bool {
	var seen [256]bool
	for i := 0; i < len(alphabet); i++ {
		b := alphabet[i]
		if seen[b] {
			return true
		}
		seen[b] = true
	}
	return false
}
