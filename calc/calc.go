// Package calc defines the calculator kernel interface consumed by the
// bignum package (spec.md C1), the rounding engine (C3) shared by every
// implementation, and the registry that selects which implementation is
// active (C2).
package calc

import (
	"sync"
	"sync/atomic"
)

// Calculator performs arbitrary-precision arithmetic on canonical signed
// decimal digit strings. A canonical string has no leading zeros, and "0"
// is never signed. Implementations must not mutate their arguments or
// retain references to them.
type Calculator interface {
	Add(a, b string) (string, error)
	Sub(a, b string) (string, error)
	Mul(a, b string) (string, error)

	// DivQR returns the truncated (toward zero) quotient and remainder of
	// a/b. The remainder's sign equals a's sign whenever it is non-zero,
	// and |r| < |b|.
	DivQR(a, b string) (q, r string, err error)

	// DivRound returns a/b rounded according to mode. It returns
	// ErrRoundingNeeded if mode is Unnecessary and the division is
	// inexact.
	DivRound(a, b string, mode RoundingMode) (string, error)

	Pow(a string, e uint64) (string, error)

	// ModPow returns base^exp mod m, normalized into [0, m).
	ModPow(base, exp, mod string) (string, error)

	// Mod returns the Euclidean remainder of a modulo m, in [0, m).
	Mod(a, m string) (string, error)

	// ModInverse returns the inverse of a modulo m, or ErrNoInverse if
	// gcd(a, m) != 1.
	ModInverse(a, m string) (string, error)

	GCD(a, b string) (string, error)
	LCM(a, b string) (string, error)

	// Sqrt returns the integer square root of n (n >= 0), rounded
	// according to mode.
	Sqrt(n string, mode RoundingMode) (string, error)

	Cmp(a, b string) (int, error)
	Neg(a string) (string, error)

	// And, Or and Xor operate on the two's-complement infinite-precision
	// representation of their operands.
	And(a, b string) (string, error)
	Or(a, b string) (string, error)
	Xor(a, b string) (string, error)
	Not(a string) (string, error)

	// FromBase and ToBase convert between decimal and base 2-36 using the
	// alphabet 0-9a-z.
	FromBase(s string, base int) (string, error)
	ToBase(n string, base int) (string, error)

	// FromArbitraryBase and ToArbitraryBase are byte-oriented variants in
	// which alphabet positions define digit values. n must be
	// non-negative for ToArbitraryBase.
	FromArbitraryBase(s, alphabet string) (string, error)
	ToArbitraryBase(n, alphabet string) (string, error)
}

// Registry is a process-wide single-assignment cell holding the active
// Calculator, with a lazy autodetect fallback on first read (spec.md §5).
// A zero value has no autodetect function, so Set must be called on it
// before Get; NewRegistry builds a Registry that can autodetect.
type Registry struct {
	once     sync.Once
	detect   func() Calculator
	current  atomic.Pointer[Calculator]
}

// NewRegistry returns a Registry whose autodetect step invokes detect the
// first time Get is called without a prior Set.
func NewRegistry(detect func() Calculator) *Registry {
	return &Registry{detect: detect}
}

// Set assigns the active Calculator. Assignment is idempotent and is
// expected only at startup or in tests; Set may be called concurrently with
// Get, but callers should not rely on ordering between concurrent Set calls.
func (r *Registry) Set(c Calculator) {
	r.once.Do(func() {})
	r.current.Store(&c)
}

// Get returns the active Calculator, autodetecting one on first call if
// Set has not already been called.
func (r *Registry) Get() Calculator {
	r.once.Do(func() {
		if r.current.Load() == nil {
			c := r.detect()
			r.current.Store(&c)
		}
	})
	if p := r.current.Load(); p != nil {
		return *p
	}
	c := r.detect()
	r.current.Store(&c)
	return c
}
