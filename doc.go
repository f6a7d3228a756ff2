/*
Package bignum implements arbitrary-precision integer, decimal and
rational arithmetic on top of a pluggable calculator kernel
(github.com/shoparoo/bignum/calc).

# Kinds

Three numeric kinds are provided, each immutable:

  - [BigInteger] is a signed arbitrary-precision integer.
  - [BigDecimal] is an unscaled [BigInteger] paired with a non-negative
    scale: value = unscaled × 10^(-scale). The same value can have several
    representations ("1", "1.0" and "1.00" are equal but not identical).
  - [BigRational] is a numerator/denominator pair of [BigInteger] values.
    The sign is always carried on the numerator and the denominator is
    always strictly positive; every constructor and operation returns
    the fraction in lowest terms.

None of the three kinds has a built-in size limit; precision is bounded
only by available memory.

# Mixed-kind values

[Number] is the common interface satisfied by all three kinds. [ParseNumber]
picks a kind from a string's grammar (a slash means rational, a dot or
exponent means decimal, otherwise integer), and [SumNumbers],
[MaxNumbers] and [MinNumbers] operate over a mix of kinds at once,
always widening their result to the broadest kind present among the
arguments so that no precision is lost to an accumulator narrower than
what was handed in. [ConvertToInteger], [ConvertToDecimal] and
[ConvertToRational] move a single value between kinds explicitly.

# Calculator kernel

Every arithmetic operation above the digit-string level is ultimately
performed by a [calc.Calculator], selected process-wide by a
[calc.Registry]. Two implementations are provided: calc/native wraps
math/big, and calc/portable is a dependency-free fallback. The active
calculator is autodetected on first use; see the calc package and
Registry for details on overriding it, which is primarily useful in
tests that want to exercise both backends against the same inputs.

# Rounding

Operations that may discard precision, such as decimal division,
quantization and integer square roots, take a [RoundingMode]. The available modes
mirror the closed set familiar from other big-decimal libraries: Up,
Down, Ceiling, Floor, the five "half" variants, and Unnecessary, which
requires the operation to be exact and returns [ErrRoundingNeeded]
otherwise. No operation ever rounds silently; if a result cannot be
represented exactly and no mode is given, an error is returned rather
than an approximation.

# Errors

Fallible operations return an error alongside their result rather than
panicking. The parsing and construction functions also have
Must-prefixed wrappers ([MustParseBigInteger], [MustParseBigDecimal],
[MustParseBigRational], [MustNewBigRational] and [MustParseNumber])
that panic instead, for callers that have already validated their
inputs; arithmetic methods have no Must variants. Errors should be
tested with errors.Is against the sentinels in errors.go, never by comparing strings, since the
calculator backend in use may format messages differently.

# Division by zero and rounding necessity are both ordinary errors

There is no implicit overflow: every kind here is unbounded, so the only
failure modes are malformed input, division by zero, a rounding mode of
Unnecessary applied to an inexact result, and operations, such as the
modular inverse of a non-unit, that are mathematically undefined for
their arguments.
*/
package bignum
