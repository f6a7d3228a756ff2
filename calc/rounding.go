package calc

import "fmt"

// RoundingMode names a policy for resolving a non-exact quotient.
type RoundingMode int

// The rounding modes, mirroring spec.md's closed enum (§4.2, §6).
const (
	Unnecessary RoundingMode = iota
	Up
	Down
	Ceiling
	Floor
	HalfUp
	HalfDown
	HalfCeiling
	HalfFloor
	HalfEven
)

func (m RoundingMode) String() string {
	switch m {
	case Unnecessary:
		return "Unnecessary"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Ceiling:
		return "Ceiling"
	case Floor:
		return "Floor"
	case HalfUp:
		return "HalfUp"
	case HalfDown:
		return "HalfDown"
	case HalfCeiling:
		return "HalfCeiling"
	case HalfFloor:
		return "HalfFloor"
	case HalfEven:
		return "HalfEven"
	default:
		return fmt.Sprintf("RoundingMode(%d)", int(m))
	}
}

// Decide applies mode to a truncated (toward zero) division result and
// reports whether the unsigned quotient magnitude must be incremented by one
// to honor the mode.
//
// sign is the sign of the exact (unrounded) value, +1 or -1; it is
// meaningless when the remainder is zero, but Decide is never called in
// that case (an exact quotient never needs rounding).
//
// quotientOdd is the parity of the truncated quotient's last decimal digit,
// equivalently the parity of its integer value.
//
// remCmp is the three-way comparison of 2*|remainder| against |divisor|:
// -1 if the discarded fraction is less than one half, 0 if exactly one half,
// +1 if more than one half.
func Decide(mode RoundingMode, sign int, quotientOdd bool, remCmp int) (roundUp bool, err error) {
	switch mode {
	case Unnecessary:
		return false, ErrRoundingNeeded
	case Up:
		return true, nil
	case Down:
		return false, nil
	case Ceiling:
		return sign > 0, nil
	case Floor:
		return sign < 0, nil
	case HalfUp:
		return remCmp >= 0, nil
	case HalfDown:
		return remCmp > 0, nil
	case HalfCeiling:
		switch {
		case remCmp != 0:
			return remCmp > 0, nil
		default:
			return sign > 0, nil
		}
	case HalfFloor:
		switch {
		case remCmp != 0:
			return remCmp > 0, nil
		default:
			return sign < 0, nil
		}
	case HalfEven:
		switch {
		case remCmp != 0:
			return remCmp > 0, nil
		default:
			return quotientOdd, nil
		}
	default:
		return false, fmt.Errorf("%w: unknown rounding mode %v", ErrInvalidArgument, mode)
	}
}
