package portable

import "strings"

const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// fromBase parses an unsigned digit string in the given base (2-36) using
// the conventional 0-9a-z alphabet, case-insensitively.
func fromBase(s string, base int) (mag, bool) {
	if base < 2 || base > 36 || s == "" {
		return nil, false
	}
	acc := mag(nil)
	for i := 0; i < len(s); i++ {
		v := digitValue(s[i])
		if v < 0 || v >= base {
			return nil, false
		}
		acc = addSmall(mulSmall(acc, uint64(base)), uint64(v))
	}
	return acc, true
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// toBase renders m in the given base (2-36) using the lowercase 0-9a-z
// alphabet, with no leading zeros ("0" for zero itself).
func toBase(m mag, base int) string {
	if base < 2 || base > 36 {
		panic("portable: base out of range")
	}
	if isZero(m) {
		return "0"
	}
	var digits []byte
	for !isZero(m) {
		var r uint64
		m, r = divModSmall(m, uint64(base))
		digits = append(digits, digitAlphabet[r])
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
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

// fromArbitraryBase parses s using alphabet's byte positions as digit
// values; the base is len(alphabet).
func fromArbitraryBase(s, alphabet string) (mag, bool) {
	base := len(alphabet)
	if base < 2 || s == "" || alphabetHasDuplicates(alphabet) {
		return nil, false
	}
	acc := mag(nil)
	for i := 0; i < len(s); i++ {
		v := strings.IndexByte(alphabet, s[i])
		if v < 0 {
			return nil, false
		}
		acc = addSmall(mulSmall(acc, uint64(base)), uint64(v))
	}
	return acc, true
}

// toArbitraryBase renders m using alphabet's bytes as digits.
func toArbitraryBase(m mag, alphabet string) (string, bool) {
	base := len(alphabet)
	if base < 2 || alphabetHasDuplicates(alphabet) {
		return "", false
	}
	if isZero(m) {
		return string(alphabet[0]), true
	}
	var digits []byte
	for !isZero(m) {
		var r uint64
		m, r = divModSmall(m, uint64(base))
		digits = append(digits, alphabet[r])
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits), true
}
