// Package magnitude - amount parsing.
//
// Parse is the inverse of Format for user-edited text: it accepts a decimal
// literal followed by an optional magnitude suffix, so that a formatted
// amount can be edited in place ("1.5K" → "2K") and re-entered.
//
// Design principles:
//   - Single left-to-right scan; the first rune outside the numeric set is
//     the suffix, anything after it is ignored ("1.5MW" parses as 1.5M).
//   - Literal validation is delegated to strconv.ParseFloat: the scan does
//     not police repeated '.' or misplaced '-'/'e' itself, the underlying
//     parser rejects malformed literals.
//   - No error taxonomy: malformed input and out-of-range magnitudes both
//     report the same comma-ok false.
package magnitude

import (
	"math"
	"strconv"
	"unicode/utf8"
)

// Parse reads a suffixed amount back into a float.
//
// The scan accepts digits, '.', '-' and 'e' as the numeric literal, then
// interprets the first other rune as a case-insensitive magnitude suffix:
// k → 1e3, m → 1e6, g → 1e9, t → 1e12, and µ (or the ASCII stand-in 'u')
// → 1e-6 so that formatted sub-unit amounts round-trip. Any other suffix
// rune fails the parse. power=true divides the suffix multiplier by 1e6,
// the inverse of Format's mega-watt pre-scaling.
//
// Contracts (failure ⇒ (0, false)):
//   - no numeric prefix before a non-numeric rune;
//   - the numeric literal fails standard decimal parsing;
//   - the final magnitude exceeds ParseLimit in absolute value.
//
// Complexity: O(len(text)).
func (c *Codec) Parse(text string, power bool) (float64, bool) {
	var multiplier = 1.0
	if power {
		multiplier = 1 / powerScale
	}

	// Scan the numeric prefix; stop at the first suffix rune.
	var (
		i    int  // byte offset: end of the numeric prefix
		r    rune // current rune
		size int  // current rune width in bytes
	)
	for i < len(text) {
		r, size = utf8.DecodeRuneInString(text[i:])
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == 'e' {
			i += size
			continue
		}
		switch r {
		case 'k', 'K':
			multiplier *= 1e3
		case 'm', 'M':
			multiplier *= 1e6
		case 'g', 'G':
			multiplier *= 1e9
		case 't', 'T':
			multiplier *= 1e12
		case 'u', 'µ', 'μ':
			multiplier *= 1e-6
		default:
			return 0, false
		}

		break // runes after the suffix are ignored
	}
	if i == 0 {
		return 0, false
	}

	var value, err = strconv.ParseFloat(text[:i], 64)
	if err != nil {
		return 0, false
	}

	value *= multiplier
	if math.Abs(value) > ParseLimit {
		return 0, false
	}

	return value, true
}
