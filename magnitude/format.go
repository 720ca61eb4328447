// Package magnitude - amount rendering.
//
// Design principles:
//   - Table-driven: every rendering decision comes from the bucket table.
//   - Hot-path discipline: one reused scratch buffer, a single allocation
//     per call (the returned string), no fmt in the render path.
//   - Deterministic: the same value always renders to the same text.
package magnitude

import (
	"math"
	"strconv"
	"unicode/utf8"
)

// powerScale is the factor by which power amounts arrive pre-scaled:
// callers pass mega-watts, bucket lookup wants watts.
const powerScale = 1e6

// Format renders value into a short suffixed string.
//
// Contracts:
//   - NaN and ±Inf render as "-"; exactly 0 renders as "0".
//   - Negative values render with a leading '-' and are otherwise treated
//     as their absolute value.
//   - power=true multiplies the value by 1e6 before bucket lookup (undoing
//     the caller's mega-watt scaling) and appends a trailing 'W' after the
//     magnitude suffix.
//
// Complexity: O(digits) time, amortized zero scratch allocations.
func (c *Codec) Format(value float64, power bool) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "-"
	}
	if value == 0 {
		return "0"
	}

	c.buf = c.buf[:0]
	if value < 0 {
		c.buf = append(c.buf, '-')
		value = -value
	}
	if power {
		value *= powerScale
	}

	// Bucket lookup: clamp(floor(log10(v))+8, 0, 21) centers bucket 8 on [1,10).
	var idx int
	idx = int(math.Floor(math.Log10(value))) + 8
	if idx < 0 {
		idx = 0
	} else if idx > len(buckets)-1 {
		idx = len(buckets) - 1
	}

	var b = buckets[idx]
	c.buf = appendTrimmedFloat(c.buf, value*b.multiplier, b.fracDigits)
	if b.suffix != 0 {
		c.buf = utf8.AppendRune(c.buf, b.suffix)
	}
	if power {
		c.buf = append(c.buf, 'W')
	}

	return string(c.buf)
}

// FormatPercentage renders a ratio as an integral percentage: the value is
// multiplied by 100, rounded half-away-from-zero, and suffixed with '%'.
// NaN renders as "-" and exactly 0 renders as "0", consistent with Format.
//
// Complexity: O(digits).
func (c *Codec) FormatPercentage(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "-"
	}
	if value == 0 {
		return "0"
	}

	c.buf = c.buf[:0]
	c.buf = strconv.AppendInt(c.buf, int64(math.Round(value*100)), 10)
	c.buf = append(c.buf, '%')

	return string(c.buf)
}

// appendTrimmedFloat appends v in fixed-point notation with at most frac
// fractional digits, then strips trailing zeros and a dangling '.', so that
// 1.5 renders as "1.5" rather than "1.50" and 7 as "7" rather than "7.0000".
func appendTrimmedFloat(dst []byte, v float64, frac int) []byte {
	var start = len(dst)
	dst = strconv.AppendFloat(dst, v, 'f', frac, 64)
	if frac == 0 {
		return dst
	}

	var end = len(dst)
	for end > start && dst[end-1] == '0' {
		end--
	}
	if end > start && dst[end-1] == '.' {
		end--
	}

	return dst[:end]
}
