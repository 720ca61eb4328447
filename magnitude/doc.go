// Package magnitude provides a compact, human-readable codec for planner
// amounts spanning femto- to tera-scale ranges.
//
// Interactive production planning throws wildly different magnitudes at the
// same column of the same table: 0.000123 modules per second next to
// 2.5 million plates per minute next to a 480 MW power draw. Raw
// fixed-point rendering is unreadable at both ends, and scientific notation
// is hostile to re-entry by hand. The codec solves both directions:
//
//   - Format renders a float into a short suffixed string ("1.5K", "2.5M",
//     "123µ", "480MW") using a fixed 22-entry bucket table.
//   - Parse reads such a string back, accepting the same suffixes
//     case-insensitively, so a user can edit "1.5K" into "2K" in place.
//
// Bucket selection:
//
//	idx = clamp(floor(log10(|v|)) + 8, 0, 21)
//
// which centers bucket 8 on values in [1, 10). Each bucket fixes a suffix
// glyph (µ, K, M, G, T or none), a pre-render multiplier and a maximum
// number of fractional digits — 4 digits near 1, tapering to 0 at the
// extremes. The milli range is deliberately folded into µ buckets: a lone
// "m" is too easy to confuse with "M" in a dense table.
//
// Special values:
//
//   - NaN (and ±Inf) format to "-".
//   - Exactly 0 formats to "0".
//   - Power amounts arrive pre-scaled to mega-watts; Format(v, true) undoes
//     that scaling before bucket lookup and appends a trailing 'W'.
//
// Failure model:
//
//	Parse reports failure through a plain comma-ok bool — malformed text and
//	out-of-range magnitudes (>1e15 absolute) are indistinguishable on
//	purpose; the caller's fallback (keep previous value, inline error) does
//	not depend on the cause.
//
// Concurrency:
//
//   - A Codec reuses one internal scratch buffer between calls and is NOT
//     safe for concurrent use. Give each goroutine its own Codec (the zero
//     value is ready) or serialize access externally.
//
// Example:
//
//	var c magnitude.Codec
//	fmt.Println(c.Format(1500, false))      // "1.5K"
//	fmt.Println(c.Format(2.5, true))        // "2.5MW"
//	v, ok := c.Parse("12K", false)          // 12000, true
package magnitude
