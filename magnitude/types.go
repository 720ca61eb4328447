// Package magnitude - bucket table and codec state.
//
// This file defines the fixed magnitude bucket table and the Codec type that
// owns the scratch buffer used for string assembly. The table is a
// compile-time constant in spirit: it is defined once, never mutated, and
// every Format call indexes into it.
package magnitude

// ParseLimit is the largest absolute magnitude Parse accepts after suffix
// multiplication. Anything above it is treated exactly like malformed input.
const ParseLimit = 1e15

// bucket is one row of the magnitude table: the suffix glyph appended after
// the numeric text (0 for none), the multiplier applied to the value before
// rendering, and the maximum number of fractional digits to keep.
type bucket struct {
	suffix     rune
	multiplier float64
	fracDigits int
}

// buckets is the fixed magnitude table, indexed by
// clamp(floor(log10(|v|))+8, 0, 21); bucket 8 covers [1, 10).
//
// The milli range (indexes 5..7) is folded into µ on purpose: "m" and "M"
// are too easy to confuse in a dense amounts column.
var buckets = [22]bucket{
	{'µ', 1e6, 2},   // 1e-8
	{'µ', 1e6, 2},   // 1e-7
	{'µ', 1e6, 2},   // 1e-6
	{'µ', 1e6, 1},   // 1e-5
	{'µ', 1e6, 1},   // 1e-4
	{'µ', 1e6, 0},   // 1e-3
	{'µ', 1e6, 0},   // 1e-2
	{'µ', 1e6, 0},   // 1e-1
	{0, 1, 4},       // 1
	{0, 1, 3},       // 1e1
	{0, 1, 2},       // 1e2
	{'K', 1e-3, 2},  // 1e3
	{'K', 1e-3, 1},  // 1e4
	{'K', 1e-3, 0},  // 1e5
	{'M', 1e-6, 2},  // 1e6
	{'M', 1e-6, 1},  // 1e7
	{'M', 1e-6, 0},  // 1e8
	{'G', 1e-9, 2},  // 1e9
	{'G', 1e-9, 1},  // 1e10
	{'G', 1e-9, 0},  // 1e11
	{'T', 1e-12, 2}, // 1e12
	{'T', 1e-12, 1}, // 1e13..+
}

// Codec formats and parses scaled planner amounts.
//
// The zero value is ready to use. A Codec reuses one internal scratch buffer
// across Format/FormatPercentage calls and must not be shared between
// goroutines without external serialization.
type Codec struct {
	buf []byte // scratch for string assembly; reused, never shared
}
