package magnitude_test

import (
	"testing"

	"github.com/petebuffon/yafc/magnitude"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_Suffixes verifies the case-insensitive suffix multipliers.
func TestParse_Suffixes(t *testing.T) {
	var c magnitude.Codec

	cases := []struct {
		text string
		want float64
	}{
		{"12K", 12_000},
		{"12k", 12_000},
		{"2.5M", 2_500_000},
		{"2.5m", 2_500_000},
		{"1G", 1e9},
		{"0.5T", 5e11},
		{"123µ", 0.000123},
		{"123u", 0.000123},
		{"42", 42},
		{"1e3", 1000},
		{"-3.5K", -3500},
	}
	for _, tc := range cases {
		v, ok := c.Parse(tc.text, false)
		require.True(t, ok, "Parse(%q) must succeed", tc.text)
		assert.InEpsilon(t, tc.want, v, 1e-12, "Parse(%q)", tc.text)
	}
}

// TestParse_Failures verifies the comma-ok false cases: no numeric prefix,
// unknown suffix, malformed literal, magnitude above the limit.
func TestParse_Failures(t *testing.T) {
	var c magnitude.Codec

	for _, text := range []string{
		"",       // empty
		"abc",    // no numeric prefix
		"12x",    // unknown suffix
		"1.2.3",  // malformed literal, rejected by strconv
		"--5",    // malformed literal
		"9.9e15", // exceeds ParseLimit
		"-9.9e15",
		"2e3T", // 2e15 after the T multiplier
	} {
		_, ok := c.Parse(text, false)
		assert.False(t, ok, "Parse(%q) must fail", text)
	}
}

// TestParse_AtLimit verifies that exactly ParseLimit is still accepted;
// only strictly larger magnitudes fail.
func TestParse_AtLimit(t *testing.T) {
	var c magnitude.Codec

	v, ok := c.Parse("1e15", false)
	require.True(t, ok, "exactly 1e15 is inside the limit")
	assert.Equal(t, 1e15, v)
}

// TestParse_Power verifies the inverse of Format's mega-watt pre-scaling.
func TestParse_Power(t *testing.T) {
	var c magnitude.Codec

	v, ok := c.Parse("1.5MW", true)
	require.True(t, ok, "formatted power amounts must re-parse")
	assert.InEpsilon(t, 1.5, v, 1e-12, "M suffix cancels against the power scale")

	v, ok = c.Parse("500KW", true)
	require.True(t, ok)
	assert.InEpsilon(t, 0.5, v, 1e-12)

	// Plain watts entered by hand in a power field still scale down.
	v, ok = c.Parse("1500000", true)
	require.True(t, ok)
	assert.InEpsilon(t, 1.5, v, 1e-12)
}

// TestParse_TextAfterSuffix verifies that runes after the suffix are
// ignored rather than rejected ("1.5MW" in a non-power field).
func TestParse_TextAfterSuffix(t *testing.T) {
	var c magnitude.Codec

	v, ok := c.Parse("1.5MW", false)
	require.True(t, ok)
	assert.InEpsilon(t, 1_500_000, v, 1e-12, "trailing W is ignored without power scaling")
}

// TestParse_RoundTrip checks that formatted representative magnitudes
// re-parse within the displayed precision.
func TestParse_RoundTrip(t *testing.T) {
	var c magnitude.Codec

	for _, v := range []float64{0.000123, 7, 1500, 2_500_000, 9.9e14} {
		text := c.Format(v, false)
		got, ok := c.Parse(text, false)
		require.True(t, ok, "Format(%v) = %q must re-parse", v, text)
		assert.InEpsilon(t, v, got, 1e-2, "round-trip of %v via %q", v, text)
	}
}
