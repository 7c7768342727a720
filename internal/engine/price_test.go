package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractPrice_SupportedFormats(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		line  string
		value float64
	}{
		{name: "plain decimal", line: "12.50", value: 12.50},
		{name: "comma decimal separator", line: "12,50", value: 12.50},
		{name: "shekel sign before", line: "₪12.50", value: 12.50},
		{name: "shekel sign after", line: "12.50₪", value: 12.50},
		{name: "labeled price", line: "מחיר: 12.50", value: 12.50},
		{name: "shekel abbreviation", line: `12.50 ש"ח`, value: 12.50},
		{name: "embedded in item line", line: "חלב 3% 5.90", value: 5.90},
		{name: "comma in item line", line: "לחם פרוס 4,50", value: 4.50},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			match, ok := ExtractPrice(tc.line, 0.1, 500)
			require.True(t, ok)
			require.InDelta(t, tc.value, match.Value, 0.001)
		})
	}
}

func TestExtractPrice_BoundsRejection(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		line string
	}{
		{name: "below minimum", line: "0.05"},
		{name: "above ceiling", line: "999.99"},
		{name: "above ceiling with currency", line: "₪750.00"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, ok := ExtractPrice(tc.line, 0.1, 500)
			require.False(t, ok)
		})
	}
}

func TestExtractPrice_SkipsOutOfBoundsMatches(t *testing.T) {
	t.Parallel()

	// A barcode-sized number precedes the real price; the first in-bounds
	// match must win, not the first match.
	match, ok := ExtractPrice("1200.00 45.50", 0.1, 500)
	require.True(t, ok)
	require.InDelta(t, 45.50, match.Value, 0.001)
}

func TestExtractPrice_NoPrice(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		line string
	}{
		{name: "plain text", line: "שורה בלי מחיר"},
		{name: "integer only", line: "ברקוד 729000"},
		{name: "empty", line: ""},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, ok := ExtractPrice(tc.line, 0.1, 500)
			require.False(t, ok)
		})
	}
}

func TestExtractPrice_WiderBoundsForFallback(t *testing.T) {
	t.Parallel()

	// The aggressive pass raises the ceiling; the same line flips from
	// rejected to accepted.
	_, ok := ExtractPrice("מקרר 1499.00", 0.1, 500)
	require.False(t, ok)

	match, ok := ExtractPrice("מקרר 1499.00", 0.1, 2000)
	require.True(t, ok)
	require.InDelta(t, 1499.00, match.Value, 0.001)
}
