package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitLines_Strict(t *testing.T) {
	t.Parallel()

	raw := "רמי לוי\n\nחלב 3% 5.90\n*****\n12345\nתאריך: 01/01/2024\nקופה 3 קופאי 12\n5.90\nברקוד 7290001234\nלחם פרוס 4.50\n"

	got := SplitLines(raw, FilterStrict)
	require.Equal(t, []string{"רמי לוי", "חלב 3% 5.90", "לחם פרוס 4.50"}, got)
}

func TestSplitLines_Relaxed(t *testing.T) {
	t.Parallel()

	raw := "רמי לוי\n\nתאריך: 01/01/2024\n*****\n12345\nחלב 3% 5.90\n"

	// Relaxed keeps everything except blanks and separator runs.
	got := SplitLines(raw, FilterRelaxed)
	require.Equal(t, []string{"רמי לוי", "תאריך: 01/01/2024", "12345", "חלב 3% 5.90"}, got)
}

func TestSplitLines_StrictExclusions(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		line string
		keep bool
	}{
		{name: "item line", line: "חלב 3% 5.90", keep: true},
		{name: "short digits kept", line: "4.5", keep: true},
		{name: "lone price dropped", line: "5.90", keep: false},
		{name: "lone price with currency dropped", line: "₪5.90", keep: false},
		{name: "digit run dropped", line: "7290001234", keep: false},
		{name: "separator run dropped", line: "=====", keep: false},
		{name: "date marker dropped", line: "תאריך 01/01/24", keep: false},
		{name: "cashier marker dropped", line: "קופאי: דני", keep: false},
		{name: "business number dropped", line: "עוסק מורשה 512345678", keep: false},
		{name: "total marker dropped", line: `סה"כ: 10.40`, keep: false},
		{name: "credit card marker dropped", line: "אשראי ויזה", keep: false},
		{name: "english receipt marker dropped", line: "RECEIPT #00123", keep: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := SplitLines(tc.line, FilterStrict)
			if tc.keep {
				require.Equal(t, []string{tc.line}, got)
			} else {
				require.Empty(t, got)
			}
		})
	}
}

func TestSplitLines_EmptyInput(t *testing.T) {
	t.Parallel()

	require.Empty(t, SplitLines("", FilterStrict))
	require.Empty(t, SplitLines("\n\n  \n", FilterRelaxed))
}
