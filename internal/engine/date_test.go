package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExtractDate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		text string
		want time.Time
		ok   bool
	}{
		{
			name: "slash separated",
			text: "תאריך: 02/01/2024 שעה 19:04",
			want: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "dot separated with short year",
			text: "5.6.24",
			want: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "dash separated",
			text: "31-12-2023",
			want: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "impossible month skipped",
			text: "45/13/2024 ואחריו 02/01/2024",
			want: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "no date present",
			text: "חלב 3% 5.90\nסה\"כ: 10.40",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ExtractDate(tc.text)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				require.Equal(t, tc.want, got)
			}
		})
	}
}

func TestEngine_RecoversPrintedDate(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t)

	rec, err := eng.Parse("רמי לוי\nתאריך: 02/01/2024\nחלב 3% 5.90\n")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), rec.Date)

	// Without a printed date the receipt gets the processing time.
	rec, err = eng.Parse("רמי לוי\nחלב 3% 5.90\nלחם פרוס 4.50\n")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), rec.Date)
}
