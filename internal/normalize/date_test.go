package normalize_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kritsw/bankconv/internal/normalize"
)

func noon(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "serial one", input: "1", want: noon(1900, time.January, 1)},
		{name: "serial modern", input: "45292", want: noon(2024, time.January, 1)},
		{name: "serial with time fraction", input: "45292.75", want: noon(2024, time.January, 1)},
		{name: "dmy slash", input: "31/12/2024", want: noon(2024, time.December, 31)},
		{name: "dmy dash", input: "5-9-2025", want: noon(2025, time.September, 5)},
		{name: "dmy two digit year", input: "01/02/24", want: noon(2024, time.February, 1)},
		{name: "ymd dash", input: "2024-12-31", want: noon(2024, time.December, 31)},
		{name: "ymd slash", input: "2024/01/05", want: noon(2024, time.January, 5)},
		{name: "month name", input: "5 Sep 2025", want: noon(2025, time.September, 5)},
		{name: "month name long", input: "5 September 2025", want: noon(2025, time.September, 5)},
		{name: "month name dashes", input: "05-Dec-25", want: noon(2025, time.December, 5)},
		{name: "iso datetime", input: "2024-12-31T09:30:00Z", want: noon(2024, time.December, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normalize.ParseDate(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate_Unparseable(t *testing.T) {
	for _, input := range []string{"", "   ", "not a date", "Total", "--", "0", "-5"} {
		t.Run(input, func(t *testing.T) {
			_, ok := normalize.ParseDate(input)
			assert.False(t, ok)
		})
	}
}
