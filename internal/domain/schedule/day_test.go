package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayOfTruncates(t *testing.T) {
	stamp := time.Date(2025, time.November, 11, 17, 42, 9, 120, time.UTC)
	day := DayOf(stamp)
	assert.Equal(t, time.Date(2025, time.November, 11, 0, 0, 0, 0, time.UTC), day)
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, time.November, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 4, DaysBetween(a, b))
	assert.Equal(t, -4, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}

func TestMonthWindow(t *testing.T) {
	first, last := MonthWindow(2025, time.November)
	assert.Equal(t, time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC), last)

	first, last = MonthWindow(2024, time.February)
	assert.Equal(t, 1, first.Day())
	assert.Equal(t, 29, last.Day())
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2025-11-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.November, 5, 0, 0, 0, 0, time.UTC), day)
	assert.Equal(t, "2025-11-05", FormatDay(day))

	_, err = ParseDay("05/11/2025")
	require.Error(t, err)
}
