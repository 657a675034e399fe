package schedule

import "time"

const dayLayout = "2006-01-02"

// DayOf truncates t to its calendar day at UTC midnight. All day arithmetic
// in this package assumes inputs went through DayOf.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays shifts a day by n calendar days.
func AddDays(day time.Time, n int) time.Time {
	return day.AddDate(0, 0, n)
}

// DaysBetween returns the number of calendar days from a to b; negative when
// b precedes a.
func DaysBetween(a, b time.Time) int {
	return int(DayOf(b).Sub(DayOf(a)).Hours() / 24)
}

// MonthWindow returns the first and last day of the given month, the window
// the grid renders by default.
func MonthWindow(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// ParseDay parses an ISO calendar date (YYYY-MM-DD) into a UTC midnight day.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(dayLayout, s)
}

// FormatDay renders a day back as an ISO calendar date.
func FormatDay(day time.Time) string {
	return day.Format(dayLayout)
}
