package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
)

// DateKey formats t as YYYY-MM-DD using its local calendar components.
// Truncating an ISO/UTC rendering instead would shift the date for any
// timezone east or west of Greenwich.
func DateKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// ParseDateKey parses a YYYY-MM-DD key into midnight local time.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", key, err)
	}
	return t, nil
}

// midnight strips the time-of-day from t, keeping its location.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the signed whole-day difference b - a, comparing
// dates only. Rounding guards against DST boundaries where a calendar day
// is 23 or 25 hours long.
func DaysBetween(a, b time.Time) int {
	hours := midnight(b).Sub(midnight(a)).Hours()
	if hours >= 0 {
		return int(hours/24 + 0.5)
	}
	return -int(-hours/24 + 0.5)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// day 0 of the next month normalizes to the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// GridCell is one slot in the 6x7 calendar grid. Padding cells carry the
// adjacent month's day number and CurrentMonth=false; they never carry
// status data.
type GridCell struct {
	Day          int
	CurrentMonth bool
}

// MonthGrid enumerates the 42-cell calendar grid for a month: leading
// cells from the previous month to align day 1 with its weekday (Sunday
// first), the month's days, then trailing cells from the next month.
func MonthGrid(year int, month time.Month) []GridCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	lead := int(first.Weekday()) // Sunday == 0
	days := DaysInMonth(year, month)
	prevDays := time.Date(year, month, 0, 0, 0, 0, 0, time.Local).Day()

	cells := make([]GridCell, 0, constants.GridCells)
	for i := lead - 1; i >= 0; i-- {
		cells = append(cells, GridCell{Day: prevDays - i})
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, GridCell{Day: d, CurrentMonth: true})
	}
	for d := 1; len(cells) < constants.GridCells; d++ {
		cells = append(cells, GridCell{Day: d})
	}
	return cells
}
