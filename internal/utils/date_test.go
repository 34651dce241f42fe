package utils

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want string
	}{
		{
			name: "plain date",
			time: time.Date(2024, 3, 5, 10, 30, 0, 0, time.Local),
			want: "2024-03-05",
		},
		{
			name: "single digit month and day are padded",
			time: time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local),
			want: "2024-01-02",
		},
		{
			name: "last instant of the day stays on the same date",
			time: time.Date(2023, 12, 31, 23, 59, 59, 0, time.Local),
			want: "2023-12-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DateKey(tt.time); got != tt.want {
				t.Errorf("DateKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDateKeyIgnoresUTCOffset(t *testing.T) {
	// 23:30 in a UTC+5 zone is the next day in UTC; the key must come from
	// the wall-clock components, not a UTC rendering.
	loc := time.FixedZone("UTC+5", 5*3600)
	late := time.Date(2024, 6, 10, 23, 30, 0, 0, loc)
	if got := DateKey(late); got != "2024-06-10" {
		t.Errorf("DateKey() = %q, want %q", got, "2024-06-10")
	}
}

func TestDateKeyRoundTrip(t *testing.T) {
	keys := []string{"2024-03-05", "2024-02-29", "2000-01-01", "2024-11-03"}
	for _, key := range keys {
		parsed, err := ParseDateKey(key)
		if err != nil {
			t.Fatalf("ParseDateKey(%q) failed: %v", key, err)
		}
		if got := DateKey(parsed); got != key {
			t.Errorf("round trip of %q produced %q", key, got)
		}
	}
}

func TestParseDateKeyInvalid(t *testing.T) {
	for _, key := range []string{"", "2024-13-01", "03/05/2024", "2024-3-5"} {
		if _, err := ParseDateKey(key); err == nil {
			t.Errorf("ParseDateKey(%q) should fail", key)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{
			name: "same day different times",
			a:    time.Date(2024, 3, 5, 1, 0, 0, 0, time.Local),
			b:    time.Date(2024, 3, 5, 23, 0, 0, 0, time.Local),
			want: 0,
		},
		{
			name: "consecutive days",
			a:    time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local),
			b:    time.Date(2024, 3, 6, 0, 0, 0, 0, time.Local),
			want: 1,
		},
		{
			name: "negative difference",
			a:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local),
			b:    time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local),
			want: -5,
		},
		{
			name: "across month boundary",
			a:    time.Date(2024, 2, 28, 0, 0, 0, 0, time.Local),
			b:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local),
			want: 2, // 2024 is a leap year
		},
		{
			name: "across a year",
			a:    time.Date(2023, 12, 31, 12, 0, 0, 0, time.Local),
			b:    time.Date(2024, 1, 1, 1, 0, 0, 0, time.Local),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDaysBetweenAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tz database unavailable")
	}
	// US spring-forward 2024-03-10: that calendar day is 23 hours long.
	a := time.Date(2024, 3, 9, 12, 0, 0, 0, loc)
	b := time.Date(2024, 3, 11, 12, 0, 0, 0, loc)
	if got := DaysBetween(a, b); got != 2 {
		t.Errorf("DaysBetween() across DST = %d, want 2", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestMonthGrid(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantLead  int // blank cells before day 1
		wantDays  int
		firstLead int // day number shown in the first padding cell
	}{
		{
			name:     "March 2024 starts on Friday",
			year:     2024,
			month:    time.March,
			wantLead: 5,
			wantDays: 31,
			// February 2024 has 29 days; five leading cells show 25..29
			firstLead: 25,
		},
		{
			name:     "September 2024 starts on Sunday",
			year:     2024,
			month:    time.September,
			wantLead: 0,
			wantDays: 30,
		},
		{
			name:      "January 2024 starts on Monday",
			year:      2024,
			month:     time.January,
			wantLead:  1,
			wantDays:  31,
			firstLead: 31, // December 31
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := MonthGrid(tt.year, tt.month)
			if len(cells) != 42 {
				t.Fatalf("grid has %d cells, want 42", len(cells))
			}

			lead := 0
			for _, c := range cells {
				if c.CurrentMonth {
					break
				}
				lead++
			}
			if lead != tt.wantLead {
				t.Errorf("leading cells = %d, want %d", lead, tt.wantLead)
			}
			if tt.wantLead > 0 && cells[0].Day != tt.firstLead {
				t.Errorf("first padding cell shows %d, want %d", cells[0].Day, tt.firstLead)
			}

			inMonth := 0
			for i, c := range cells {
				if c.CurrentMonth {
					inMonth++
					wantDay := i - lead + 1
					if c.Day != wantDay {
						t.Fatalf("cell %d has day %d, want %d", i, c.Day, wantDay)
					}
				}
			}
			if inMonth != tt.wantDays {
				t.Errorf("current-month cells = %d, want %d", inMonth, tt.wantDays)
			}

			// Trailing padding restarts at 1
			tail := lead + tt.wantDays
			if tail < 42 && cells[tail].Day != 1 {
				t.Errorf("first trailing cell shows %d, want 1", cells[tail].Day)
			}
		})
	}
}

func TestMonthGridAlwaysFortyTwo(t *testing.T) {
	for year := 2020; year <= 2026; year++ {
		for m := time.January; m <= time.December; m++ {
			if got := len(MonthGrid(year, m)); got != 42 {
				t.Errorf("MonthGrid(%d, %v) has %d cells", year, m, got)
			}
		}
	}
}
