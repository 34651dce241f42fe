package calendar

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/session"
)

// fakeSource serves canned habit details keyed by habit id.
type fakeSource struct {
	details map[int]models.HabitDetail
}

func (f *fakeSource) GetHabitDetail(_ context.Context, habitID int) (models.HabitDetail, error) {
	d, ok := f.details[habitID]
	if !ok {
		return models.HabitDetail{}, fmt.Errorf("no such habit %d", habitID)
	}
	return d, nil
}

func ts(t *testing.T, value string) models.Timestamp {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02T15:04:05", value, time.Local)
	if err != nil {
		t.Fatalf("bad timestamp %q: %v", value, err)
	}
	return models.Timestamp{Time: parsed}
}

func logAt(t *testing.T, id, habitID int, when string, status constants.Status) models.HabitLog {
	t.Helper()
	return models.HabitLog{ID: id, HabitID: habitID, CompletedAt: ts(t, when), Status: status}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		percentage float64
		want       constants.Tier
	}{
		{100, constants.TierGold},
		{99, constants.TierBrightGreen},
		{75, constants.TierBrightGreen},
		{74.9, constants.TierBlue},
		{50, constants.TierBlue},
		{25, constants.TierOrange},
		{24, constants.TierRed},
		{0.1, constants.TierRed},
		{0, constants.TierNone},
	}
	for _, tt := range tests {
		if got := Classify(tt.percentage); got != tt.want {
			t.Errorf("Classify(%v) = %q, want %q", tt.percentage, got, tt.want)
		}
	}
}

func TestBuildMonth(t *testing.T) {
	habits := []models.Habit{
		{ID: 1, Name: "Read", Acronym: "RD"},
		{ID: 2, Name: "Exercise", Acronym: "EX"},
	}
	src := &fakeSource{details: map[int]models.HabitDetail{
		1: {Habit: habits[0], RecentLogs: []models.HabitLog{
			logAt(t, 11, 1, "2024-03-05T12:00:00", constants.StatusCompleted),
			logAt(t, 10, 1, "2024-03-04T12:00:00", constants.StatusCompleted),
			// outside the month, must be discarded
			logAt(t, 9, 1, "2024-02-29T12:00:00", constants.StatusCompleted),
		}},
		2: {Habit: habits[1], RecentLogs: []models.HabitLog{
			logAt(t, 21, 2, "2024-03-05T12:00:00", constants.StatusCompleted),
			logAt(t, 20, 2, "2024-03-04T12:00:00", constants.StatusFailed),
		}},
	}}

	state := session.New(time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local))
	state.SetHabits(habits)

	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	view, err := BuildMonth(context.Background(), src, state, now)
	if err != nil {
		t.Fatalf("BuildMonth() failed: %v", err)
	}

	if len(view.Days) != 42 {
		t.Fatalf("grid has %d cells, want 42", len(view.Days))
	}
	if view.VisibleCount != 2 {
		t.Errorf("VisibleCount = %d, want 2", view.VisibleCount)
	}

	byDate := make(map[string]Day)
	for _, d := range view.Days {
		if d.CurrentMonth {
			byDate[d.Date] = d
		}
	}

	// March 5: both completed -> 100%, gold
	d5 := byDate["2024-03-05"]
	if d5.CompletedCount != 2 || d5.Percentage != 100 || d5.Tier != constants.TierGold {
		t.Errorf("March 5 = %+v", d5)
	}

	// March 4: one completed, one failed -> 50%, blue
	d4 := byDate["2024-03-04"]
	if d4.CompletedCount != 1 || d4.FailedCount != 1 {
		t.Errorf("March 4 counts = %d/%d", d4.CompletedCount, d4.FailedCount)
	}
	if d4.Percentage != 50 || d4.Tier != constants.TierBlue {
		t.Errorf("March 4 percentage/tier = %v/%q", d4.Percentage, d4.Tier)
	}

	// March 6: nothing logged -> two outline badges, tier none
	d6 := byDate["2024-03-06"]
	if d6.Tier != constants.TierNone || len(d6.Badges) != 2 {
		t.Errorf("March 6 = %+v", d6)
	}
	for _, b := range d6.Badges {
		if b.Status != constants.StatusNone {
			t.Errorf("March 6 badge %+v should be outline", b)
		}
	}

	// February 29 log was filtered out
	if _, ok := byDate["2024-02-29"]; ok {
		t.Error("adjacent-month date leaked into the view")
	}

	// Today flag
	if !byDate["2024-03-15"].Today {
		t.Error("March 15 should be flagged as today")
	}

	// Padding cells carry no date or status data
	if view.Days[0].CurrentMonth || view.Days[0].Date != "" || view.Days[0].Statuses != nil {
		t.Errorf("first padding cell = %+v", view.Days[0])
	}
}

func TestBuildMonthBadgeOrder(t *testing.T) {
	habits := []models.Habit{
		{ID: 1, Name: "Read", Acronym: "RD"},
		{ID: 2, Name: "Exercise", Acronym: "EX"},
	}
	src := &fakeSource{details: map[int]models.HabitDetail{
		1: {Habit: habits[0]},
		2: {Habit: habits[1], RecentLogs: []models.HabitLog{
			logAt(t, 1, 2, "2024-03-10T12:00:00", constants.StatusSkipped),
		}},
	}}

	state := session.New(time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local))
	state.SetHabits(habits)

	view, err := BuildMonth(context.Background(), src, state, time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("BuildMonth() failed: %v", err)
	}

	var d10 Day
	for _, d := range view.Days {
		if d.CurrentMonth && d.Date == "2024-03-10" {
			d10 = d
		}
	}

	// Logged badge (skipped) sorts before the outline badge
	if len(d10.Badges) != 2 {
		t.Fatalf("badges = %+v", d10.Badges)
	}
	if d10.Badges[0].Status != constants.StatusSkipped || d10.Badges[0].Label != "EX" {
		t.Errorf("first badge = %+v, want skipped EX", d10.Badges[0])
	}
	if d10.Badges[1].Status != constants.StatusNone || d10.Badges[1].Label != "RD" {
		t.Errorf("second badge = %+v, want outline RD", d10.Badges[1])
	}
	// Skipped never counts toward completion
	if d10.CompletedCount != 0 || d10.Percentage != 0 {
		t.Errorf("skipped log affected completion: %+v", d10)
	}
}

func TestBuildMonthEmptyVisibleSet(t *testing.T) {
	state := session.New(time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local))
	state.SetHabits([]models.Habit{{ID: 1, Name: "Read"}})
	state.Toggle(1)

	view, err := BuildMonth(context.Background(), &fakeSource{}, state, time.Now())
	if err != nil {
		t.Fatalf("BuildMonth() failed: %v", err)
	}
	for _, d := range view.Days {
		if d.Percentage != 0 || (d.CurrentMonth && d.Tier != constants.TierNone) {
			t.Fatalf("empty visible set produced %+v", d)
		}
	}
}

func TestBuildMonthDuplicateLogsFirstWins(t *testing.T) {
	habits := []models.Habit{{ID: 1, Name: "Read", Acronym: "RD"}}
	src := &fakeSource{details: map[int]models.HabitDetail{
		1: {Habit: habits[0], RecentLogs: []models.HabitLog{
			logAt(t, 5, 1, "2024-03-08T12:00:00", constants.StatusFailed),
			logAt(t, 4, 1, "2024-03-08T09:00:00", constants.StatusCompleted),
		}},
	}}

	state := session.New(time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local))
	state.SetHabits(habits)

	view, err := BuildMonth(context.Background(), src, state, time.Now())
	if err != nil {
		t.Fatalf("BuildMonth() failed: %v", err)
	}
	for _, d := range view.Days {
		if d.Date == "2024-03-08" {
			if got := d.Statuses[1]; got != constants.StatusFailed {
				t.Errorf("duplicate-day status = %q, want the first listed (failed)", got)
			}
		}
	}
}

func TestBuildMonthPropagatesFetchError(t *testing.T) {
	state := session.New(time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local))
	state.SetHabits([]models.Habit{{ID: 99, Name: "Ghost"}})

	if _, err := BuildMonth(context.Background(), &fakeSource{}, state, time.Now()); err == nil {
		t.Error("expected fetch error to propagate")
	}
}
