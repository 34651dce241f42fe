// Package session holds the per-invocation view state: the loaded habit
// list, which habits are visible, and the calendar month being looked at.
// It is an explicit value handed to the query engines instead of ambient
// globals, and is never persisted.
package session

import (
	"time"

	"github.com/julianstephens/lifetrack/internal/models"
)

// State is the session-local context for the calendar and streak views.
type State struct {
	Habits  []models.Habit
	visible map[int]bool
	Year    int
	Month   time.Month
}

// New creates a State positioned on the current month with no habits
// loaded yet.
func New(now time.Time) *State {
	return &State{
		visible: make(map[int]bool),
		Year:    now.Year(),
		Month:   now.Month(),
	}
}

// SetHabits replaces the cached habit list. Whenever the list is reloaded
// while no habits are visible, visibility resets to all.
func (s *State) SetHabits(habits []models.Habit) {
	s.Habits = habits
	if len(s.visible) == 0 {
		for _, h := range habits {
			s.visible[h.ID] = true
		}
	}
}

// Clone returns an independent copy of the state. Background work takes a
// clone so it never shares the visibility map with the live view.
func (s *State) Clone() *State {
	c := &State{
		Habits:  append([]models.Habit(nil), s.Habits...),
		visible: make(map[int]bool, len(s.visible)),
		Year:    s.Year,
		Month:   s.Month,
	}
	for id, v := range s.visible {
		c.visible[id] = v
	}
	return c
}

// Toggle flips the visibility of one habit.
func (s *State) Toggle(habitID int) {
	if s.visible[habitID] {
		delete(s.visible, habitID)
	} else {
		s.visible[habitID] = true
	}
}

// SetVisible restricts visibility to exactly the given habit ids.
func (s *State) SetVisible(ids []int) {
	s.visible = make(map[int]bool, len(ids))
	for _, id := range ids {
		s.visible[id] = true
	}
}

// IsVisible reports whether a habit is part of the current view.
func (s *State) IsVisible(habitID int) bool { return s.visible[habitID] }

// VisibleHabits returns the habits in the current view, preserving list
// order.
func (s *State) VisibleHabits() []models.Habit {
	var out []models.Habit
	for _, h := range s.Habits {
		if s.visible[h.ID] {
			out = append(out, h)
		}
	}
	return out
}

// VisibleIDs returns the ids of the visible habits, preserving list order.
func (s *State) VisibleIDs() []int {
	var out []int
	for _, h := range s.Habits {
		if s.visible[h.ID] {
			out = append(out, h.ID)
		}
	}
	return out
}

// PrevMonth moves the calendar back one month.
func (s *State) PrevMonth() {
	s.Year, s.Month = normalizeMonth(s.Year, s.Month-1)
}

// NextMonth moves the calendar forward one month.
func (s *State) NextMonth() {
	s.Year, s.Month = normalizeMonth(s.Year, s.Month+1)
}

func normalizeMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return t.Year(), t.Month()
}
