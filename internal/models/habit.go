package models

import (
	"strings"

	"github.com/julianstephens/lifetrack/internal/constants"
)

// Habit represents a recurring practice tracked by the backend. The client
// treats it as an immutable read-only reference for the duration of a session.
type Habit struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Acronym     string    `json:"acronym"`
	Description string    `json:"description"`
	Frequency   string    `json:"frequency"`
	TargetCount int       `json:"target_count"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   Timestamp `json:"created_at"`
	UpdatedAt   Timestamp `json:"updated_at"`
}

// Badge returns the 2-3 character calendar badge label for the habit,
// falling back to the first two letters of the name when no acronym is set.
func (h Habit) Badge() string {
	if h.Acronym != "" {
		return strings.ToUpper(h.Acronym)
	}
	name := h.Name
	if len(name) >= constants.AcronymMinLen {
		name = name[:constants.AcronymMinLen]
	}
	return strings.ToUpper(name)
}

// HabitLog is a single status record for a habit. One log per status-change
// event; the backend allows several logs for the same habit and day, the
// reconciler converges them to at most one going forward.
type HabitLog struct {
	ID          int              `json:"id"`
	HabitID     int              `json:"habit_id"`
	CompletedAt Timestamp        `json:"completed_at"`
	Notes       string           `json:"notes"`
	Status      constants.Status `json:"status"`
}

// EffectiveStatus maps an absent status to completed (logs created before
// statuses existed carry none).
func (l HabitLog) EffectiveStatus() constants.Status {
	return constants.NormalizeStatus(l.Status)
}

// StreakInfo is the backend's per-habit streak summary.
type StreakInfo struct {
	CurrentStreak int     `json:"current_streak"`
	LongestStreak int     `json:"longest_streak"`
	LastCompleted *string `json:"last_completed"`
}

// HabitDetail is the detail view of a habit: the habit itself plus its
// streak summary and recent log history.
type HabitDetail struct {
	Habit
	Streak           StreakInfo `json:"streak"`
	RecentLogs       []HabitLog `json:"recent_logs"`
	TotalCompletions int        `json:"total_completions"`
}

// NewLog is the request body for creating a habit log.
type NewLog struct {
	Status      constants.Status `json:"status"`
	Notes       string           `json:"notes"`
	CompletedAt string           `json:"completed_at,omitempty"`
}

// NewHabit is the request body for creating a habit.
type NewHabit struct {
	Name        string `json:"name"`
	Acronym     string `json:"acronym,omitempty"`
	Description string `json:"description,omitempty"`
	Frequency   string `json:"frequency,omitempty"`
	TargetCount int    `json:"target_count,omitempty"`
}
