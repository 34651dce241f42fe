package api

import (
	"context"
	"fmt"

	"github.com/julianstephens/lifetrack/internal/models"
)

// ListHabits fetches every habit for the current user.
func (c *Client) ListHabits(ctx context.Context) ([]models.Habit, error) {
	var habits []models.Habit
	if err := c.get(ctx, "/api/personal/habits", &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

// GetHabitDetail fetches one habit with its streak summary and recent logs.
func (c *Client) GetHabitDetail(ctx context.Context, habitID int) (models.HabitDetail, error) {
	var detail models.HabitDetail
	err := c.get(ctx, fmt.Sprintf("/api/personal/habits/%d", habitID), &detail)
	return detail, err
}

// CreateHabit registers a new habit.
func (c *Client) CreateHabit(ctx context.Context, habit models.NewHabit) (models.Habit, error) {
	var created models.Habit
	err := c.post(ctx, "/api/personal/habits", habit, &created)
	return created, err
}

// UpdateHabit patches the given fields on a habit.
func (c *Client) UpdateHabit(ctx context.Context, habitID int, fields map[string]any) (models.Habit, error) {
	var updated models.Habit
	err := c.put(ctx, fmt.Sprintf("/api/personal/habits/%d", habitID), fields, &updated)
	return updated, err
}

// DeleteHabit removes a habit and all of its logs.
func (c *Client) DeleteHabit(ctx context.Context, habitID int) error {
	return c.delete(ctx, fmt.Sprintf("/api/personal/habits/%d", habitID))
}

// logResponse is the create-log envelope: the new log plus the habit's
// recomputed streak.
type logResponse struct {
	Log    models.HabitLog   `json:"log"`
	Streak models.StreakInfo `json:"streak"`
}

// CreateLog records a status for a habit. The backend fills completed_at
// with the current time when the request leaves it empty.
func (c *Client) CreateLog(ctx context.Context, habitID int, log models.NewLog) (models.HabitLog, error) {
	var resp logResponse
	if err := c.post(ctx, fmt.Sprintf("/api/personal/habits/%d/log", habitID), log, &resp); err != nil {
		return models.HabitLog{}, err
	}
	return resp.Log, nil
}

// DeleteLog removes a single log entry by id.
func (c *Client) DeleteLog(ctx context.Context, logID int) error {
	return c.delete(ctx, fmt.Sprintf("/api/personal/habits/logs/%d", logID))
}
