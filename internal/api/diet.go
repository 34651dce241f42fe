package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/julianstephens/lifetrack/internal/models"
)

// GetProfile fetches the current user's profile.
func (c *Client) GetProfile(ctx context.Context) (models.Profile, error) {
	var p models.Profile
	err := c.get(ctx, "/api/personal/profile", &p)
	return p, err
}

// SetCalorieGoal updates the daily calorie goal on the profile.
func (c *Client) SetCalorieGoal(ctx context.Context, goal int) error {
	return c.put(ctx, "/api/personal/profile", map[string]any{"calorie_goal": goal}, nil)
}

// ListDietEntries fetches diet entries, optionally filtered to one date
// (YYYY-MM-DD) and/or meal type.
func (c *Client) ListDietEntries(ctx context.Context, date string, mealType string) ([]models.DietEntry, error) {
	q := url.Values{}
	if date != "" {
		q.Set("date", date)
	}
	if mealType != "" {
		q.Set("meal_type", mealType)
	}
	path := "/api/personal/diet"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var entries []models.DietEntry
	if err := c.get(ctx, path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CreateDietEntry logs a food item.
func (c *Client) CreateDietEntry(ctx context.Context, entry models.NewDietEntry) (models.DietEntry, error) {
	var created models.DietEntry
	err := c.post(ctx, "/api/personal/diet", entry, &created)
	return created, err
}

// DeleteDietEntry removes one diet entry.
func (c *Client) DeleteDietEntry(ctx context.Context, entryID int) error {
	return c.delete(ctx, fmt.Sprintf("/api/personal/diet/%d", entryID))
}

// GetDietSummary fetches the nutritional rollup for a date (YYYY-MM-DD).
func (c *Client) GetDietSummary(ctx context.Context, date string) (models.DietSummary, error) {
	path := "/api/personal/diet/summary"
	if date != "" {
		path += "?date=" + url.QueryEscape(date)
	}
	var summary models.DietSummary
	err := c.get(ctx, path, &summary)
	return summary, err
}

// LookupFood queries the backend's nutrition-database proxy for candidate
// foods matching name.
func (c *Client) LookupFood(ctx context.Context, name string) (models.FoodLookup, error) {
	var lookup models.FoodLookup
	err := c.post(ctx, "/api/personal/diet/lookup", map[string]string{"food_name": name}, &lookup)
	return lookup, err
}
