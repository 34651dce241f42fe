package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/lifetrack/internal/api"
	"github.com/julianstephens/lifetrack/internal/cache"
	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/quotes"
	"github.com/julianstephens/lifetrack/internal/utils"
)

type Context struct {
	Client *api.Client
	Cache  *cache.Store
	Quotes *quotes.Provider
}

// listHabitsCached fetches active habits, serving the last cached copy
// when the backend is unreachable.
func (ctx *Context) listHabitsCached(c context.Context) ([]models.Habit, error) {
	habits, err := ctx.Client.ListHabits(c)
	if err == nil {
		ctx.cachePut("habits", habits)
		return habits, nil
	}

	var netErr *api.NetworkError
	if !errors.As(err, &netErr) || ctx.Cache == nil {
		return nil, err
	}

	var cached []models.Habit
	at, ok := ctx.cacheGet("habits", &cached)
	if !ok {
		return nil, err
	}
	fmt.Printf("Backend unreachable, showing data cached %s.\n", at.Local().Format("2006-01-02 15:04"))
	return cached, nil
}

// listInvestmentsCached mirrors listHabitsCached for portfolio holdings.
func (ctx *Context) listInvestmentsCached(c context.Context) ([]models.Investment, error) {
	investments, err := ctx.Client.ListInvestments(c)
	if err == nil {
		ctx.cachePut("investments", investments)
		return investments, nil
	}

	var netErr *api.NetworkError
	if !errors.As(err, &netErr) || ctx.Cache == nil {
		return nil, err
	}

	var cached []models.Investment
	at, ok := ctx.cacheGet("investments", &cached)
	if !ok {
		return nil, err
	}
	fmt.Printf("Backend unreachable, showing data cached %s.\n", at.Local().Format("2006-01-02 15:04"))
	return cached, nil
}

// cachedSource serves per-habit details through the response cache so the
// calendar and streak views survive backend outages.
type cachedSource struct {
	ctx *Context
}

func (s cachedSource) GetHabitDetail(c context.Context, habitID int) (models.HabitDetail, error) {
	key := fmt.Sprintf("habit-detail/%d", habitID)

	detail, err := s.ctx.Client.GetHabitDetail(c, habitID)
	if err == nil {
		s.ctx.cachePut(key, detail)
		return detail, nil
	}

	var netErr *api.NetworkError
	if !errors.As(err, &netErr) || s.ctx.Cache == nil {
		return models.HabitDetail{}, err
	}

	var cached models.HabitDetail
	if _, ok := s.ctx.cacheGet(key, &cached); ok {
		return cached, nil
	}
	return models.HabitDetail{}, err
}

func (ctx *Context) cachePut(key string, v any) {
	if ctx.Cache == nil {
		return
	}
	body, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := ctx.Cache.Put(key, body); err != nil {
		logger.Debug("cache write failed", "key", key, "error", err)
	}
}

func (ctx *Context) cacheGet(key string, out any) (time.Time, bool) {
	if ctx.Cache == nil {
		return time.Time{}, false
	}
	body, at, ok, err := ctx.Cache.Get(key)
	if err != nil || !ok {
		return time.Time{}, false
	}
	if err := json.Unmarshal(body, out); err != nil {
		return time.Time{}, false
	}
	return at, true
}

func parseDateFlag(s string) (string, error) {
	if s == "" || s == "today" {
		return utils.DateKey(time.Now()), nil
	}
	if s == "yesterday" {
		return utils.DateKey(time.Now().AddDate(0, 0, -1)), nil
	}
	if _, err := utils.ParseDateKey(s); err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return s, nil
}

// parseHabitIDs splits a comma-separated id list.
func parseHabitIDs(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid habit id: %s", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func formatStatus(s constants.Status) string {
	switch constants.NormalizeStatus(s) {
	case constants.StatusCompleted:
		return "✓"
	case constants.StatusFailed:
		return "✗"
	case constants.StatusSkipped:
		return "○"
	default:
		return " "
	}
}
