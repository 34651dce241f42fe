// Package validation checks request payloads before they are sent to the
// backend, so obvious mistakes fail locally with a usable message instead
// of a 400 from the server.
package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
)

// IssueType categorizes a validation failure
type IssueType string

const (
	IssueEmptyField    IssueType = "empty_field"
	IssueBadFrequency  IssueType = "bad_frequency"
	IssueBadAcronym    IssueType = "bad_acronym"
	IssueOutOfRange    IssueType = "out_of_range"
	IssueNegativeValue IssueType = "negative_value"
	IssueBadDate       IssueType = "bad_date"
	IssueBadStatus     IssueType = "bad_status"
)

// Issue is a single validation failure
type Issue struct {
	Type        IssueType
	Field       string
	Description string
}

// Result collects every issue found in one payload
type Result struct {
	Issues []Issue
}

func (r *Result) add(t IssueType, field, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{
		Type:        t,
		Field:       field,
		Description: fmt.Sprintf(format, args...),
	})
}

// OK returns true when no issues were found
func (r *Result) OK() bool {
	return len(r.Issues) == 0
}

// Err returns nil when the payload is valid, otherwise an error listing
// every issue.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	msgs := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		msgs[i] = issue.Description
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

// Habit checks a habit creation payload.
func Habit(h models.NewHabit) Result {
	var r Result

	if strings.TrimSpace(h.Name) == "" {
		r.add(IssueEmptyField, "name", "name cannot be empty")
	}
	if h.Acronym != "" {
		checkAcronym(&r, h.Acronym)
	}
	if h.Frequency != "" {
		switch h.Frequency {
		case constants.FrequencyDaily, constants.FrequencyWeekly, constants.FrequencyCustom:
		default:
			r.add(IssueBadFrequency, "frequency",
				"frequency must be %q, %q, or %q",
				constants.FrequencyDaily, constants.FrequencyWeekly, constants.FrequencyCustom)
		}
	}
	if h.TargetCount < 0 {
		r.add(IssueOutOfRange, "target_count", "target count must be at least 1")
	}

	return r
}

func checkAcronym(r *Result, acronym string) {
	n := len([]rune(acronym))
	if n < constants.AcronymMinLen || n > constants.AcronymMaxLen {
		r.add(IssueBadAcronym, "acronym",
			"acronym must be %d to %d characters", constants.AcronymMinLen, constants.AcronymMaxLen)
		return
	}
	for _, c := range acronym {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			r.add(IssueBadAcronym, "acronym", "acronym must be letters or digits only")
			return
		}
	}
}

// Log checks a habit log payload.
func Log(l models.NewLog) Result {
	var r Result

	if l.Status != "" && !constants.ValidLogStatus(l.Status) {
		r.add(IssueBadStatus, "status", "status must be completed, failed, or skipped")
	}
	if l.CompletedAt != "" {
		if _, err := time.ParseInLocation(constants.LogTimestampFormat, l.CompletedAt, time.Local); err != nil {
			if _, err := time.ParseInLocation(constants.DateFormat, l.CompletedAt, time.Local); err != nil {
				r.add(IssueBadDate, "completed_at", "completed_at must be a date or date-time: %s", l.CompletedAt)
			}
		}
	}

	return r
}

// DietEntry checks a diet log payload.
func DietEntry(e models.NewDietEntry) Result {
	var r Result

	if strings.TrimSpace(e.FoodItem) == "" {
		r.add(IssueEmptyField, "food_item", "food item cannot be empty")
	}
	if e.MealType != "" {
		switch e.MealType {
		case constants.MealBreakfast, constants.MealLunch, constants.MealDinner, constants.MealSnack:
		default:
			r.add(IssueOutOfRange, "meal_type", "unknown meal type: %s", e.MealType)
		}
	}
	if e.Date != "" {
		if _, err := time.ParseInLocation(constants.DateFormat, e.Date, time.Local); err != nil {
			r.add(IssueBadDate, "date", "date must be YYYY-MM-DD: %s", e.Date)
		}
	}
	if e.Calories != nil && *e.Calories < 0 {
		r.add(IssueNegativeValue, "calories", "calories cannot be negative")
	}
	checkNutrient(&r, "protein", e.Protein)
	checkNutrient(&r, "carbs", e.Carbs)
	checkNutrient(&r, "fats", e.Fats)
	if e.Quantity != nil && *e.Quantity <= 0 {
		r.add(IssueOutOfRange, "quantity", "quantity must be positive")
	}

	return r
}

func checkNutrient(r *Result, field string, v *float64) {
	if v != nil && *v < 0 {
		r.add(IssueNegativeValue, field, "%s cannot be negative", field)
	}
}

// CalorieGoal checks a daily calorie goal.
func CalorieGoal(goal int) Result {
	var r Result
	if goal < constants.CalorieGoalMin || goal > constants.CalorieGoalMax {
		r.add(IssueOutOfRange, "calorie_goal",
			"calorie goal must be between %d and %d", constants.CalorieGoalMin, constants.CalorieGoalMax)
	}
	return r
}

// Investment checks an investment creation payload.
func Investment(inv models.NewInvestment) Result {
	var r Result

	if strings.TrimSpace(inv.InstrumentType) == "" {
		r.add(IssueEmptyField, "instrument_type", "instrument type cannot be empty")
	}
	if strings.TrimSpace(inv.InstrumentName) == "" {
		r.add(IssueEmptyField, "instrument_name", "instrument name cannot be empty")
	}
	if inv.Quantity <= 0 {
		r.add(IssueOutOfRange, "quantity", "quantity must be positive")
	}
	if inv.BuyPrice < 0 {
		r.add(IssueNegativeValue, "buy_price", "buy price cannot be negative")
	}
	if inv.BuyDate == "" {
		r.add(IssueEmptyField, "buy_date", "buy date cannot be empty")
	} else if _, err := time.ParseInLocation(constants.DateFormat, inv.BuyDate, time.Local); err != nil {
		r.add(IssueBadDate, "buy_date", "buy date must be YYYY-MM-DD: %s", inv.BuyDate)
	}

	return r
}

// NormalizeSymbol uppercases a ticker and defaults bare Indian symbols to
// the NSE suffix, matching what the price service expects.
func NormalizeSymbol(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if s == "" {
		return s
	}
	if !strings.HasSuffix(s, ".NS") && !strings.HasSuffix(s, ".BO") {
		s += ".NS"
	}
	return s
}
