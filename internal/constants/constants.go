package constants

// Status represents the recorded outcome of a habit on a day
type Status string

// Tier represents the calendar heat tier for a day's completion percentage
type Tier string

// MealType categorizes a diet entry
type MealType string

const (
	AppName           = "lifetrack"
	Version           = "v0.3.0"
	DefaultAPIBase    = "http://localhost:5000"
	DefaultConfigPath = "~/.config/lifetrack"

	// APIBaseEnv overrides the backend base URL when set
	APIBaseEnv = "LIFETRACK_API"

	// KeyringTokenUser names the keyring entry holding the session token
	KeyringTokenUser = "session-token"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// LogTimestampFormat pins new logs to local noon so the backend derives
	// the same calendar day regardless of timezone offset.
	LogTimestampFormat = "2006-01-02T15:04:05"

	// Habit log statuses. An empty status on the wire means completed
	// (backward compatibility with logs created before statuses existed).
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
	// StatusNone is client-side only: "no log for this habit on this day".
	StatusNone Status = "none"

	// Calendar heat tiers, highest first
	TierGold        Tier = "gold"
	TierBrightGreen Tier = "bright-green"
	TierBlue        Tier = "blue"
	TierOrange      Tier = "orange"
	TierRed         Tier = "red"
	TierNone        Tier = "none"

	// Habit frequency values accepted by the backend
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
	FrequencyCustom = "custom"

	// Meal types
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"

	// Acronym length bounds (characters, upper-cased on write)
	AcronymMinLen = 2
	AcronymMaxLen = 3

	// Calorie goal bounds enforced by the backend profile endpoint
	CalorieGoalMin     = 500
	CalorieGoalMax     = 10000
	CalorieGoalDefault = 2000

	// QuoteFetchTimeoutMs bounds the best-effort remote quote enhancement
	QuoteFetchTimeoutMs = 2000

	// GridCells is the fixed calendar grid size (6 weeks of 7 days)
	GridCells = 42
)

// ValidLogStatus reports whether s is a status the backend accepts on a log.
func ValidLogStatus(s Status) bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusSkipped:
		return true
	}
	return false
}

// NormalizeStatus maps an absent status to completed, matching the
// backend's backward-compatibility rule.
func NormalizeStatus(s Status) Status {
	if s == "" {
		return StatusCompleted
	}
	return s
}
