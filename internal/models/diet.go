package models

import "github.com/julianstephens/lifetrack/internal/constants"

// DietEntry is one logged food item. Nutrient fields are pointers because
// the backend stores them as nullable columns and omitting a value is
// meaningfully different from zero.
type DietEntry struct {
	ID             int                `json:"id"`
	MealType       constants.MealType `json:"meal_type"`
	FoodItem       string             `json:"food_item"`
	Description    string             `json:"description"`
	Calories       *int               `json:"calories"`
	Protein        *float64           `json:"protein"`
	Carbs          *float64           `json:"carbs"`
	Fats           *float64           `json:"fats"`
	Sugar          *float64           `json:"sugar"`
	Fiber          *float64           `json:"fiber"`
	SaturatedFat   *float64           `json:"saturated_fat"`
	UnsaturatedFat *float64           `json:"unsaturated_fat"`
	Calcium        *float64           `json:"calcium"`
	Iron           *float64           `json:"iron"`
	Magnesium      *float64           `json:"magnesium"`
	Sodium         *float64           `json:"sodium"`
	Potassium      *float64           `json:"potassium"`
	ConsumedAt     Timestamp          `json:"consumed_at"`
	Notes          string             `json:"notes"`
}

// NewDietEntry is the request body for logging a food item.
type NewDietEntry struct {
	FoodItem string             `json:"food_item"`
	MealType constants.MealType `json:"meal_type,omitempty"`
	Quantity *float64           `json:"quantity,omitempty"`
	Unit     string             `json:"unit,omitempty"`
	Date     string             `json:"date,omitempty"`
	Calories *int               `json:"calories,omitempty"`
	Protein  *float64           `json:"protein,omitempty"`
	Carbs    *float64           `json:"carbs,omitempty"`
	Fats     *float64           `json:"fats,omitempty"`
	Notes    string             `json:"notes,omitempty"`
}

// DietSummary is the backend's nutritional rollup for one date.
type DietSummary struct {
	TotalEntries        int     `json:"total_entries"`
	TotalCalories       int     `json:"total_calories"`
	TotalProtein        float64 `json:"total_protein"`
	TotalCarbs          float64 `json:"total_carbs"`
	TotalFats           float64 `json:"total_fats"`
	TotalSugar          float64 `json:"total_sugar"`
	TotalFiber          float64 `json:"total_fiber"`
	TotalSaturatedFat   float64 `json:"total_saturated_fat"`
	TotalUnsaturatedFat float64 `json:"total_unsaturated_fat"`
	TotalCalcium        float64 `json:"total_calcium"`
	TotalIron           float64 `json:"total_iron"`
	TotalMagnesium      float64 `json:"total_magnesium"`
	TotalSodium         float64 `json:"total_sodium"`
	TotalPotassium      float64 `json:"total_potassium"`
	CalorieGoal         int     `json:"calorie_goal"`
	CaloriePercentage   float64 `json:"calorie_percentage"`
}

// FoodResult is one candidate from the nutrition lookup service.
type FoodResult struct {
	FoodID      string  `json:"food_unique_id"`
	FoodName    string  `json:"food_name"`
	CommonNames string  `json:"common_names"`
	ServingType string  `json:"serving_type"`
	ServingSize float64 `json:"serving_size"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fats        float64 `json:"fats"`
	Source      string  `json:"source"`
}

// FoodLookup is the nutrition lookup response envelope.
type FoodLookup struct {
	Success bool         `json:"success"`
	Results []FoodResult `json:"results"`
	Error   string       `json:"error,omitempty"`
}

// Profile is the authenticated user's profile.
type Profile struct {
	ID          int       `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	CalorieGoal int       `json:"calorie_goal"`
	CreatedAt   Timestamp `json:"created_at"`
}
