package models

import "github.com/google/uuid"

// Difficulty rates how hard a recipe is to cook. The upstream API has
// no difficulty signal, so mapped recipes always carry Medium.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// RecipeIngredient is one line item within a recipe.
type RecipeIngredient struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Amount     float64   `json:"amount"`
	Unit       Unit      `json:"unit"`
	IsOptional bool      `json:"is_optional"`
}

// Nutrient is a single nutrition fact attached to a recipe.
type Nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Recipe is the internal recipe representation. Instances are built
// fresh from upstream API responses and never mutated afterwards.
type Recipe struct {
	ID              uuid.UUID          `json:"id"`
	SpoonacularID   *int               `json:"spoonacular_id,omitempty"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	ImageURL        string             `json:"image_url,omitempty"`
	SourceURL       string             `json:"source_url,omitempty"`
	CookingTime     int                `json:"cooking_time"`
	Servings        *int               `json:"servings,omitempty"`
	Difficulty      Difficulty         `json:"difficulty"`
	Cuisine         Nationality        `json:"cuisine"`
	FoodPreferences []FoodPreference   `json:"food_preferences"`
	Allergens       []Allergy          `json:"allergens"`
	Tags            []string           `json:"tags"`
	Ingredients     []RecipeIngredient `json:"ingredients"`
	Instructions    []string           `json:"instructions"`
	Nutrients       []Nutrient         `json:"nutrients,omitempty"`
}

// SameRecipe is the two-tier identity used for saved-recipe lookups:
// when both recipes carry an upstream id that id is canonical,
// otherwise the local identifier decides.
func SameRecipe(a, b Recipe) bool {
	if a.SpoonacularID != nil && b.SpoonacularID != nil {
		return *a.SpoonacularID == *b.SpoonacularID
	}
	return a.ID == b.ID
}

// CookingTimeFilter buckets recipes by cooking time. It is applied
// client-side after mapping and never sent upstream.
type CookingTimeFilter string

const (
	FilterAll     CookingTimeFilter = "All"
	FilterUnder15 CookingTimeFilter = "Under 15 min"
	FilterUnder30 CookingTimeFilter = "Under 30 min"
	FilterUnder60 CookingTimeFilter = "Under 1 hour"
	FilterOver60  CookingTimeFilter = "Over 1 hour"
)

// CookingTimeFilters lists every valid filter.
var CookingTimeFilters = []CookingTimeFilter{
	FilterAll, FilterUnder15, FilterUnder30, FilterUnder60, FilterOver60,
}

// ParseCookingTimeFilter matches s against the closed filter set.
func ParseCookingTimeFilter(s string) (CookingTimeFilter, bool) {
	for _, f := range CookingTimeFilters {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// Matches reports whether a recipe with the given cooking time (in
// minutes) passes the filter.
func (f CookingTimeFilter) Matches(cookingTime int) bool {
	switch f {
	case FilterUnder15:
		return cookingTime <= 15
	case FilterUnder30:
		return cookingTime <= 30
	case FilterUnder60:
		return cookingTime <= 60
	case FilterOver60:
		return cookingTime > 60
	default:
		return true
	}
}
