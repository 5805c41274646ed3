package service

import (
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/fridgemate/backend/internal/models"
	"github.com/fridgemate/backend/internal/spoonacular"
)

// MapRecipe converts an upstream detail record into the internal
// Recipe shape. The upstream id is kept as the canonical identity for
// saved-recipe lookups; a fresh local id covers recipes without one.
func MapRecipe(api spoonacular.APIRecipe) models.Recipe {
	ingredients := make([]models.RecipeIngredient, 0, len(api.ExtendedIngredients))
	for _, ing := range api.ExtendedIngredients {
		optional := false
		if ing.Original != nil {
			optional = strings.Contains(strings.ToLower(*ing.Original), "optional")
		}
		ingredients = append(ingredients, models.RecipeIngredient{
			ID:         uuid.New(),
			Name:       ing.Name,
			Amount:     ing.Amount,
			Unit:       models.ParseUnit(ing.Unit),
			IsOptional: optional,
		})
	}

	// Only the first analyzed instruction block is used.
	var instructions []string
	if len(api.AnalyzedInstructions) > 0 {
		for _, step := range api.AnalyzedInstructions[0].Steps {
			instructions = append(instructions, step.Step)
		}
	}
	if instructions == nil {
		instructions = []string{}
	}

	cuisine := models.NationalityOther
	if len(api.Cuisines) > 0 {
		cuisine = models.ParseNationality(api.Cuisines[0])
	}

	preferences := make([]models.FoodPreference, 0, len(api.Diets))
	for _, diet := range api.Diets {
		if pref, ok := models.ParseFoodPreference(capitalize(diet)); ok {
			preferences = append(preferences, pref)
		}
	}

	description := ""
	if api.Summary != nil {
		description = *api.Summary
	}
	sourceURL := ""
	if api.SourceURL != nil {
		sourceURL = *api.SourceURL
	}
	cookingTime := 0
	if api.ReadyInMinutes != nil {
		cookingTime = *api.ReadyInMinutes
	}
	tags := api.DishTypes
	if tags == nil {
		tags = []string{}
	}

	var nutrients []models.Nutrient
	if api.Nutrition != nil {
		for _, n := range api.Nutrition.Nutrients {
			nutrients = append(nutrients, models.Nutrient{Name: n.Name, Amount: n.Amount, Unit: n.Unit})
		}
	}

	apiID := api.ID
	return models.Recipe{
		ID:              uuid.New(),
		SpoonacularID:   &apiID,
		Name:            api.Title,
		Description:     description,
		ImageURL:        api.Image,
		SourceURL:       sourceURL,
		CookingTime:     cookingTime,
		Servings:        api.Servings,
		Difficulty:      models.DifficultyMedium,
		Cuisine:         cuisine,
		FoodPreferences: preferences,
		Allergens:       []models.Allergy{},
		Tags:            tags,
		Ingredients:     ingredients,
		Instructions:    instructions,
		Nutrients:       nutrients,
	}
}

// capitalize upper-cases the first letter of every word and
// lower-cases the rest, with any non-letter acting as a word boundary
// ("dairy-free" becomes "Dairy-Free"). Diet tags are normalized this
// way before the closed-enum match.
func capitalize(s string) string {
	runes := []rune(s)
	startOfWord := true
	for i, r := range runes {
		if !unicode.IsLetter(r) {
			startOfWord = true
			continue
		}
		if startOfWord {
			runes[i] = unicode.ToUpper(r)
			startOfWord = false
		} else {
			runes[i] = unicode.ToLower(r)
		}
	}
	return string(runes)
}
