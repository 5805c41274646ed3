package api

import (
	"time"

	"github.com/fridgemate/backend/internal/models"
)

// IngredientRequest is the body for adding a fridge ingredient.
type IngredientRequest struct {
	Name       string                    `json:"name" binding:"required"`
	Category   models.IngredientCategory `json:"category" binding:"required"`
	Amount     float64                   `json:"amount" binding:"gte=0"`
	Unit       models.Unit               `json:"unit" binding:"required"`
	ExpiryDate *time.Time                `json:"expiry_date"`
}

// BulkIngredientRequest is the body for adding several ingredients at
// once (quick-add by category).
type BulkIngredientRequest struct {
	Ingredients []IngredientRequest `json:"ingredients" binding:"required,min=1,dive"`
}

// IngredientResponse is an ingredient plus its derived expiry status.
type IngredientResponse struct {
	models.Ingredient
	ExpiryStatus models.ExpiryStatus `json:"expiry_status"`
}

// RecommendationsResponse mirrors the engine's observable state.
type RecommendationsResponse struct {
	Recipes   []models.Recipe          `json:"recipes"`
	IsLoading bool                     `json:"is_loading"`
	Error     string                   `json:"error,omitempty"`
	Filter    models.CookingTimeFilter `json:"filter"`
}

// SavedStatusResponse answers an is-saved probe.
type SavedStatusResponse struct {
	Saved bool `json:"saved"`
}
