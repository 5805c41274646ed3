package service

import (
	"context"

	"github.com/fridgemate/backend/internal/models"
	"github.com/fridgemate/backend/internal/spoonacular"
)

// RecipeGateway abstracts the upstream recipe API so the
// recommendation service can be exercised against a fake in tests.
type RecipeGateway interface {
	SearchByIngredients(ctx context.Context, names []string) ([]spoonacular.SearchResult, error)
	FetchDetailsBulk(ctx context.Context, ids []int) ([]spoonacular.APIRecipe, error)
	FetchDetail(ctx context.Context, id int) (spoonacular.APIRecipe, error)
}

// IngredientSource is the slice of the ingredient store the
// recommendation service needs: current contents plus a change signal.
type IngredientSource interface {
	Items() []models.Ingredient
	Subscribe() <-chan struct{}
}
