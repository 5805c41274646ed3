package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fridgemate/backend/internal/spoonacular"
)

// MockRecipeGateway is a mock implementation of service.RecipeGateway.
type MockRecipeGateway struct {
	mock.Mock
}

// SearchByIngredients mocks the SearchByIngredients method
func (m *MockRecipeGateway) SearchByIngredients(ctx context.Context, names []string) ([]spoonacular.SearchResult, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]spoonacular.SearchResult), args.Error(1)
}

// FetchDetailsBulk mocks the FetchDetailsBulk method
func (m *MockRecipeGateway) FetchDetailsBulk(ctx context.Context, ids []int) ([]spoonacular.APIRecipe, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]spoonacular.APIRecipe), args.Error(1)
}

// FetchDetail mocks the FetchDetail method
func (m *MockRecipeGateway) FetchDetail(ctx context.Context, id int) (spoonacular.APIRecipe, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(spoonacular.APIRecipe), args.Error(1)
}
