package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fridgemate/backend/internal/api"
	"github.com/fridgemate/backend/internal/models"
	"github.com/fridgemate/backend/internal/spoonacular"
)

func apiRecipe(id int, title string, minutes int) spoonacular.APIRecipe {
	return spoonacular.APIRecipe{ID: id, Title: title, ReadyInMinutes: &minutes}
}

func TestGetRecommendations(t *testing.T) {
	env := setupTestRouter(t)
	env.ingredients.Add(models.NewIngredient("chicken", models.CategoryMeat, 500, models.UnitGram, nil))

	env.gateway.On("SearchByIngredients", mock.Anything, []string{"chicken"}).
		Return([]spoonacular.SearchResult{{ID: 101}, {ID: 102}}, nil)
	env.gateway.On("FetchDetailsBulk", mock.Anything, []int{101, 102}).
		Return([]spoonacular.APIRecipe{
			apiRecipe(101, "Roast chicken", 45),
			apiRecipe(102, "Chicken stir fry", 20),
		}, nil)

	w := doJSON(t, env.router, "GET", "/api/v1/recommendations", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp api.RecommendationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Recipes, 2)
	assert.False(t, resp.IsLoading)
	assert.Empty(t, resp.Error)
	assert.Equal(t, models.FilterAll, resp.Filter)

	// Narrowing the filter reuses the cached fetch.
	w = doJSON(t, env.router, "GET", "/api/v1/recommendations?filter=Under+30+min", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Recipes, 1)
	assert.Equal(t, "Chicken stir fry", resp.Recipes[0].Name)
	env.gateway.AssertNumberOfCalls(t, "SearchByIngredients", 1)
}

func TestGetRecommendationsInvalidFilter(t *testing.T) {
	env := setupTestRouter(t)

	w := doJSON(t, env.router, "GET", "/api/v1/recommendations?filter=Under+2+min", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.gateway.AssertNotCalled(t, "SearchByIngredients")
}

func TestGetRecommendationsEmptyFridge(t *testing.T) {
	env := setupTestRouter(t)

	w := doJSON(t, env.router, "GET", "/api/v1/recommendations", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp api.RecommendationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Recipes)
	env.gateway.AssertNotCalled(t, "SearchByIngredients")
}

func TestGetRecommendationsUpstreamFailure(t *testing.T) {
	env := setupTestRouter(t)
	env.ingredients.Add(models.NewIngredient("chicken", models.CategoryMeat, 500, models.UnitGram, nil))

	env.gateway.On("SearchByIngredients", mock.Anything, mock.Anything).
		Return(nil, &spoonacular.QuotaError{Message: "Daily quota exceeded"})

	w := doJSON(t, env.router, "GET", "/api/v1/recommendations", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp api.RecommendationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "API Error: Daily quota exceeded", resp.Error)
	assert.Empty(t, resp.Recipes)
}

func TestGetRecipeDetail(t *testing.T) {
	env := setupTestRouter(t)

	detail := apiRecipe(716429, "Pasta with garlic", 45)
	env.gateway.On("FetchDetail", mock.Anything, 716429).Return(detail, nil)

	w := doJSON(t, env.router, "GET", "/api/v1/recipes/716429", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var recipe models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	assert.Equal(t, "Pasta with garlic", recipe.Name)
	require.NotNil(t, recipe.SpoonacularID)
	assert.Equal(t, 716429, *recipe.SpoonacularID)

	w = doJSON(t, env.router, "GET", "/api/v1/recipes/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRecipeDetailUpstreamError(t *testing.T) {
	env := setupTestRouter(t)

	env.gateway.On("FetchDetail", mock.Anything, 716429).
		Return(spoonacular.APIRecipe{}, &spoonacular.DecodeError{})

	w := doJSON(t, env.router, "GET", "/api/v1/recipes/716429", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Failed to read the recipe service response.", body["error"])
}

func TestSaveRecipeFlow(t *testing.T) {
	env := setupTestRouter(t)

	id := 716429
	recipe := models.Recipe{
		ID:            uuid.New(),
		SpoonacularID: &id,
		Name:          "Pasta with garlic",
		CookingTime:   45,
		Difficulty:    models.DifficultyMedium,
		Cuisine:       models.NationalityOther,
	}

	w := doJSON(t, env.router, "POST", "/api/v1/saved-recipes", recipe)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Saving the same upstream recipe again is a no-op.
	w = doJSON(t, env.router, "POST", "/api/v1/saved-recipes", recipe)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, env.saved.List(), 1)

	w = doJSON(t, env.router, "GET", "/api/v1/saved-recipes/716429", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var status api.SavedStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.True(t, status.Saved)

	w = doJSON(t, env.router, "DELETE", "/api/v1/saved-recipes/716429", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, env.saved.List())

	w = doJSON(t, env.router, "DELETE", "/api/v1/saved-recipes/716429", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSavedStatusUnknownRecipe(t *testing.T) {
	env := setupTestRouter(t)

	w := doJSON(t, env.router, "GET", "/api/v1/saved-recipes/999", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var status api.SavedStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.False(t, status.Saved)
}
