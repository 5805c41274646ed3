package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fridgemate/backend/internal/models"
	"github.com/fridgemate/backend/internal/service"
	"github.com/fridgemate/backend/internal/spoonacular"
	"github.com/fridgemate/backend/internal/store"
)

// RecipeHandler exposes recommendations, recipe details, and the
// saved-recipe list.
type RecipeHandler struct {
	engine      *service.RecommendationService
	ingredients service.IngredientSource
	saved       *store.SavedRecipeStore
	gateway     service.RecipeGateway
}

func NewRecipeHandler(engine *service.RecommendationService, ingredients service.IngredientSource, saved *store.SavedRecipeStore, gateway service.RecipeGateway) *RecipeHandler {
	return &RecipeHandler{
		engine:      engine,
		ingredients: ingredients,
		saved:       saved,
		gateway:     gateway,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recommendations", h.GetRecommendations)
	router.GET("/recipes/:id", h.GetRecipeDetail)

	saved := router.Group("/saved-recipes")
	{
		saved.GET("", h.ListSavedRecipes)
		saved.POST("", h.SaveRecipe)
		saved.GET("/:id", h.GetSavedStatus)
		saved.DELETE("/:id", h.RemoveSavedRecipe)
	}
}

// GetRecommendations runs the pipeline over the current fridge
// contents and returns the engine's settled state. Upstream failures
// surface as the error string in the body, not as an HTTP error: the
// prior recipe list is still served.
func (h *RecipeHandler) GetRecommendations(c *gin.Context) {
	if raw, ok := c.GetQuery("filter"); ok {
		filter, valid := models.ParseCookingTimeFilter(raw)
		if !valid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cooking time filter"})
			return
		}
		h.engine.SetFilter(filter)
	}

	h.engine.LoadRecipes(c.Request.Context(), h.ingredients.Items())

	snap := h.engine.Snapshot()
	c.JSON(http.StatusOK, RecommendationsResponse{
		Recipes:   snap.Recipes,
		IsLoading: snap.IsLoading,
		Error:     snap.ErrorMessage,
		Filter:    snap.Filter,
	})
}

// GetRecipeDetail proxies a single-recipe information fetch.
func (h *RecipeHandler) GetRecipeDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}
	detail, err := h.gateway.FetchDetail(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": spoonacular.UserMessage(err)})
		return
	}
	c.JSON(http.StatusOK, service.MapRecipe(detail))
}

func (h *RecipeHandler) ListSavedRecipes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"recipes": h.saved.List()})
}

func (h *RecipeHandler) SaveRecipe(c *gin.Context) {
	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if h.saved.Save(recipe) {
		c.JSON(http.StatusCreated, recipe)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe already saved"})
}

func (h *RecipeHandler) GetSavedStatus(c *gin.Context) {
	_, found := h.saved.Find(c.Param("id"))
	c.JSON(http.StatusOK, SavedStatusResponse{Saved: found})
}

func (h *RecipeHandler) RemoveSavedRecipe(c *gin.Context) {
	recipe, found := h.saved.Find(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	h.saved.Remove(recipe)
	c.JSON(http.StatusOK, gin.H{"message": "Recipe removed successfully"})
}
