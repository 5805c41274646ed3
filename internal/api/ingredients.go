package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fridgemate/backend/internal/models"
	"github.com/fridgemate/backend/internal/store"
)

// IngredientHandler exposes the fridge contents.
type IngredientHandler struct {
	store *store.IngredientStore
}

func NewIngredientHandler(store *store.IngredientStore) *IngredientHandler {
	return &IngredientHandler{store: store}
}

func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup) {
	ingredients := router.Group("/ingredients")
	{
		ingredients.GET("", h.ListIngredients)
		ingredients.POST("", h.AddIngredient)
		ingredients.POST("/bulk", h.AddIngredients)
		ingredients.DELETE("/:id", h.RemoveIngredient)
		ingredients.DELETE("", h.ClearIngredients)
	}
}

func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	sortBy := models.SortOption(c.DefaultQuery("sort", string(models.SortByAddedDate)))
	switch sortBy {
	case models.SortByExpiration, models.SortByAddedDate, models.SortByQuantity:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sort option"})
		return
	}
	order := models.SortOrder(c.DefaultQuery("order", string(models.SortAscending)))
	switch order {
	case models.SortAscending, models.SortDescending:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sort order"})
		return
	}

	items := h.store.List(sortBy, order)
	now := time.Now()
	out := make([]IngredientResponse, 0, len(items))
	for _, it := range items {
		out = append(out, IngredientResponse{Ingredient: it, ExpiryStatus: it.ExpiryStatusAt(now)})
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": out})
}

func (h *IngredientHandler) AddIngredient(c *gin.Context) {
	var req IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ingredient, err := ingredientFromRequest(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.store.Add(ingredient)
	c.JSON(http.StatusCreated, IngredientResponse{Ingredient: ingredient, ExpiryStatus: ingredient.ExpiryStatusAt(time.Now())})
}

func (h *IngredientHandler) AddIngredients(c *gin.Context) {
	var req BulkIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ingredients := make([]models.Ingredient, 0, len(req.Ingredients))
	for _, r := range req.Ingredients {
		ingredient, err := ingredientFromRequest(r)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ingredients = append(ingredients, ingredient)
	}
	h.store.AddMany(ingredients)
	c.JSON(http.StatusCreated, gin.H{"added": len(ingredients)})
}

func (h *IngredientHandler) RemoveIngredient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}
	if !h.store.Remove(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ingredient removed successfully", "id": id.String()})
}

func (h *IngredientHandler) ClearIngredients(c *gin.Context) {
	h.store.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Ingredients cleared successfully"})
}

func ingredientFromRequest(req IngredientRequest) (models.Ingredient, error) {
	if !req.Category.Valid() {
		return models.Ingredient{}, validationError("invalid ingredient category")
	}
	if !req.Unit.Valid() {
		return models.Ingredient{}, validationError("invalid unit")
	}
	return models.NewIngredient(req.Name, req.Category, req.Amount, req.Unit, req.ExpiryDate), nil
}

type validationError string

func (e validationError) Error() string { return string(e) }
