package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/fridgemate/backend/internal/api"
	"github.com/fridgemate/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	ingredientHandler *api.IngredientHandler,
	preferencesHandler *api.PreferencesHandler,
	recipeHandler *api.RecipeHandler,
	corsOrigins []string,
	logger zerolog.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	ingredientHandler.RegisterRoutes(v1)
	preferencesHandler.RegisterRoutes(v1)
	recipeHandler.RegisterRoutes(v1)

	return router
}
