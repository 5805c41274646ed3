package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/fridgemate/backend/config"
	"github.com/fridgemate/backend/internal/api"
	"github.com/fridgemate/backend/internal/router"
	"github.com/fridgemate/backend/internal/server"
	"github.com/fridgemate/backend/internal/service"
	"github.com/fridgemate/backend/internal/spoonacular"
	"github.com/fridgemate/backend/internal/store"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Stores over the three persisted documents.
	ingredientStore := store.NewIngredientStore(filepath.Join(cfg.DataDir, "ingredients.json"), logger)
	preferencesStore := store.NewPreferencesStore(filepath.Join(cfg.DataDir, "user_preferences.json"), logger)
	savedStore := store.NewSavedRecipeStore(filepath.Join(cfg.DataDir, "saved_recipes.json"), logger)

	gateway := spoonacular.NewClient(
		cfg.SpoonacularBaseURL,
		cfg.SpoonacularAPIKey,
		cfg.SpoonacularMaxResults,
		cfg.HTTPTimeout,
		logger,
	)

	engine := service.NewRecommendationService(gateway, logger)
	engine.Watch(ingredientStore)
	defer engine.Close()

	r := router.SetupRouter(
		api.NewIngredientHandler(ingredientStore),
		api.NewPreferencesHandler(preferencesStore),
		api.NewRecipeHandler(engine, ingredientStore, savedStore, gateway),
		cfg.CORSOrigins,
		logger,
	)

	srv := server.New(r, cfg.ServerHost, cfg.ServerPort, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal().Err(err).Msg("server error")
		}
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown error")
	}
	logger.Info().Msg("server stopped")
}
