package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost  string   `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ServerPort  string   `envconfig:"SERVER_PORT" default:"8080"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`

	// Local persistence
	DataDir string `envconfig:"DATA_DIR" default:"data"`

	// Spoonacular configuration
	SpoonacularBaseURL    string        `envconfig:"SPOONACULAR_BASE_URL" default:"https://api.spoonacular.com"`
	SpoonacularAPIKey     string        `envconfig:"SPOONACULAR_API_KEY"`
	SpoonacularMaxResults int           `envconfig:"SPOONACULAR_MAX_RESULTS" default:"10"`
	HTTPTimeout           time.Duration `envconfig:"HTTP_TIMEOUT" default:"15s"`
}

// LoadConfig creates a new Config instance from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}
