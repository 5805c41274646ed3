package config

import "fmt"

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable
func ValidateConfig(cfg *Config) error {
	if cfg.SpoonacularAPIKey == "" {
		return ValidationError{Field: "SPOONACULAR_API_KEY", Message: "is required"}
	}
	if cfg.SpoonacularBaseURL == "" {
		return ValidationError{Field: "SPOONACULAR_BASE_URL", Message: "must not be empty"}
	}
	// Spoonacular caps the number parameter at 100.
	if cfg.SpoonacularMaxResults < 1 || cfg.SpoonacularMaxResults > 100 {
		return ValidationError{Field: "SPOONACULAR_MAX_RESULTS", Message: "must be between 1 and 100"}
	}
	if cfg.ServerPort == "" {
		return ValidationError{Field: "SERVER_PORT", Message: "must not be empty"}
	}
	if cfg.HTTPTimeout <= 0 {
		return ValidationError{Field: "HTTP_TIMEOUT", Message: "must be positive"}
	}
	if cfg.DataDir == "" {
		return ValidationError{Field: "DATA_DIR", Message: "must not be empty"}
	}
	return nil
}
