package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SPOONACULAR_API_KEY", "test-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "https://api.spoonacular.com", cfg.SpoonacularBaseURL)
	assert.Equal(t, "test-key", cfg.SpoonacularAPIKey)
	assert.Equal(t, 10, cfg.SpoonacularMaxResults)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SPOONACULAR_API_KEY", "test-key")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CORS_ORIGINS", "http://a.example,http://b.example")
	t.Setenv("SPOONACULAR_MAX_RESULTS", "25")
	t.Setenv("HTTP_TIMEOUT", "3s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 25, cfg.SpoonacularMaxResults)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
}

func TestLoadConfigMissingAPIKey(t *testing.T) {
	t.Setenv("SPOONACULAR_API_KEY", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SPOONACULAR_API_KEY")
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			ServerPort:            "8080",
			DataDir:               "data",
			SpoonacularBaseURL:    "https://api.spoonacular.com",
			SpoonacularAPIKey:     "key",
			SpoonacularMaxResults: 10,
			HTTPTimeout:           15 * time.Second,
		}
	}

	require.NoError(t, ValidateConfig(valid()))

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"missing api key", func(c *Config) { c.SpoonacularAPIKey = "" }, "SPOONACULAR_API_KEY"},
		{"empty base url", func(c *Config) { c.SpoonacularBaseURL = "" }, "SPOONACULAR_BASE_URL"},
		{"max results too low", func(c *Config) { c.SpoonacularMaxResults = 0 }, "SPOONACULAR_MAX_RESULTS"},
		{"max results too high", func(c *Config) { c.SpoonacularMaxResults = 101 }, "SPOONACULAR_MAX_RESULTS"},
		{"empty port", func(c *Config) { c.ServerPort = "" }, "SERVER_PORT"},
		{"zero timeout", func(c *Config) { c.HTTPTimeout = 0 }, "HTTP_TIMEOUT"},
		{"empty data dir", func(c *Config) { c.DataDir = "" }, "DATA_DIR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := ValidateConfig(cfg)
			require.Error(t, err)
			var verr ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}
