// Package config provides configuration loading and validation for the
// server and CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the application configuration resolved from environment
// variables. Missing values fall back to development defaults; only
// DATABASE_URL has no default and is validated where it is required.
type Config struct {
	DatabaseURL string // PostgreSQL connection URL
	Port        string // HTTP listen port

	CatalogPath string // Path to the product catalog JSON file
	CacheDir    string // Directory for the on-disk cache, empty means in-memory

	WeatherAPIKey  string // WeatherAPI.com key, empty means mock forecasts
	UseMockWeather bool   // Force mock forecasts even with a key set
}

// FromEnv builds a Config from the process environment.
func FromEnv() *Config {
	return &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Port:           envOr("PORT", "8080"),
		CatalogPath:    envOr("CATALOG_PATH", "data/products.json"),
		CacheDir:       os.Getenv("CACHE_DIR"),
		WeatherAPIKey:  os.Getenv("WEATHER_API_KEY"),
		UseMockWeather: envBool("USE_MOCK_WEATHER"),
	}
}

// Validate checks that the configuration is usable by the server.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: DATABASE_URL is required")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("config error: invalid PORT %q", c.Port)
	}
	if c.CatalogPath == "" {
		return fmt.Errorf("config error: CATALOG_PATH cannot be empty")
	}
	if _, err := os.Stat(c.CatalogPath); os.IsNotExist(err) {
		return fmt.Errorf("config error: catalog file not found: %s", c.CatalogPath)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
