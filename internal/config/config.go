// Package config loads the configuration of the ledger from environment
// variables and an optional .env file.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/envelope-zero/ledger/pkg/repository"
	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	GinMode   string // empty when GIN_MODE is not set
	LogFormat string // empty when LOG_FORMAT is not set
	APIURL    *url.URL
	Port      string
	Storage   StorageConfig
	Currency  string // ISO 4217 code used to display amounts
}

// StorageConfig selects and configures the storage backend.
type StorageConfig struct {
	Backend     string
	DataDir     string
	DatabaseURL string
	Reset       bool
}

// Load loads configuration from environment variables.
//
// A .env file in the current directory is loaded if it exists. A custom
// path can be passed instead, it must exist.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	port := getEnvOrDefault("PORT", "8080")

	apiURL, err := url.Parse(getEnvOrDefault("API_URL", "http://localhost:"+port))
	if err != nil {
		return nil, fmt.Errorf("invalid API_URL: %w", err)
	}

	reset, err := parseBoolEnv("LEDGER_RESET", false)
	if err != nil {
		return nil, err
	}

	config := &Config{
		GinMode:   os.Getenv("GIN_MODE"),
		LogFormat: os.Getenv("LOG_FORMAT"),
		APIURL:    apiURL,
		Port:      port,
		Storage: StorageConfig{
			Backend:     getEnvOrDefault("LEDGER_STORAGE", repository.BackendFile),
			DataDir:     getEnvOrDefault("LEDGER_DATA_DIR", "data"),
			DatabaseURL: os.Getenv("LEDGER_DATABASE_URL"),
			Reset:       reset,
		},
		Currency: getEnvOrDefault("LEDGER_CURRENCY", money.EUR),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that the configured values can be used.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case repository.BackendFile, repository.BackendSQLite, repository.BackendBolt:
	case repository.BackendPostgres:
		if c.Storage.DatabaseURL == "" {
			return fmt.Errorf("LEDGER_DATABASE_URL must be set for the %s storage backend", repository.BackendPostgres)
		}
	default:
		return fmt.Errorf("unknown LEDGER_STORAGE %q, must be one of %s, %s, %s, %s", c.Storage.Backend, repository.BackendFile, repository.BackendSQLite, repository.BackendBolt, repository.BackendPostgres)
	}

	if money.GetCurrency(c.Currency) == nil {
		return fmt.Errorf("unknown LEDGER_CURRENCY %q", c.Currency)
	}

	if c.APIURL.Scheme == "" || c.APIURL.Host == "" {
		return fmt.Errorf("API_URL must be an absolute URL, got %q", c.APIURL)
	}

	return nil
}

// getEnvOrDefault returns the value of the environment variable or a default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseBoolEnv parses a bool from an environment variable.
// Returns defaultValue if the environment variable is not set.
func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid boolean value for %s: %s", key, value)
	}

	return parsed, nil
}
