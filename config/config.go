package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Gemini upstream configuration
	GeminiAPIKey string
	GeminiAPIURL string
	GeminiModel  string

	// Retry policy for the nutrition score upstream call
	RetryMaxAttempts int
	RetryBaseDelay   time.Duration
}

const (
	// DefaultGeminiAPIURL is the base URL of the generative language API.
	DefaultGeminiAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultGeminiModel is used when GEMINI_MODEL is not set.
	DefaultGeminiModel = "gemini-2.0-flash"

	defaultRetryMaxAttempts = 3
	defaultRetryBaseDelay   = 500 * time.Millisecond
)

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{
		GeminiAPIURL:     DefaultGeminiAPIURL,
		GeminiModel:      DefaultGeminiModel,
		RetryMaxAttempts: defaultRetryMaxAttempts,
		RetryBaseDelay:   defaultRetryBaseDelay,
	}

	switch env {
	case Production:
		if err := loadProdConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load production configuration: %w", err)
		}
	default:
		if err := loadEnvConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadEnvConfig loads configuration from environment variables (development, test, CI)
func loadEnvConfig(cfg *Config) error {
	cfg.ServerHost = getEnvOrDefault("SERVER_HOST", "0.0.0.0")
	cfg.ServerPort = getEnvOrDefault("SERVER_PORT", "8080")

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		if keyFile := os.Getenv("GEMINI_API_KEY_FILE"); keyFile != "" {
			data, err := os.ReadFile(keyFile)
			if err != nil {
				return fmt.Errorf("failed to read API key file: %w", err)
			}
			apiKey = strings.TrimSpace(string(data))
		}
	}
	cfg.GeminiAPIKey = apiKey

	if url := os.Getenv("GEMINI_API_URL"); url != "" {
		cfg.GeminiAPIURL = url
	}
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		cfg.GeminiModel = model
	}

	return nil
}

// loadProdConfig loads configuration for production using Docker secrets,
// falling back to environment variables for non-sensitive values
func loadProdConfig(cfg *Config) error {
	cfg.ServerHost = getEnvOrDefault("SERVER_HOST", "0.0.0.0")
	cfg.ServerPort = getEnvOrDefault("SERVER_PORT", "8080")

	cfg.GeminiAPIKey = readSecret("gemini_api_key")
	if cfg.GeminiAPIKey == "" {
		cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}

	if url := os.Getenv("GEMINI_API_URL"); url != "" {
		cfg.GeminiAPIURL = url
	}
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		cfg.GeminiModel = model
	}

	return nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
