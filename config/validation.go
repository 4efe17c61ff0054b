package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks if the configuration is complete and consistent
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.GeminiAPIKey == "" {
		if GetEnvironment() == Production {
			errors = append(errors, "gemini_api_key secret or GEMINI_API_KEY environment variable is required")
		} else {
			errors = append(errors, "GEMINI_API_KEY or GEMINI_API_KEY_FILE environment variable is required")
		}
	}

	if cfg.GeminiAPIURL == "" {
		errors = append(errors, "GEMINI_API_URL must not be empty")
	}
	if cfg.GeminiModel == "" {
		errors = append(errors, "GEMINI_MODEL must not be empty")
	}

	if cfg.ServerPort == "" {
		errors = append(errors, "SERVER_PORT must not be empty")
	} else if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		errors = append(errors, fmt.Sprintf("SERVER_PORT must be numeric, got %q", cfg.ServerPort))
	}

	if cfg.RetryMaxAttempts < 1 {
		errors = append(errors, "retry max attempts must be at least 1")
	}
	if cfg.RetryBaseDelay <= 0 {
		errors = append(errors, "retry base delay must be positive")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
