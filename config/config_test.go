package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("SERVER_HOST", "localhost")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_API_URL", "http://localhost:1234/v1beta")
	t.Setenv("GEMINI_MODEL", "gemini-test")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "localhost", cfg.ServerHost)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, "http://localhost:1234/v1beta", cfg.GeminiAPIURL)
	assert.Equal(t, "gemini-test", cfg.GeminiModel)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("GEMINI_API_KEY", "test-key")
	os.Unsetenv("SERVER_HOST")
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("GEMINI_API_URL")
	os.Unsetenv("GEMINI_MODEL")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, DefaultGeminiAPIURL, cfg.GeminiAPIURL)
	assert.Equal(t, DefaultGeminiModel, cfg.GeminiModel)
	assert.Equal(t, 3, cfg.RetryMaxAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.RetryBaseDelay)
}

func TestLoadConfigAPIKeyFile(t *testing.T) {
	keyFile := filepath.Join(t.TempDir(), "gemini_api_key")
	if err := os.WriteFile(keyFile, []byte("file-key\n"), 0o600); err != nil {
		t.Fatalf("failed to write key file: %v", err)
	}

	t.Setenv("ENV", "test")
	os.Unsetenv("GEMINI_API_KEY")
	t.Setenv("GEMINI_API_KEY_FILE", keyFile)

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "file-key", cfg.GeminiAPIKey)
}

func TestLoadConfigMissingAPIKey(t *testing.T) {
	t.Setenv("ENV", "test")
	os.Unsetenv("GEMINI_API_KEY")
	os.Unsetenv("GEMINI_API_KEY_FILE")

	_, err := LoadConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestValidateConfigRejectsBadPort(t *testing.T) {
	cfg := &Config{
		ServerPort:       "not-a-port",
		GeminiAPIKey:     "k",
		GeminiAPIURL:     DefaultGeminiAPIURL,
		GeminiModel:      DefaultGeminiModel,
		RetryMaxAttempts: 3,
		RetryBaseDelay:   time.Millisecond,
	}
	err := ValidateConfig(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SERVER_PORT")
}
