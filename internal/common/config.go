package common

import (
	"os"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	LLM      LLMConfig
	Download DownloadConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr string
}

// LLMConfig holds OpenRouter-related configuration
type LLMConfig struct {
	Model   string
	APIKey  string
	BaseURL string
	Referer string
	Timeout time.Duration
}

// DownloadConfig holds remote content fetch configuration
type DownloadConfig struct {
	Timeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: getEnv("SERVER_ADDR", ":8000"),
		},
		LLM: LLMConfig{
			Model:   getEnv("OPENROUTER_MODEL", "google/gemini-2.0-flash-001"),
			APIKey:  getEnv("OPENROUTER_API_KEY", ""),
			BaseURL: getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
			Referer: getEnv("OPENROUTER_REFERER", "https://yourapplication.com/"),
			Timeout: getEnvAsDuration("LLM_TIMEOUT", 120*time.Second),
		},
		Download: DownloadConfig{
			Timeout: getEnvAsDuration("DOWNLOAD_TIMEOUT", 30*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration.
// The API key is not required at startup: /analyze requests may carry their own key.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return NewAppError("CONFIG_ERROR", "SERVER_ADDR is required", ErrInvalidInput)
	}
	if c.LLM.Model == "" {
		return NewAppError("CONFIG_ERROR", "OPENROUTER_MODEL is required", ErrInvalidInput)
	}
	if c.LLM.BaseURL == "" {
		return NewAppError("CONFIG_ERROR", "OPENROUTER_BASE_URL is required", ErrInvalidInput)
	}
	return nil
}
