// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPort is used when no port is configured.
const DefaultPort = 8080

// Config represents the service configuration that can be loaded from a
// JSON file. Every field falls back to an environment variable, so a
// config file is optional.
type Config struct {
	// Credentials
	GeminiAPIKey     string `json:"gemini_api_key,omitempty"`      // Gemini API key (mandatory)
	AdzunaAppID      string `json:"adzuna_app_id,omitempty"`       // Adzuna application ID
	AdzunaAppKey     string `json:"adzuna_app_key,omitempty"`      // Adzuna application key
	GoogleMapsAPIKey string `json:"google_maps_api_key,omitempty"` // Distance Matrix API key

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port
}

// LoadConfig loads configuration from a JSON file (optional) and fills
// unset fields from environment variables.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}
	cfg.applyEnv()
	return &cfg, nil
}

// FromEnv builds a configuration from environment variables only.
func FromEnv() *Config {
	var cfg Config
	cfg.applyEnv()
	return &cfg
}

func (c *Config) applyEnv() {
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.AdzunaAppID == "" {
		c.AdzunaAppID = os.Getenv("ADZUNA_APP_ID")
	}
	if c.AdzunaAppKey == "" {
		c.AdzunaAppKey = os.Getenv("ADZUNA_APP_KEY")
	}
	if c.GoogleMapsAPIKey == "" {
		c.GoogleMapsAPIKey = os.Getenv("GOOGLE_MAPS_API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.Port == 0 {
		if port := os.Getenv("PORT"); port != "" {
			fmt.Sscanf(port, "%d", &c.Port)
		}
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
}

// Validate checks that the mandatory configuration is present. The
// Gemini key is the only hard requirement; adapters and the commute
// augmenter degrade to disabled without their credentials.
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("config error: gemini_api_key is required (set GEMINI_API_KEY)")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	return nil
}
