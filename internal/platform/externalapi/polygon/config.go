// Package polygon provides a client for the Polygon market-data REST API.
package polygon

import (
	"os"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public API host.
	DefaultBaseURL = "https://api.polygon.io"
	// DefaultTimeout bounds a single upstream call; the upstream itself has no deadline.
	DefaultTimeout = 10 * time.Second
)

// Config holds configuration for the Polygon API client.
type Config struct {
	APIKey  string        // API key appended to every request
	BaseURL string        // Base URL for the API (e.g., "https://api.polygon.io")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Polygon configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		APIKey:  os.Getenv("POLYGON_API_KEY"),
		BaseURL: strings.TrimRight(os.Getenv("POLYGON_BASE_URL"), "/"),
		Timeout: DefaultTimeout,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if v := os.Getenv("POLYGON_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}
