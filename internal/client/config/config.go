// Package config handles configuration for the client component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the to-do CLI client.
//
// Fields:
//   - ServerAddr: base URL of the server (e.g., "http://localhost:8080").
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	ServerAddr     string
	RequestTimeout time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://localhost:8080"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
