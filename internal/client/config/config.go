// Package config handles configuration for the Pennywise CLI client,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"os"
	"path/filepath"
)

// Config holds runtime settings for the Pennywise CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend HTTP API.
//   - StateDir: directory for locally persisted client state (access token).
type Config struct {
	ServerEndpointAddr string
	StateDir           string
}

// LoadDefaults populates c with sensible defaults. The state directory
// defaults to ~/.pennywise, falling back to the working directory when the
// home directory cannot be determined.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:5050"

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	c.StateDir = filepath.Join(home, ".pennywise")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
