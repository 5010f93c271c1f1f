package config

import "path/filepath"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:           8090,
		DataDir:        "data",
		AllowedOrigins: []string{"*"},
		ReindexWorkers: 0,
	}
}

// applyDerived fills the path fields that default to locations under
// DataDir when the file and environment left them empty.
func (c *Config) applyDerived() {
	if c.DatabasePath == "" && c.DataDir != "" {
		c.DatabasePath = filepath.Join(c.DataDir, "portal.db")
	}
	if c.IndexDir == "" && c.DataDir != "" {
		c.IndexDir = filepath.Join(c.DataDir, "index")
	}
}
