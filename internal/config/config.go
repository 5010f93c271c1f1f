package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PORTALSEARCH_*). A missing file is
// fine; an unreadable or invalid one is not.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// PORTALSEARCH_PORT -> port, PORTALSEARCH_INDEX_DIR -> index_dir.
	if err := k.Load(env.Provider("PORTALSEARCH_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "PORTALSEARCH_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.applyDerived()
	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values. The
// service refuses to start on a bad configuration instead of limping
// along with half-working search.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path is required")
	}
	if c.IndexDir == "" {
		return fmt.Errorf("index_dir is required")
	}
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("allowed_origins must not be empty")
	}
	if c.ReindexWorkers < 0 {
		return fmt.Errorf("reindex_workers must be non-negative")
	}
	return nil
}
