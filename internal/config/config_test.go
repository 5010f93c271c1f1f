package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8090 {
		t.Errorf("expected default port 8090, got %d", cfg.Port)
	}
	if cfg.DataDir != "data" {
		t.Errorf("expected default data_dir %q, got %q", "data", cfg.DataDir)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("expected open CORS by default, got %v", cfg.AllowedOrigins)
	}
}

func TestLoadDerivesPathsFromDataDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.DatabasePath != filepath.Join("data", "portal.db") {
		t.Errorf("expected derived database_path, got %q", cfg.DatabasePath)
	}
	if cfg.IndexDir != filepath.Join("data", "index") {
		t.Errorf("expected derived index_dir, got %q", cfg.IndexDir)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portal-search.yml")

	original := DefaultConfig()
	original.Port = 9000
	original.DatabasePath = "/srv/portal/portal.db"
	original.IndexDir = "/srv/portal/index"
	original.AllowedOrigins = []string{"https://bnrm.ma", "https://portail.bnrm.ma"}
	original.ReindexWorkers = 4

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.DatabasePath != original.DatabasePath {
		t.Errorf("database_path: got %q, want %q", loaded.DatabasePath, original.DatabasePath)
	}
	if loaded.IndexDir != original.IndexDir {
		t.Errorf("index_dir: got %q, want %q", loaded.IndexDir, original.IndexDir)
	}
	if loaded.ReindexWorkers != original.ReindexWorkers {
		t.Errorf("reindex_workers: got %d, want %d", loaded.ReindexWorkers, original.ReindexWorkers)
	}
	if len(loaded.AllowedOrigins) != len(original.AllowedOrigins) {
		t.Fatalf("allowed_origins length: got %d, want %d", len(loaded.AllowedOrigins), len(original.AllowedOrigins))
	}
	for i, v := range loaded.AllowedOrigins {
		if v != original.AllowedOrigins[i] {
			t.Errorf("allowed_origins[%d]: got %q, want %q", i, v, original.AllowedOrigins[i])
		}
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portal-search.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	os.Setenv("PORTALSEARCH_PORT", "9999")
	os.Setenv("PORTALSEARCH_INDEX_DIR", "/tmp/portal-index")
	defer os.Unsetenv("PORTALSEARCH_PORT")
	defer os.Unsetenv("PORTALSEARCH_INDEX_DIR")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Port != 9999 {
		t.Errorf("env override failed: got %d, want 9999", loaded.Port)
	}
	if loaded.IndexDir != "/tmp/portal-index" {
		t.Errorf("env override failed: got %q", loaded.IndexDir)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.applyDerived()
	if err := cfg.Validate(); err != nil {
		t.Errorf("derived default config should be valid, got: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port zero", func(c *Config) { c.Port = 0 }},
		{"port out of range", func(c *Config) { c.Port = 70000 }},
		{"empty database_path", func(c *Config) { c.DatabasePath = "" }},
		{"empty index_dir", func(c *Config) { c.IndexDir = "" }},
		{"no origins", func(c *Config) { c.AllowedOrigins = nil }},
		{"negative workers", func(c *Config) { c.ReindexWorkers = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.applyDerived()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
