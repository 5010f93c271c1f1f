package config

// Config is the top-level portal-search configuration, corresponding to
// portal-search.yml. Keys are kept flat so every one of them can be
// overridden with a single PORTALSEARCH_* environment variable.
type Config struct {
	// Port the HTTP interface listens on.
	Port int `yaml:"port" koanf:"port"`

	// DataDir is the base directory for everything the service owns on
	// disk. DatabasePath and IndexDir default to paths under it.
	DataDir string `yaml:"data_dir" koanf:"data_dir"`

	// DatabasePath points at the portal's SQLite content database.
	DatabasePath string `yaml:"database_path" koanf:"database_path"`

	// IndexDir holds the search collection.
	IndexDir string `yaml:"index_dir" koanf:"index_dir"`

	// AllowedOrigins configures CORS. The portal's public widgets are
	// served from several domains, so the default is every origin.
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`

	// ReindexWorkers bounds the extraction fan-out. Zero means one
	// worker per source.
	ReindexWorkers int `yaml:"reindex_workers" koanf:"reindex_workers"`
}
