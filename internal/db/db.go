package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB holding the portal's source-of-truth content tables.
// The search pipeline only ever reads from it; the CMS side owns writes.
type DB struct {
	*sql.DB
	path string
}

// Open creates or opens the portal database at the given path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	d := &DB{DB: sqlDB, path: path}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return d, nil
}

// OpenMemory creates an in-memory database (useful for testing).
func OpenMemory() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}

	d := &DB{DB: sqlDB, path: ":memory:"}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return d, nil
}

// migrate runs all schema migrations.
func (d *DB) migrate() error {
	_, err := d.Exec(schema)
	return err
}

// schema contains the source tables the extractors read from. Column
// shapes mirror what the portal's CMS maintains; bilingual sources carry
// French/Arabic column pairs.
const schema = `
CREATE TABLE IF NOT EXISTS contents (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    title_ar TEXT NOT NULL DEFAULT '',
    body TEXT NOT NULL DEFAULT '',
    body_ar TEXT NOT NULL DEFAULT '',
    excerpt TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT '',
    tags TEXT NOT NULL DEFAULT '',
    slug TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'draft',
    access_level TEXT NOT NULL DEFAULT 'public',
    is_featured INTEGER NOT NULL DEFAULT 0,
    view_count INTEGER NOT NULL DEFAULT 0,
    published_at DATETIME,
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    deleted_at DATETIME
);

CREATE INDEX IF NOT EXISTS idx_contents_status ON contents(status);

CREATE TABLE IF NOT EXISTS actualites (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    title_ar TEXT NOT NULL DEFAULT '',
    body TEXT NOT NULL DEFAULT '',
    body_ar TEXT NOT NULL DEFAULT '',
    excerpt TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT '',
    slug TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'draft',
    is_featured INTEGER NOT NULL DEFAULT 0,
    view_count INTEGER NOT NULL DEFAULT 0,
    published_at DATETIME,
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    deleted_at DATETIME
);

CREATE INDEX IF NOT EXISTS idx_actualites_status ON actualites(status);
CREATE INDEX IF NOT EXISTS idx_actualites_published ON actualites(published_at);

CREATE TABLE IF NOT EXISTS evenements (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    title_ar TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    description_ar TEXT NOT NULL DEFAULT '',
    location TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT '',
    slug TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'draft',
    starts_at DATETIME,
    ends_at DATETIME,
    published_at DATETIME,
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    deleted_at DATETIME
);

CREATE INDEX IF NOT EXISTS idx_evenements_status ON evenements(status);

CREATE TABLE IF NOT EXISTS pages (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    title_ar TEXT NOT NULL DEFAULT '',
    body_markdown TEXT NOT NULL DEFAULT '',
    body_markdown_ar TEXT NOT NULL DEFAULT '',
    slug TEXT NOT NULL DEFAULT '',
    is_published INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    updated_at DATETIME NOT NULL DEFAULT (datetime('now')),
    deleted_at DATETIME
);

CREATE TABLE IF NOT EXISTS manuscripts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    title_ar TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    author TEXT NOT NULL DEFAULT '',
    cote TEXT NOT NULL DEFAULT '',
    genre TEXT NOT NULL DEFAULT '',
    period TEXT NOT NULL DEFAULT '',
    year INTEGER NOT NULL DEFAULT 0,
    access_level TEXT NOT NULL DEFAULT 'restricted',
    status TEXT NOT NULL DEFAULT 'draft',
    digitized INTEGER NOT NULL DEFAULT 0,
    view_count INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    deleted_at DATETIME
);

CREATE INDEX IF NOT EXISTS idx_manuscripts_status ON manuscripts(status);

CREATE TABLE IF NOT EXISTS digital_library_documents (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    title_ar TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    author TEXT NOT NULL DEFAULT '',
    publisher TEXT NOT NULL DEFAULT '',
    collection TEXT NOT NULL DEFAULT '',
    year INTEGER NOT NULL DEFAULT 0,
    file_url TEXT NOT NULL DEFAULT '',
    access_level TEXT NOT NULL DEFAULT 'public',
    status TEXT NOT NULL DEFAULT 'draft',
    view_count INTEGER NOT NULL DEFAULT 0,
    published_at DATETIME,
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    deleted_at DATETIME
);

CREATE INDEX IF NOT EXISTS idx_digital_library_status ON digital_library_documents(status);

CREATE TABLE IF NOT EXISTS virtual_exhibitions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    title_ar TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    description_ar TEXT NOT NULL DEFAULT '',
    curator TEXT NOT NULL DEFAULT '',
    theme TEXT NOT NULL DEFAULT '',
    slug TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'draft',
    starts_at DATETIME,
    published_at DATETIME,
    view_count INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    deleted_at DATETIME
);

CREATE INDEX IF NOT EXISTS idx_virtual_exhibitions_status ON virtual_exhibitions(status);

CREATE TABLE IF NOT EXISTS cbn_documents (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    title_ar TEXT NOT NULL DEFAULT '',
    summary TEXT NOT NULL DEFAULT '',
    author TEXT NOT NULL DEFAULT '',
    publisher TEXT NOT NULL DEFAULT '',
    genre TEXT NOT NULL DEFAULT '',
    isbn TEXT NOT NULL DEFAULT '',
    cote TEXT NOT NULL DEFAULT '',
    year INTEGER NOT NULL DEFAULT 0,
    access_level TEXT NOT NULL DEFAULT 'public',
    status TEXT NOT NULL DEFAULT 'available',
    view_count INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    deleted_at DATETIME
);

CREATE INDEX IF NOT EXISTS idx_cbn_documents_status ON cbn_documents(status);
CREATE INDEX IF NOT EXISTS idx_cbn_documents_author ON cbn_documents(author);
`
