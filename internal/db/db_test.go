package db

import (
	"context"
	"testing"
)

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	// Verify tables exist by counting each one.
	tables := []string{
		"contents", "actualites", "evenements", "pages",
		"manuscripts", "digital_library_documents",
		"virtual_exhibitions", "cbn_documents",
	}

	for _, table := range tables {
		var count int
		err := d.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	// Running migrate again should not fail.
	if err := d.migrate(); err != nil {
		t.Fatalf("second migrate() error: %v", err)
	}
}

func TestSeedIdempotent(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	ctx := context.Background()
	if err := d.Seed(ctx); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	var first int
	if err := d.QueryRow("SELECT COUNT(*) FROM actualites").Scan(&first); err != nil {
		t.Fatalf("counting actualites: %v", err)
	}
	if first == 0 {
		t.Fatal("expected seeded actualites rows")
	}

	// Seeding again must not duplicate rows.
	if err := d.Seed(ctx); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}
	var second int
	if err := d.QueryRow("SELECT COUNT(*) FROM actualites").Scan(&second); err != nil {
		t.Fatalf("counting actualites: %v", err)
	}
	if first != second {
		t.Errorf("expected seed to be idempotent, got %d then %d rows", first, second)
	}
}
