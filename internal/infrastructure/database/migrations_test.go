package database

import (
	"context"
	"testing"
)

func TestParseMigrationFilename(t *testing.T) {
	tests := []struct {
		name        string
		wantVersion string
		wantUp      bool
		wantOK      bool
	}{
		{"20260301_000001_initial_schema.up.sql", "20260301_000001", true, true},
		{"20260301_000001_initial_schema.down.sql", "20260301_000001", false, true},
		{"20260302_120000_add_index.up.sql", "20260302_120000", true, true},
		{"README.md", "", false, false},
		{"notes.sql", "", false, false},
		{"20260301.up.sql", "", false, false},
	}

	for _, tt := range tests {
		version, isUp, ok := parseMigrationFilename(tt.name)
		if ok != tt.wantOK {
			t.Errorf("parseMigrationFilename(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if version != tt.wantVersion {
			t.Errorf("parseMigrationFilename(%q) version = %q, want %q", tt.name, version, tt.wantVersion)
		}
		if isUp != tt.wantUp {
			t.Errorf("parseMigrationFilename(%q) isUp = %v, want %v", tt.name, isUp, tt.wantUp)
		}
	}
}

func TestExtractMigrationName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"20260301_000001_initial_schema.up.sql", "initial_schema"},
		{"20260301_000001_add_device_index.down.sql", "add_device_index"},
		{"odd.sql", "odd"},
	}

	for _, tt := range tests {
		if got := extractMigrationName(tt.in); got != tt.want {
			t.Errorf("extractMigrationName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMigrate_NoEmbeddedFS(t *testing.T) {
	db, err := Open(testConfig(t))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// With no embedded migrations registered, Migrate is a no-op beyond
	// creating the bookkeeping table.
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate() error: %v", err)
	}

	applied, err := db.getAppliedMigrations(context.Background())
	if err != nil {
		t.Fatalf("getAppliedMigrations() error: %v", err)
	}
	if len(applied) != 0 {
		t.Errorf("applied migrations = %d, want 0", len(applied))
	}
}

func TestApplyMigration_RecordsVersion(t *testing.T) {
	db, err := Open(testConfig(t))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	if err := db.createMigrationsTable(ctx); err != nil {
		t.Fatalf("createMigrationsTable() error: %v", err)
	}

	m := Migration{
		Version: "20260301_000001",
		Name:    "test_table",
		UpSQL:   "CREATE TABLE t (id INTEGER PRIMARY KEY)",
	}
	if err := db.applyMigration(ctx, m); err != nil {
		t.Fatalf("applyMigration() error: %v", err)
	}

	applied, err := db.getAppliedMigrations(ctx)
	if err != nil {
		t.Fatalf("getAppliedMigrations() error: %v", err)
	}
	if len(applied) != 1 || applied[0].Version != m.Version {
		t.Errorf("applied = %+v, want single record for %s", applied, m.Version)
	}

	// The migrated table is usable.
	if _, err := db.ExecContext(ctx, "INSERT INTO t (id) VALUES (1)"); err != nil {
		t.Errorf("inserting into migrated table: %v", err)
	}
}

func TestApplyMigration_RollsBackOnBadSQL(t *testing.T) {
	db, err := Open(testConfig(t))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	if err := db.createMigrationsTable(ctx); err != nil {
		t.Fatalf("createMigrationsTable() error: %v", err)
	}

	m := Migration{
		Version: "20260301_000002",
		Name:    "broken",
		UpSQL:   "THIS IS NOT SQL",
	}
	if err := db.applyMigration(ctx, m); err == nil {
		t.Fatal("applyMigration() = nil error for invalid SQL, want error")
	}

	applied, err := db.getAppliedMigrations(ctx)
	if err != nil {
		t.Fatalf("getAppliedMigrations() error: %v", err)
	}
	if len(applied) != 0 {
		t.Errorf("failed migration was recorded: %+v", applied)
	}
}
