package database

import (
	"context"
	"testing"
)

func TestParseMigrationFilename(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		wantVersion string
		wantUp      bool
		wantOK      bool
	}{
		{
			name:        "valid up migration",
			filename:    "20260815_090000_initial_schema.up.sql",
			wantVersion: "20260815_090000",
			wantUp:      true,
			wantOK:      true,
		},
		{
			name:        "valid down migration",
			filename:    "20260815_090000_initial_schema.down.sql",
			wantVersion: "20260815_090000",
			wantUp:      false,
			wantOK:      true,
		},
		{
			name:     "not sql",
			filename: "readme.md",
			wantOK:   false,
		},
		{
			name:     "missing direction suffix",
			filename: "20260815_090000_initial_schema.sql",
			wantOK:   false,
		},
		{
			name:     "too few parts",
			filename: "schema.up.sql",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version, isUp, ok := parseMigrationFilename(tt.filename)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if version != tt.wantVersion {
				t.Errorf("version = %q, want %q", version, tt.wantVersion)
			}
			if isUp != tt.wantUp {
				t.Errorf("isUp = %v, want %v", isUp, tt.wantUp)
			}
		})
	}
}

func TestExtractMigrationName(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"20260815_090000_initial_schema.up.sql", "initial_schema"},
		{"20260815_090000_initial_schema.down.sql", "initial_schema"},
		{"short.sql", "short"},
	}

	for _, tt := range tests {
		if got := extractMigrationName(tt.filename); got != tt.want {
			t.Errorf("extractMigrationName(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

// TestMigrate_Applies verifies migrations run and are recorded exactly once.
func TestMigrate_Applies(t *testing.T) {
	db := openTestDB(t)
	defer db.Close() //nolint:errcheck // Test cleanup

	ctx := context.Background()

	// Apply a migration directly through the internal helpers so the test
	// does not depend on the embedded production schema.
	m := Migration{
		Version: "20260101_000000",
		Name:    "test_table",
		UpSQL:   `CREATE TABLE migrate_test (id INTEGER PRIMARY KEY)`,
		DownSQL: `DROP TABLE migrate_test`,
	}

	if err := db.createMigrationsTable(ctx); err != nil {
		t.Fatalf("createMigrationsTable: %v", err)
	}
	if err := db.applyMigration(ctx, m); err != nil {
		t.Fatalf("applyMigration: %v", err)
	}

	// Table should exist
	if _, err := db.ExecContext(ctx, `INSERT INTO migrate_test (id) VALUES (1)`); err != nil {
		t.Errorf("migrated table not usable: %v", err)
	}

	// Record should be present
	applied, err := db.getAppliedMigrations(ctx)
	if err != nil {
		t.Fatalf("getAppliedMigrations: %v", err)
	}
	if len(applied) != 1 {
		t.Fatalf("expected 1 applied migration, got %d", len(applied))
	}
	if applied[0].Version != m.Version {
		t.Errorf("applied version = %q, want %q", applied[0].Version, m.Version)
	}

	// Re-applying the same version must fail the uniqueness constraint,
	// which is what Migrate relies on to stay idempotent.
	if err := db.applyMigration(ctx, m); err == nil {
		t.Error("expected error re-applying same migration version")
	}
}

// TestMigrate_NoEmbeddedFS verifies Migrate is a no-op without registered migrations.
func TestMigrate_NoEmbeddedFS(t *testing.T) {
	db := openTestDB(t)
	defer db.Close() //nolint:errcheck // Test cleanup

	if err := db.Migrate(context.Background()); err != nil {
		t.Errorf("Migrate() with no embedded FS: %v", err)
	}
}
