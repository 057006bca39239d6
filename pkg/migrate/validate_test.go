package migrate

import (
	"os"
	"path/filepath"
	"testing"
)

func writeMigration(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write migration: %v", err)
	}
}

const validBody = `-- +goose Up
CREATE TABLE demo (id TEXT PRIMARY KEY);

-- +goose Down
DROP TABLE demo;
`

func TestValidateDirAcceptsWellFormedMigrations(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "20260115093000_create_orders.sql", validBody)
	writeMigration(t, dir, "20260115093500_create_order_items.sql", validBody)

	if err := ValidateDir(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateDirRejectsBadFilename(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "create_orders.sql", validBody)

	if err := ValidateDir(dir); err == nil {
		t.Fatalf("expected filename error")
	}
}

func TestValidateDirRejectsDuplicateVersion(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "20260115093000_create_orders.sql", validBody)
	writeMigration(t, dir, "20260115093000_create_other.sql", validBody)

	if err := ValidateDir(dir); err == nil {
		t.Fatalf("expected duplicate version error")
	}
}

func TestValidateDirRequiresGooseMarkers(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "20260115093000_create_orders.sql", "CREATE TABLE demo (id TEXT);")

	if err := ValidateDir(dir); err == nil {
		t.Fatalf("expected missing marker error")
	}
}

func TestValidateDirShipsValidMigrations(t *testing.T) {
	// The migrations bundled with the repo must always pass their own check.
	if err := ValidateDir("migrations"); err != nil {
		t.Fatalf("bundled migrations invalid: %v", err)
	}
}
