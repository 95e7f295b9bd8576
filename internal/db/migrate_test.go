package db_test

import (
	"context"
	"testing"

	dbfs "github.com/user/moodlog/db"
	dbpkg "github.com/user/moodlog/internal/db"
)

func TestMigrate_AppliesAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	d, err := dbpkg.New(ctx, "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer d.Close()

	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("Migrate returned error: %v", err)
	}

	// the domain tables exist after migration
	for _, table := range []string{"users", "records", "chat_messages"} {
		var name string
		row := d.QueryRow(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name = ?`, table)
		if err := row.Scan(&name); err != nil {
			t.Fatalf("table %s missing after migrate: %v", table, err)
		}
	}

	// running again must be a no-op
	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("second Migrate returned error: %v", err)
	}

	var count int
	if err := d.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations`).Scan(&count); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 recorded migration got %d", count)
	}
}
