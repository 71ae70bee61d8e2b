package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/cramit/internal/catalog"
	"github.com/alexanderramin/cramit/internal/db"
	"github.com/alexanderramin/cramit/internal/repository"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewSeededDB returns a test database holding cat, or the embedded default
// catalog when cat is nil.
func NewSeededDB(t *testing.T, cat *catalog.Catalog) *sql.DB {
	t.Helper()
	if cat == nil {
		var err error
		cat, err = catalog.Default()
		if err != nil {
			t.Fatalf("loading default catalog: %v", err)
		}
	}
	database := NewTestDB(t)
	if err := repository.SeedCatalog(context.Background(), db.NewSQLiteUnitOfWork(database), cat); err != nil {
		t.Fatalf("seeding catalog: %v", err)
	}
	return database
}
