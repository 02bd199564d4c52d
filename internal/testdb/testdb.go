// Package testdb provides a shared test database helper for fast,
// realistic testing against an in-memory SQLite database.
package testdb

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/genomelab/genedex/infrastructure/persistence"
	"github.com/genomelab/genedex/internal/database"
)

// counter gives each in-memory database a unique shared-cache name so
// tests never see each other's data.
var counter atomic.Int64

func open(t *testing.T) database.Database {
	t.Helper()
	ctx := context.Background()
	url := fmt.Sprintf("sqlite://file:genedex-test-%d?mode=memory&cache=shared", counter.Add(1))
	db, err := database.NewDatabase(ctx, url)
	if err != nil {
		t.Fatalf("testdb: open database: %v", err)
	}
	// A single connection keeps the shared-cache database alive for the
	// whole test.
	if err := db.ConfigurePool(1, 1, 0); err != nil {
		_ = db.Close()
		t.Fatalf("testdb: configure pool: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// New creates an in-memory SQLite database with all migrations applied and
// the species catalog seeded. The database is automatically closed when the
// test finishes.
func New(t *testing.T) database.Database {
	t.Helper()
	ctx := context.Background()
	db := open(t)
	if err := persistence.AutoMigrate(db); err != nil {
		t.Fatalf("testdb.New: auto migrate: %v", err)
	}
	if _, err := persistence.SeedSpecies(ctx, db); err != nil {
		t.Fatalf("testdb.New: seed species: %v", err)
	}
	return db
}

// NewPlain creates an in-memory SQLite database without running migrations.
// Useful for tests that manage their own schema.
func NewPlain(t *testing.T) database.Database {
	t.Helper()
	return open(t)
}

// WithSchema creates an in-memory SQLite database and executes the given
// SQL statements to set up a custom schema.
func WithSchema(t *testing.T, statements ...string) database.Database {
	t.Helper()
	ctx := context.Background()
	db := NewPlain(t)
	for _, stmt := range statements {
		if err := db.Session(ctx).Exec(stmt).Error; err != nil {
			t.Fatalf("testdb.WithSchema: %v\nSQL: %s", err, stmt)
		}
	}
	return db
}
