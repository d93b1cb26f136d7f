// Package rdbtest opens throwaway sqlite databases for tests.
package rdbtest

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"restaurants/internal/store"
	"restaurants/internal/store/rdb"
	"restaurants/pkg/storage"
)

// NewDB opens an in-memory sqlite database named after the test and migrates it
func NewDB(t testing.TB) *storage.DB {
	t.Helper()
	ctx := context.Background()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := storage.New(ctx, storage.Config{
		Driver:       storage.DriverSqlite,
		Name:         fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	if err = rdb.AutoMigrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// NewFactory is NewDB wrapped in the store factory
func NewFactory(t testing.TB) store.Factory {
	t.Helper()
	return rdb.NewFactory(NewDB(t))
}
