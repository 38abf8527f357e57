// Package testdb opens throwaway migrated databases for tests.
package testdb

import (
	"testing"

	"portfolio.site/configs/configsdatabase"
	"portfolio.site/database"

	"gorm.io/gorm"
)

// Open returns a private in-memory sqlite database with every table migrated.
// The pool is pinned to one connection because each sqlite memory connection is
// its own database.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := configsdatabase.Open(configsdatabase.Config{
		Driver:       configsdatabase.DriverSQLite,
		DSN:          "file::memory:?_foreign_keys=on",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.RunMigrationsInOrder(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
