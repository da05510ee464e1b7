// Package testutil provides test helpers for setting up in-memory databases,
// creating fixtures, and making assertions.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"monevo/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// allModels is the list of all GORM models to auto-migrate in tests.
var allModels = []interface{}{
	&models.Budget{},
	&models.Movement{},
}

// SetupTestDB creates an isolated in-memory SQLite database with all models
// migrated. Each call gets its own named database so parallel tests do not
// share state; cache=shared keeps every pooled connection on the same
// database. TranslateError is on, matching the production configuration, so
// unique-index violations surface as gorm.ErrDuplicatedKey.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", nextID())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// TeardownTestDB closes the underlying database connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}
