// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/moneyboard/backend/internal/integration/persistence/model"
)

// newTestDB opens a fresh in-memory database per test so cases cannot leak
// rows into each other.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.TransactionModel{},
		&model.RecurringTransactionModel{},
		&model.UserSettingsModel{},
		&model.EmailQueueModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}
