package helpers

import (
	"testing"

	"gorm.io/gorm"

	"github.com/andrescamacho/lazysim/internal/infrastructure/database"
)

// NewTestDB creates a migrated SQLite in-memory snapshot store for testing
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewTestConnection()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close(db)
	})

	return db
}

// Seed inserts backend rows the repositories only ever read
func Seed(t *testing.T, db *gorm.DB, rows ...interface{}) {
	t.Helper()

	for _, row := range rows {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("failed to seed %T: %v", row, err)
		}
	}
}
