// Package databasetest opens throwaway in-memory SQLite stores for tests.
package databasetest

import (
	"catering/cmd/internal/config"
	"catering/cmd/internal/domain/database"
	"catering/cmd/internal/domain/entity"
	"fmt"
	"strings"
	"testing"

	"gorm.io/gorm"
)

var nameReplacer = strings.NewReplacer("/", "_", " ", "_", "#", "_")

// Open returns a migrated store private to t and closes it on cleanup.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   fmt.Sprintf("file:%s?mode=memory&cache=shared", nameReplacer.Replace(t.Name())),
	}

	db, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}

// SeedStaff inserts staff rows directly; the API has no way to create them.
func SeedStaff(t *testing.T, db *gorm.DB, staff ...*entity.StaffMember) {
	t.Helper()
	for _, member := range staff {
		if err := db.Create(member).Error; err != nil {
			t.Fatalf("failed to seed staff member %q: %v", member.Name, err)
		}
	}
}

func CountRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}
