package testdb

import (
	"testing"

	"github.com/arashsoltani/zarshop/app/models/migrations"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a migrated in-memory database for tests. A single connection
// keeps the :memory: database alive for the whole test.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open in-memory database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := migrations.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
