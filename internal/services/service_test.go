package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/crm/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// The in-memory database exists per connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	for _, model := range []interface{}{&models.Customer{}, &models.Product{}, &models.Order{}} {
		require.NoError(t, db.AutoMigrate(model))
	}
	return db
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
