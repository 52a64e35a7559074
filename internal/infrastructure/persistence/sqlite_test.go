package persistence

import (
	"testing"

	"github.com/autenticco/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with every table migrated
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// every pooled connection to :memory: would see its own empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.CarModel{},
		&models.PlatformModel{},
		&models.PublicationModel{},
		&models.ExpenseModel{},
		&models.SaleModel{},
		&models.LeadModel{},
		&models.TestimonialModel{},
		&models.UserModel{},
		&models.RoleModel{},
		&models.RolePermissionModel{},
	)
	require.NoError(t, err)

	return db
}
