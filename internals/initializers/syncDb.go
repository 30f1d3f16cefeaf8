package initializers

import (
	"auth-api/internals/models"

	"gorm.io/gorm"
)

// SyncDatabase migrates every model the application persists.
func SyncDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.BlacklistToken{},
	)
}
