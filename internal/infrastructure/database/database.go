package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/meron6/authsvc/internal/infrastructure/repositories"
)

// Open creates a new database connection. TranslateError is on so driver
// unique-violation errors surface as gorm.ErrDuplicatedKey, which the
// user repository maps to the registration conflict.
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}
	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate creates the users and user_sessions tables. Both must
// survive process restarts independent of the engine's lifetime.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&repositories.DBUser{}); err != nil {
		return fmt.Errorf("failed to migrate users table: %w", err)
	}
	if err := db.AutoMigrate(&repositories.DBUserSession{}); err != nil {
		return fmt.Errorf("failed to migrate user_sessions table: %w", err)
	}
	return nil
}
