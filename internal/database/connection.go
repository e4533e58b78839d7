// internal/database/connection.go
package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/config"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/models"
)

// Initialize opens the Postgres connection pool. TranslateError must
// stay on: the store layer relies on gorm.ErrDuplicatedKey and
// gorm.ErrRecordNotFound instead of driver-specific error codes.
func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		TranslateError: true,
	}
	if cfg.LogLevel == "silent" {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(postgres.Open(cfg.URL), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.Info("Database connection established successfully")
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	} else {
		logrus.Info("Database connection closed")
	}
}

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	// gen_random_uuid() needs pgcrypto on Postgres < 13.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		return fmt.Errorf("failed to create pgcrypto extension: %w", err)
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.Review{},
		&models.AdvertiseContent{},
		&models.AdvertiseOrder{},
		&models.Color{},
		&models.DeviceModel{},
		&models.Sim{},
		&models.Storage{},
		&models.Warranty{},
		&models.DeviceCondition{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	logrus.Info("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// Full-text search over offer titles.
		"CREATE INDEX IF NOT EXISTS idx_advertise_contents_title_search ON advertise_contents USING GIN (to_tsvector('english', title))",
		"CREATE INDEX IF NOT EXISTS idx_advertise_contents_offer_end_time ON advertise_contents(offer_end_time ASC)",
		"CREATE INDEX IF NOT EXISTS idx_advertise_contents_created_at ON advertise_contents(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_advertise_contents_active ON advertise_contents(offer_end_time, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_advertise_orders_status ON advertise_orders(status)",
		"CREATE INDEX IF NOT EXISTS idx_advertise_orders_created_at ON advertise_orders(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_advertise_orders_content_id ON advertise_orders(content_id)",
		"CREATE INDEX IF NOT EXISTS idx_reviews_product_id ON reviews(product_id)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			return err
		}
	}

	return nil
}
