package database

import (
	"fmt"

	"go-doctor-directory/config"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresConnection(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// The directory is read once at startup, a small pool is enough
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetMaxOpenConns(5)

	if cfg.AutoMigrate {
		if err := RunMigrations(db); err != nil {
			sqlDB.Close()
			return nil, err
		}
	}

	logrus.Info("Successfully connected to PostgreSQL database")

	return db, nil
}
