package database

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kizunavet/clinic-services-backend/internal/models"
)

// InitDB initializes the database connection and performs migrations
func InitDB() (*gorm.DB, error) {
	// Get database connection parameters from environment variables
	host := getEnv("DB_HOST", "")
	port := getEnv("DB_PORT", "")
	user := getEnv("DB_USER", "")
	password := getEnv("DB_PASSWORD", "")
	dbname := getEnv("DB_NAME", "")
	sslmode := getEnv("DB_SSLMODE", "disable")

	// Validate required environment variables
	if host == "" || port == "" || user == "" || password == "" || dbname == "" {
		return nil, fmt.Errorf("missing required database environment variables. Please check your .env file")
	}

	// Create DSN string
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	// Configure GORM logger
	gormLogger := logger.New(
		logrus.New(),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Error,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	// Open database connection
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Auto migrate the schema
	err = db.AutoMigrate(
		&models.Pet{},
		&models.Campaign{},
		&models.Draft{},
		&models.Setting{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := seedDefaultSettings(db); err != nil {
		return nil, fmt.Errorf("failed to seed default settings: %w", err)
	}

	logrus.Info("Database schema checks complete")
	return db, nil
}

// seedDefaultSettings inserts the well-known settings keys when absent.
// Existing values are never overwritten.
func seedDefaultSettings(db *gorm.DB) error {
	defaults := []models.Setting{
		{Key: models.SettingClinicName, Value: "Kizuna Vet Center"},
		{Key: models.SettingBookingURL, Value: "https://book.vet/kizuna"},
		{Key: models.SettingKapsoAPIKey, Value: ""},
		{Key: models.SettingKapsoPhoneID, Value: ""},
		{Key: models.SettingTelegramToken, Value: ""},
		{Key: models.SettingAITone, Value: "friendly"},
	}

	for _, setting := range defaults {
		var count int64
		if err := db.Model(&models.Setting{}).Where("key = ?", setting.Key).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&setting).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
