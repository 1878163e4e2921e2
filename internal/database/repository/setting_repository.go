package repository

import (
	"github.com/kizunavet/clinic-services-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// List retrieves all settings
func (r *SettingRepository) List() ([]*models.Setting, error) {
	var settings []*models.Setting
	err := r.db.Find(&settings).Error
	return settings, err
}

// Get retrieves a setting value by key
func (r *SettingRepository) Get(key string) (string, error) {
	var setting models.Setting
	err := r.db.First(&setting, "key = ?", key).Error
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

// Upsert writes a setting, overwriting any existing value for the key
func (r *SettingRepository) Upsert(key, value string) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&models.Setting{Key: key, Value: value}).Error
}
