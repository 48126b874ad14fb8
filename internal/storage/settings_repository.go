package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"tg-supportbot/internal/models"
)

// SettingsRepository handles database operations for the GroupSettings
// singleton row.
type SettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// MigrateTable ensures the GroupSettings table exists
func (r *SettingsRepository) MigrateTable() error {
	return r.db.AutoMigrate(&models.GroupSettings{})
}

// Get returns the singleton settings row, or the defaults when no row
// exists yet. The defaults are not persisted by a read.
func (r *SettingsRepository) Get() (models.GroupSettings, error) {
	var settings models.GroupSettings
	result := r.db.Order("id").First(&settings)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return models.DefaultGroupSettings(), nil
		}
		return models.DefaultGroupSettings(), result.Error
	}
	return settings, nil
}

// Save upserts the singleton row: the first write creates it, later
// writes update it in place. Last writer wins.
func (r *SettingsRepository) Save(settings models.GroupSettings) error {
	var existing models.GroupSettings
	result := r.db.Order("id").First(&existing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			settings.ID = 0
			settings.UpdatedAt = time.Now()
			return r.db.Create(&settings).Error
		}
		return result.Error
	}

	settings.ID = existing.ID
	settings.UpdatedAt = time.Now()
	return r.db.Save(&settings).Error
}
