package storage

import (
	"gorm.io/gorm"

	"tg-supportbot/internal/models"
)

// WarningRepository handles database operations for Warning
type WarningRepository struct {
	db *gorm.DB
}

// NewWarningRepository creates a new WarningRepository
func NewWarningRepository(db *gorm.DB) *WarningRepository {
	return &WarningRepository{db: db}
}

// MigrateTable ensures the Warning table exists
func (r *WarningRepository) MigrateTable() error {
	return r.db.AutoMigrate(&models.Warning{})
}

// Add records one warning for the user
func (r *WarningRepository) Add(userID int64, reason string) error {
	return r.db.Create(&models.Warning{UserID: userID, Reason: reason}).Error
}

// ListByUser returns all warnings recorded for the user
func (r *WarningRepository) ListByUser(userID int64) ([]models.Warning, error) {
	var warnings []models.Warning
	result := r.db.Where("user_id = ?", userID).Order("id").Find(&warnings)
	return warnings, result.Error
}

// ClearByUser deletes all warnings for the user in one statement
func (r *WarningRepository) ClearByUser(userID int64) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Warning{}).Error
}
