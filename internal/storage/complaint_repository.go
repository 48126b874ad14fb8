package storage

import (
	"gorm.io/gorm"

	"tg-supportbot/internal/models"
)

// ComplaintStats summarizes complaints by status.
type ComplaintStats struct {
	Total    int64
	Pending  int64
	Resolved int64
}

// ComplaintRepository handles database operations for Complaint
type ComplaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new ComplaintRepository
func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// MigrateTable ensures the Complaint table exists
func (r *ComplaintRepository) MigrateTable() error {
	return r.db.AutoMigrate(&models.Complaint{})
}

// Create inserts a new complaint; the assigned id is written back into the model.
func (r *ComplaintRepository) Create(complaint *models.Complaint) error {
	return r.db.Create(complaint).Error
}

// Stats counts complaints grouped by status
func (r *ComplaintRepository) Stats() (ComplaintStats, error) {
	var stats ComplaintStats
	if err := r.db.Model(&models.Complaint{}).Count(&stats.Total).Error; err != nil {
		return stats, err
	}
	if err := r.db.Model(&models.Complaint{}).Where("status = ?", models.ComplaintPending).Count(&stats.Pending).Error; err != nil {
		return stats, err
	}
	if err := r.db.Model(&models.Complaint{}).Where("status = ?", models.ComplaintResolved).Count(&stats.Resolved).Error; err != nil {
		return stats, err
	}
	return stats, nil
}
