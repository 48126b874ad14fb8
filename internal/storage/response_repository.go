package storage

import (
	"strings"

	"gorm.io/gorm"

	"tg-supportbot/internal/models"
)

// ResponseRepository handles database operations for AutoResponse
type ResponseRepository struct {
	db *gorm.DB
}

// NewResponseRepository creates a new ResponseRepository
func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{db: db}
}

// MigrateTable ensures the AutoResponse table exists
func (r *ResponseRepository) MigrateTable() error {
	return r.db.AutoMigrate(&models.AutoResponse{})
}

// Add stores a trigger/response pair; the trigger is lowercased.
func (r *ResponseRepository) Add(trigger, response string) error {
	record := &models.AutoResponse{Trigger: strings.ToLower(trigger), Response: response}
	return r.db.Create(record).Error
}

// List returns all auto-responses in storage order.
func (r *ResponseRepository) List() ([]models.AutoResponse, error) {
	var records []models.AutoResponse
	result := r.db.Order("id").Find(&records)
	return records, result.Error
}

// Count returns the number of stored auto-responses
func (r *ResponseRepository) Count() (int64, error) {
	var count int64
	result := r.db.Model(&models.AutoResponse{}).Count(&count)
	return count, result.Error
}
