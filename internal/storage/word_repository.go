package storage

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tg-supportbot/internal/models"
)

// WordRepository handles database operations for BannedWord
type WordRepository struct {
	db *gorm.DB
}

// NewWordRepository creates a new WordRepository
func NewWordRepository(db *gorm.DB) *WordRepository {
	return &WordRepository{db: db}
}

// MigrateTable ensures the BannedWord table exists
func (r *WordRepository) MigrateTable() error {
	return r.db.AutoMigrate(&models.BannedWord{})
}

// Add stores a word, lowercased. Adding a word twice is not an error.
func (r *WordRepository) Add(word string) error {
	record := &models.BannedWord{Word: strings.ToLower(word)}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(record).Error
}

// Remove deletes a word, matching the stored lowercase form.
func (r *WordRepository) Remove(word string) error {
	return r.db.Where("word = ?", strings.ToLower(word)).Delete(&models.BannedWord{}).Error
}

// List returns all banned words in storage order.
func (r *WordRepository) List() ([]string, error) {
	var records []models.BannedWord
	result := r.db.Order("id").Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	words := make([]string, 0, len(records))
	for _, record := range records {
		words = append(words, record.Word)
	}
	return words, nil
}
