package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"tg-supportbot/internal/models"
)

// UserRepository handles database operations for User
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// MigrateTable ensures the User table exists
func (r *UserRepository) MigrateTable() error {
	return r.db.AutoMigrate(&models.User{})
}

// Upsert creates the user keyed by Telegram user id, or refreshes the
// profile fields of an existing row.
func (r *UserRepository) Upsert(user *models.User) error {
	var existing models.User
	result := r.db.Where("user_id = ?", user.UserID).First(&existing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return r.db.Create(user).Error
		}
		return result.Error
	}

	existing.Username = user.Username
	existing.FirstName = user.FirstName
	existing.LastName = user.LastName
	existing.UpdatedAt = time.Now()
	return r.db.Save(&existing).Error
}

// Count returns the number of known users
func (r *UserRepository) Count() (int64, error) {
	var count int64
	result := r.db.Model(&models.User{}).Count(&count)
	return count, result.Error
}
