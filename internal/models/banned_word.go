package models

import "time"

// BannedWord is stored lowercase and matched as a case-insensitive
// substring against group messages.
type BannedWord struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Word      string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}
