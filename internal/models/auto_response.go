package models

import "time"

// AutoResponse is a canned reply keyed by a trigger substring. Triggers are
// stored lowercase; the first matching trigger in storage order wins.
type AutoResponse struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Trigger   string `gorm:"not null"`
	Response  string `gorm:"type:text"`
	CreatedAt time.Time
}
