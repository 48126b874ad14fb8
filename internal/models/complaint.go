package models

import "time"

// Complaint statuses. Nothing in the bot transitions a complaint to
// resolved; that is done out of band for now.
const (
	ComplaintPending  = "pending"
	ComplaintResolved = "resolved"
)

// Complaint is one free-text support request from a user in a private chat.
type Complaint struct {
	ID        uint  `gorm:"primaryKey;autoIncrement"`
	UserID    int64 `gorm:"index;not null"`
	Username  string
	Message   string `gorm:"type:text"`
	Status    string `gorm:"index;default:'pending'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
