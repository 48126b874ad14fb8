package models

import "time"

// WarningReasonBannedWord is the reason recorded for banned-word violations.
const WarningReasonBannedWord = "Used banned word"

// Warning is one recorded violation. All of a user's warnings are deleted
// together once mute escalation fires.
type Warning struct {
	ID        uint  `gorm:"primaryKey;autoIncrement"`
	UserID    int64 `gorm:"index;not null"`
	Reason    string
	CreatedAt time.Time
}
