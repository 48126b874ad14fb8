package models

import "time"

// Default group settings, used when no row exists yet.
const (
	DefaultMaxWarnings  = 3
	DefaultMuteDuration = 60
)

// GroupSettings is a logical singleton: exactly one row at any time,
// read-modify-written via upsert.
type GroupSettings struct {
	ID uint `gorm:"primaryKey;autoIncrement"`
	// IsClosed blocks non-admin messages in the support group.
	IsClosed bool `gorm:"default:false"`
	// MaxWarnings is the violation count at which a mute fires.
	MaxWarnings int `gorm:"default:3"`
	// MuteDuration is the mute length in minutes.
	MuteDuration int `gorm:"default:60"`
	// AutoDeleteMinutes schedules bot messages for deletion; 0 disables.
	AutoDeleteMinutes int `gorm:"default:0"`
	UpdatedAt         time.Time
}

// DefaultGroupSettings returns the settings used before any admin has
// written a row.
func DefaultGroupSettings() GroupSettings {
	return GroupSettings{
		IsClosed:          false,
		MaxWarnings:       DefaultMaxWarnings,
		MuteDuration:      DefaultMuteDuration,
		AutoDeleteMinutes: 0,
	}
}
