package model

import (
	"time"

	"github.com/google/uuid"
)

// UserSettingsModel mirrors the 'user_settings' table. GhostUntil stays as
// written past expiry; readers compare it against the clock.
type UserSettingsModel struct {
	UserID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	GhostMode             bool      `gorm:"not null;default:false"`
	GhostUntil            *time.Time
	UpdateIntervalSeconds int `gorm:"not null"`
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserSettingsModel) TableName() string {
	return "user_settings"
}
