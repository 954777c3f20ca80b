package model

import (
	"time"

	"github.com/google/uuid"
)

// CurrentLocationModel mirrors the 'current_locations' table: exactly one
// live row per user, overwritten in place on every submission.
type CurrentLocationModel struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Latitude      float64   `gorm:"type:double precision;not null"`
	Longitude     float64   `gorm:"type:double precision;not null"`
	Accuracy      *float64  `gorm:"type:double precision"`
	BatteryLevel  *int
	IsCharging    bool
	Speed         *float64  `gorm:"type:double precision"`
	Motion        string    `gorm:"type:varchar(20);not null"`
	LocationSince time.Time `gorm:"not null"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CurrentLocationModel) TableName() string {
	return "current_locations"
}

// LocationHistoryModel mirrors the 'location_history' table. Rows are
// append-only; the bigserial ID gives a stable insertion order.
type LocationHistoryModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_location_history_user_recorded,priority:1"`
	Latitude   float64   `gorm:"type:double precision;not null"`
	Longitude  float64   `gorm:"type:double precision;not null"`
	Accuracy   *float64  `gorm:"type:double precision"`
	RecordedAt time.Time `gorm:"not null;index:idx_location_history_user_recorded,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (LocationHistoryModel) TableName() string {
	return "location_history"
}
