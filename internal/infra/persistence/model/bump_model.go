package model

import (
	"time"

	"github.com/google/uuid"
)

// BumpEventModel mirrors the 'bump_events' table. Append-only.
type BumpEventModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	InitiatorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CounterpartID  uuid.UUID `gorm:"type:uuid;not null;index"`
	DistanceMeters float64   `gorm:"type:double precision;not null"`
	Latitude       float64   `gorm:"type:double precision;not null"`
	Longitude      float64   `gorm:"type:double precision;not null"`
	CreatedAt      time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (BumpEventModel) TableName() string {
	return "bump_events"
}
