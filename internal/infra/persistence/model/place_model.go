package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoritePlaceModel mirrors the 'favorite_places' table.
type FavoritePlaceModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Type         string    `gorm:"type:varchar(20);not null"`
	Latitude     float64   `gorm:"type:double precision;not null"`
	Longitude    float64   `gorm:"type:double precision;not null"`
	RadiusMeters float64   `gorm:"type:double precision;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoritePlaceModel) TableName() string {
	return "favorite_places"
}
