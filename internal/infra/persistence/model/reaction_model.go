package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationReactionModel mirrors the 'location_reactions' table. Append-only.
type LocationReactionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	FromUserID uuid.UUID `gorm:"type:uuid;not null;index"`
	ToUserID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Emoji      string    `gorm:"type:varchar(20);not null"`
	Message    string    `gorm:"type:varchar(200)"`
	CreatedAt  time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (LocationReactionModel) TableName() string {
	return "location_reactions"
}
