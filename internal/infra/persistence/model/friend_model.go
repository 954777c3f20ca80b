package model

import (
	"time"

	"github.com/google/uuid"
)

// FriendRequestModel mirrors the 'friend_requests' table. The partial
// unique index keeps at most one pending request per user pair.
type FriendRequestModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	FromUserID uuid.UUID `gorm:"type:uuid;not null;index"`
	ToUserID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     string    `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FriendRequestModel) TableName() string {
	return "friend_requests"
}

// ShareRuleModel mirrors the 'share_rules' table: one directed visibility
// grant per (owner, viewer) pair.
type ShareRuleModel struct {
	OwnerID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ViewerID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Level     string    `gorm:"type:varchar(20);not null"`
	ExpiresAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShareRuleModel) TableName() string {
	return "share_rules"
}
