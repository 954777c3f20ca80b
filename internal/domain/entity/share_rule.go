// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShareLevel is the detail level a viewer is granted over an owner's location.
type ShareLevel string

const (
	// ShareLevelCurrent grants access to the owner's current location only.
	ShareLevelCurrent ShareLevel = "current"
	// ShareLevelHistory grants access to current location plus history.
	ShareLevelHistory ShareLevel = "history"
	// ShareLevelNone revokes visibility while keeping the rule row around.
	ShareLevelNone ShareLevel = "none"
)

// String returns the string representation of the ShareLevel.
func (l ShareLevel) String() string {
	return string(l)
}

// IsValid checks if the ShareLevel is a valid value.
func (l ShareLevel) IsValid() bool {
	switch l {
	case ShareLevelCurrent, ShareLevelHistory, ShareLevelNone:
		return true
	default:
		return false
	}
}

// ShareRule is a directed grant: Viewer may see Owner's location at Level.
// Two rules are created as a pair when a friend request is accepted, but
// either direction may be revoked independently afterwards.
type ShareRule struct {
	OwnerID   uuid.UUID  `json:"owner_id"`   // The user whose location is being shared.
	ViewerID  uuid.UUID  `json:"viewer_id"`  // The user allowed to see it.
	Level     ShareLevel `json:"level"`      // The granted detail level.
	ExpiresAt *time.Time `json:"expires_at"` // Optional expiry; nil means the grant never lapses.
	CreatedAt time.Time  `json:"created_at"` // When the rule was created.
	UpdatedAt time.Time  `json:"updated_at"` // When the rule was last modified.
}

// ActiveAt reports whether the rule still grants visibility at the given time.
func (r *ShareRule) ActiveAt(now time.Time) bool {
	if r.Level == ShareLevelNone {
		return false
	}
	if r.ExpiresAt != nil && !r.ExpiresAt.After(now) {
		return false
	}

	return true
}
