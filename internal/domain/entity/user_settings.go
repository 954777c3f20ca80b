// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserSettings holds per-user privacy and publication preferences.
// Ghost mode is an override independent of share rules: while active it
// silently suppresses all new location publications for the user.
type UserSettings struct {
	UserID                uuid.UUID  `json:"user_id"`                 // The subject user; sole owner of this row.
	GhostMode             bool       `json:"ghost_mode"`              // Whether ghost mode is switched on.
	GhostUntil            *time.Time `json:"ghost_until"`             // Optional expiry; nil means ghost indefinitely.
	UpdateIntervalSeconds int        `json:"update_interval_seconds"` // Preferred interval between location submissions.
	UpdatedAt             time.Time  `json:"updated_at"`              // When the settings were last modified.
}

// GhostedAt reports whether publications are suppressed at the given time.
// A lapsed ghost_until un-suppresses without the flag ever being cleared;
// expiry is a pure comparison, never a background timer.
func (s *UserSettings) GhostedAt(now time.Time) bool {
	if s == nil || !s.GhostMode {
		return false
	}
	if s.GhostUntil == nil {
		return true
	}

	return s.GhostUntil.After(now)
}
