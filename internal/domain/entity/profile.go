// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the public-facing identity of a user: what friends see when
// they search for or look at each other. Credentials live separately.
type Profile struct {
	UserID      uuid.UUID `json:"user_id"`      // The Global Unique Identifier (GUID) for the user.
	Username    string    `json:"username"`     // Unique handle used for search and friend invites.
	DisplayName string    `json:"display_name"` // Free-form display name.
	AvatarURL   string    `json:"avatar_url"`   // Optional avatar image URL.
	StatusText  string    `json:"status_text"`  // Optional short status message.
	CreatedAt   time.Time `json:"created_at"`   // When the profile was created.
	UpdatedAt   time.Time `json:"updated_at"`   // When the profile was last modified.
}

// Credential stores the login secret for a user, keyed by email.
// Kept apart from Profile so the public identity never carries the hash.
type Credential struct {
	UserID       uuid.UUID // The user this credential belongs to.
	Email        string    // Login identifier.
	PasswordHash string    // bcrypt hash of the password.
	CreatedAt    time.Time // When the credential was created.
	UpdatedAt    time.Time // When the credential was last modified.
}
