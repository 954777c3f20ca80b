// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocationReaction is a lightweight emoji reaction one user sends to
// another's current location. Append-only, like bump events.
type LocationReaction struct {
	ID         uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the reaction.
	FromUserID uuid.UUID `json:"from_user_id"` // The sender.
	ToUserID   uuid.UUID `json:"to_user_id"`   // The recipient.
	Emoji      string    `json:"emoji"`        // The reaction emoji.
	Message    string    `json:"message"`      // Optional short text attached to the reaction.
	CreatedAt  time.Time `json:"created_at"`   // When the reaction was sent.
}
