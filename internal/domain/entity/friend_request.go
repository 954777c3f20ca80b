// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// FriendRequestStatus is the lifecycle state of a friend request.
type FriendRequestStatus string

const (
	// FriendRequestPending means the request awaits a decision from the recipient.
	FriendRequestPending FriendRequestStatus = "pending"
	// FriendRequestAccepted means the recipient accepted; both share rules exist.
	FriendRequestAccepted FriendRequestStatus = "accepted"
	// FriendRequestRejected is terminal and has no side effects.
	FriendRequestRejected FriendRequestStatus = "rejected"
)

// String returns the string representation of the FriendRequestStatus.
func (s FriendRequestStatus) String() string {
	return string(s)
}

// FriendRequest models the friendship lifecycle. "Friends" is a derived
// view over accepted requests, never stored directly: only the recipient
// may accept or reject, only the sender may cancel while still pending.
type FriendRequest struct {
	ID         uuid.UUID           `json:"id"`           // The Global Unique Identifier (GUID) for the request.
	FromUserID uuid.UUID           `json:"from_user_id"` // The sender.
	ToUserID   uuid.UUID           `json:"to_user_id"`   // The recipient.
	Status     FriendRequestStatus `json:"status"`       // Current lifecycle state.
	CreatedAt  time.Time           `json:"created_at"`   // When the request was sent.
	UpdatedAt  time.Time           `json:"updated_at"`   // When the state last changed.
}

// Counterpart returns the other participant of the request relative to userID.
func (r *FriendRequest) Counterpart(userID uuid.UUID) uuid.UUID {
	if r.FromUserID == userID {
		return r.ToUserID
	}

	return r.FromUserID
}
