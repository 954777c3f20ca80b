package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"zenmap/internal/domain/entity"
)

// FriendUsecase defines the friend graph and the per-edge sharing grants
// hanging off it. Accepting a request and removing a friend are atomic:
// the relationship row and both share rules move together.
type FriendUsecase interface {
	// SendRequest creates a pending request from one user to another.
	// Self requests and duplicate pending requests between the pair are
	// rejected.
	SendRequest(ctx context.Context, fromUserID, toUserID uuid.UUID) (*entity.FriendRequest, error)

	// AcceptRequest marks the pending request accepted and, in the same
	// transaction, installs a default share rule in each direction.
	// Only the recipient may accept.
	AcceptRequest(ctx context.Context, requestID, actingUserID uuid.UUID) error

	// RejectRequest marks the pending request rejected. Only the recipient
	// may reject.
	RejectRequest(ctx context.Context, requestID, actingUserID uuid.UUID) error

	// CancelRequest withdraws a still-pending request. Only the sender may
	// cancel.
	CancelRequest(ctx context.Context, requestID, actingUserID uuid.UUID) error

	// PendingRequests lists requests awaiting the user's decision.
	PendingRequests(ctx context.Context, userID uuid.UUID) ([]*entity.FriendRequest, error)

	// SentRequests lists the user's own still-pending requests.
	SentRequests(ctx context.Context, userID uuid.UUID) ([]*entity.FriendRequest, error)

	// FriendsOf returns the IDs of every user with an accepted request
	// involving userID, on either side.
	FriendsOf(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// RemoveFriend deletes the accepted relationship and both share rules
	// atomically. Either side may remove.
	RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error

	// Allow grants or updates the share rule owner -> viewer. A nil
	// expiresAt means the grant does not expire on its own.
	Allow(ctx context.Context, ownerID, viewerID uuid.UUID, level entity.ShareLevel, expiresAt *time.Time) error

	// Revoke removes the share rule owner -> viewer. Revoking a rule that
	// does not exist is a no-op.
	Revoke(ctx context.Context, ownerID, viewerID uuid.UUID) error

	// GenerateInviteQR renders a QR code that encodes a friend invite for
	// the user. Scanning it is equivalent to sending them a request.
	GenerateInviteQR(ctx context.Context, userID uuid.UUID) ([]byte, error)

	// AcceptInviteQR decodes scanned invite content and sends a request
	// from the scanning user to the invite's owner.
	AcceptInviteQR(ctx context.Context, userID uuid.UUID, content string) (*entity.FriendRequest, error)
}
