package repository

import (
	"context"

	"github.com/google/uuid"

	"zenmap/internal/domain/entity"
	"zenmap/internal/errors"
)

// Domain-specific errors for friend-request persistence.
var (
	// ErrFriendRequestNotFound is returned when a request does not exist
	// (or is not visible to the acting user in the queried state).
	ErrFriendRequestNotFound = errors.New("friend request not found")
	// ErrDuplicateFriendRequest is returned when a pending request between
	// the same pair already exists.
	ErrDuplicateFriendRequest = errors.New("friend request already exists")
)

// FriendRequestRepository defines the interface for the friendship lifecycle.
// "Friends" is derived from accepted rows on demand, never stored directly.
type FriendRequestRepository interface {
	// CreateRequest persists a new pending request.
	CreateRequest(ctx context.Context, request *entity.FriendRequest) error

	// FindRequestByID retrieves a request by its unique ID.
	FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.FriendRequest, error)

	// FindPendingBetween retrieves the pending request between two users in
	// either direction. Returns ErrFriendRequestNotFound if none exists.
	FindPendingBetween(ctx context.Context, userA, userB uuid.UUID) (*entity.FriendRequest, error)

	// FindPendingByRecipient retrieves pending requests addressed to a user.
	FindPendingByRecipient(ctx context.Context, toUserID uuid.UUID) ([]*entity.FriendRequest, error)

	// FindPendingBySender retrieves pending requests a user has sent.
	FindPendingBySender(ctx context.Context, fromUserID uuid.UUID) ([]*entity.FriendRequest, error)

	// FindAcceptedByUser retrieves accepted requests where the user is
	// either sender or recipient.
	FindAcceptedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FriendRequest, error)

	// UpdateStatus transitions a request to a new status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.FriendRequestStatus) error

	// DeleteRequest removes a request row (sender cancel, friend removal).
	DeleteRequest(ctx context.Context, id uuid.UUID) error

	// DeleteAcceptedBetween removes the accepted request linking two users.
	DeleteAcceptedBetween(ctx context.Context, userA, userB uuid.UUID) error
}
