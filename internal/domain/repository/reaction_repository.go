package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"zenmap/internal/domain/entity"
)

// ReactionRepository defines the interface for the append-only reaction log.
type ReactionRepository interface {
	// CreateReaction appends a new reaction.
	CreateReaction(ctx context.Context, reaction *entity.LocationReaction) error

	// FindReceivedByUser retrieves reactions sent to a user, newest first,
	// optionally capped by limit and bounded below by since.
	FindReceivedByUser(ctx context.Context, userID uuid.UUID, limit int, since *time.Time) ([]*entity.LocationReaction, error)

	// FindSentByUser retrieves reactions a user has sent, newest first,
	// optionally capped by limit.
	FindSentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.LocationReaction, error)
}
