package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"zenmap/internal/domain/entity"
)

// ReactionUsecase handles lightweight emoji reactions friends send to each
// other's live location.
type ReactionUsecase interface {
	// SendReaction records a reaction from one user to a friend. The
	// recipient's location must currently be visible to the sender.
	SendReaction(ctx context.Context, fromUserID, toUserID uuid.UUID, emoji, message string) (*entity.LocationReaction, error)

	// ReceivedReactions lists reactions sent to the user, newest first.
	ReceivedReactions(ctx context.Context, userID uuid.UUID, limit int, since *time.Time) ([]*entity.LocationReaction, error)

	// SentReactions lists reactions the user sent, newest first.
	SentReactions(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.LocationReaction, error)
}
