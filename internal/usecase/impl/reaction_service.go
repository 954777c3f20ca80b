package impl

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"zenmap/internal/domain/entity"
	"zenmap/internal/domain/repository"
	"zenmap/internal/usecase"
)

var (
	// ErrInvalidReaction is returned when the emoji is missing or the message too long.
	ErrInvalidReaction = errors.New("invalid reaction")
	// ErrRecipientNotVisible is returned when the recipient's location is not visible to the sender.
	ErrRecipientNotVisible = errors.New("recipient location is not visible")
)

// maxReactionMessageLength bounds the optional text attached to a reaction.
const maxReactionMessageLength = 200

type reactionService struct {
	reactionRepo  repository.ReactionRepository
	shareRuleRepo repository.ShareRuleRepository
}

// NewReactionService creates a new reaction service instance
func NewReactionService(reactionRepo repository.ReactionRepository, shareRuleRepo repository.ShareRuleRepository) usecase.ReactionUsecase {
	return &reactionService{
		reactionRepo:  reactionRepo,
		shareRuleRepo: shareRuleRepo,
	}
}

// SendReaction records a reaction to a friend whose location the sender
// can currently see. Reacting to someone who is hidden from you is
// rejected the same way as reacting to a stranger.
func (s *reactionService) SendReaction(ctx context.Context, fromUserID, toUserID uuid.UUID, emoji, message string) (*entity.LocationReaction, error) {
	if emoji == "" || utf8.RuneCountInString(message) > maxReactionMessageLength {
		return nil, ErrInvalidReaction
	}

	rule, err := s.shareRuleRepo.FindRule(ctx, toUserID, fromUserID)
	if err != nil {
		if errors.Is(err, repository.ErrShareRuleNotFound) {
			return nil, ErrRecipientNotVisible
		}

		return nil, errors.Wrap(err, "failed to find share rule")
	}
	if !rule.ActiveAt(time.Now()) {
		return nil, ErrRecipientNotVisible
	}

	reaction := &entity.LocationReaction{
		ID:         uuid.New(),
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Emoji:      emoji,
		Message:    message,
		CreatedAt:  time.Now(),
	}

	if err := s.reactionRepo.CreateReaction(ctx, reaction); err != nil {
		return nil, errors.Wrap(err, "failed to create reaction")
	}

	return reaction, nil
}

// ReceivedReactions lists reactions sent to the user, newest first.
func (s *reactionService) ReceivedReactions(ctx context.Context, userID uuid.UUID, limit int, since *time.Time) ([]*entity.LocationReaction, error) {
	if limit <= 0 {
		limit = defaultReactionListLimit
	}

	reactions, err := s.reactionRepo.FindReceivedByUser(ctx, userID, limit, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find received reactions")
	}

	return reactions, nil
}

// SentReactions lists reactions the user sent, newest first.
func (s *reactionService) SentReactions(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.LocationReaction, error) {
	if limit <= 0 {
		limit = defaultReactionListLimit
	}

	reactions, err := s.reactionRepo.FindSentByUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find sent reactions")
	}

	return reactions, nil
}

// defaultReactionListLimit caps reaction listings when no limit is given.
const defaultReactionListLimit = 50
