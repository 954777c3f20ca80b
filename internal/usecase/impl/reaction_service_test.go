package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zenmap/internal/domain/entity"
	"zenmap/internal/domain/repository"
	mockRepo "zenmap/internal/mocks/repository"
	"zenmap/internal/usecase"
)

type reactionServiceFixtures struct {
	service       usecase.ReactionUsecase
	reactionRepo  *mockRepo.MockReactionRepository
	shareRuleRepo *mockRepo.MockShareRuleRepository
}

func createTestReactionService(t *testing.T) reactionServiceFixtures {
	reactionRepo := mockRepo.NewMockReactionRepository(t)
	shareRuleRepo := mockRepo.NewMockShareRuleRepository(t)

	return reactionServiceFixtures{
		service:       NewReactionService(reactionRepo, shareRuleRepo),
		reactionRepo:  reactionRepo,
		shareRuleRepo: shareRuleRepo,
	}
}

func TestReactionService_SendReaction(t *testing.T) {
	fx := createTestReactionService(t)

	ctx := context.Background()
	fromID := uuid.New()
	toID := uuid.New()

	// The recipient shares their location with the sender.
	fx.shareRuleRepo.EXPECT().
		FindRule(ctx, toID, fromID).
		Return(&entity.ShareRule{OwnerID: toID, ViewerID: fromID, Level: entity.ShareLevelCurrent}, nil)

	fx.reactionRepo.EXPECT().
		CreateReaction(ctx, mock.AnythingOfType("*entity.LocationReaction")).
		Return(nil)

	reaction, err := fx.service.SendReaction(ctx, fromID, toID, "👋", "いまどこ？")

	require.NoError(t, err)
	assert.Equal(t, fromID, reaction.FromUserID)
	assert.Equal(t, toID, reaction.ToUserID)
	assert.Equal(t, "👋", reaction.Emoji)
	assert.NotEqual(t, uuid.Nil, reaction.ID)
}

func TestReactionService_SendReaction_NoShareRule(t *testing.T) {
	fx := createTestReactionService(t)

	ctx := context.Background()
	fromID := uuid.New()
	toID := uuid.New()

	fx.shareRuleRepo.EXPECT().
		FindRule(ctx, toID, fromID).
		Return(nil, repository.ErrShareRuleNotFound)

	_, err := fx.service.SendReaction(ctx, fromID, toID, "👋", "")

	assert.ErrorIs(t, err, ErrRecipientNotVisible)
}

func TestReactionService_SendReaction_ExpiredRule(t *testing.T) {
	fx := createTestReactionService(t)

	ctx := context.Background()
	fromID := uuid.New()
	toID := uuid.New()
	expired := time.Now().Add(-time.Hour)

	fx.shareRuleRepo.EXPECT().
		FindRule(ctx, toID, fromID).
		Return(&entity.ShareRule{
			OwnerID:   toID,
			ViewerID:  fromID,
			Level:     entity.ShareLevelCurrent,
			ExpiresAt: &expired,
		}, nil)

	_, err := fx.service.SendReaction(ctx, fromID, toID, "👋", "")

	assert.ErrorIs(t, err, ErrRecipientNotVisible)
}

func TestReactionService_SendReaction_Invalid(t *testing.T) {
	fx := createTestReactionService(t)

	ctx := context.Background()

	_, err := fx.service.SendReaction(ctx, uuid.New(), uuid.New(), "", "hi")
	assert.ErrorIs(t, err, ErrInvalidReaction)

	tooLong := strings.Repeat("あ", maxReactionMessageLength+1)
	_, err = fx.service.SendReaction(ctx, uuid.New(), uuid.New(), "👋", tooLong)
	assert.ErrorIs(t, err, ErrInvalidReaction)
}

func TestReactionService_ReceivedReactions_DefaultLimit(t *testing.T) {
	fx := createTestReactionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.reactionRepo.EXPECT().
		FindReceivedByUser(ctx, userID, defaultReactionListLimit, (*time.Time)(nil)).
		Return([]*entity.LocationReaction{}, nil)

	reactions, err := fx.service.ReceivedReactions(ctx, userID, 0, nil)

	require.NoError(t, err)
	assert.Empty(t, reactions)
}

func TestReactionService_SentReactions(t *testing.T) {
	fx := createTestReactionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.reactionRepo.EXPECT().
		FindSentByUser(ctx, userID, 10).
		Return([]*entity.LocationReaction{{FromUserID: userID}}, nil)

	reactions, err := fx.service.SentReactions(ctx, userID, 10)

	require.NoError(t, err)
	assert.Len(t, reactions, 1)
}
