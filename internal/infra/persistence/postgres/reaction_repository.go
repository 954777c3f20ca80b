package postgres

import (
	"context"
	"time"

	"zenmap/internal/domain/entity"
	domainerrors "zenmap/internal/domain/errors"
	"zenmap/internal/domain/repository"
	"zenmap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reactionRepository implements the repository.ReactionRepository interface.
type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository is the constructor for reactionRepository.
func NewReactionRepository(db *gorm.DB) repository.ReactionRepository {
	return &reactionRepository{
		db: db,
	}
}

// CreateReaction appends a new reaction.
func (repo *reactionRepository) CreateReaction(ctx context.Context, reaction *entity.LocationReaction) error {
	reactionM := fromReactionDomain(reaction)

	if err := repo.db.WithContext(ctx).Create(reactionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewStorageError(err, "failed to create reaction")
	}

	reaction.ID = reactionM.ID
	reaction.CreatedAt = reactionM.CreatedAt

	return nil
}

// FindReceivedByUser retrieves reactions sent to a user, newest first.
func (repo *reactionRepository) FindReceivedByUser(ctx context.Context, userID uuid.UUID, limit int, since *time.Time) ([]*entity.LocationReaction, error) {
	query := repo.db.WithContext(ctx).
		Where("to_user_id = ?", userID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}

	return repo.findReactions(query)
}

// FindSentByUser retrieves reactions a user has sent, newest first.
func (repo *reactionRepository) FindSentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.LocationReaction, error) {
	query := repo.db.WithContext(ctx).
		Where("from_user_id = ?", userID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	return repo.findReactions(query)
}

// findReactions runs a prepared query and maps the rows to domain entities.
func (repo *reactionRepository) findReactions(query *gorm.DB) ([]*entity.LocationReaction, error) {
	var reactionModels []*model.LocationReactionModel

	if err := query.Find(&reactionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reactions")
	}

	reactions := make([]*entity.LocationReaction, 0, len(reactionModels))
	for _, reactionM := range reactionModels {
		reactions = append(reactions, toReactionDomain(reactionM))
	}

	return reactions, nil
}

// --- Mapper Functions ---

func toReactionDomain(data *model.LocationReactionModel) *entity.LocationReaction {
	if data == nil {
		return nil
	}

	return &entity.LocationReaction{
		ID:         data.ID,
		FromUserID: data.FromUserID,
		ToUserID:   data.ToUserID,
		Emoji:      data.Emoji,
		Message:    data.Message,
		CreatedAt:  data.CreatedAt,
	}
}

func fromReactionDomain(data *entity.LocationReaction) *model.LocationReactionModel {
	if data == nil {
		return nil
	}

	return &model.LocationReactionModel{
		ID:         data.ID,
		FromUserID: data.FromUserID,
		ToUserID:   data.ToUserID,
		Emoji:      data.Emoji,
		Message:    data.Message,
		CreatedAt:  data.CreatedAt,
	}
}
