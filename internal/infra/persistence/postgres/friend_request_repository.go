package postgres

import (
	"context"

	"zenmap/internal/domain/entity"
	domainerrors "zenmap/internal/domain/errors"
	"zenmap/internal/domain/repository"
	"zenmap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// friendRequestRepository implements the repository.FriendRequestRepository interface.
type friendRequestRepository struct {
	db *gorm.DB
}

// NewFriendRequestRepository is the constructor for friendRequestRepository.
func NewFriendRequestRepository(db *gorm.DB) repository.FriendRequestRepository {
	return &friendRequestRepository{
		db: db,
	}
}

// CreateRequest persists a new pending request.
func (repo *friendRequestRepository) CreateRequest(ctx context.Context, request *entity.FriendRequest) error {
	requestM := fromFriendRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFriendRequest
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewStorageError(err, "failed to create friend request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// FindRequestByID retrieves a request by its unique ID.
func (repo *friendRequestRepository) FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.FriendRequest, error) {
	var requestM model.FriendRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFriendRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find friend request by ID")
	}

	return toFriendRequestDomain(&requestM), nil
}

// FindPendingBetween retrieves the pending request between two users in either direction.
func (repo *friendRequestRepository) FindPendingBetween(ctx context.Context, userA, userB uuid.UUID) (*entity.FriendRequest, error) {
	var requestM model.FriendRequestModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.FriendRequestPending)).
		Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)",
			userA, userB, userB, userA).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFriendRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending request between users")
	}

	return toFriendRequestDomain(&requestM), nil
}

// FindPendingByRecipient retrieves pending requests addressed to a user.
func (repo *friendRequestRepository) FindPendingByRecipient(ctx context.Context, toUserID uuid.UUID) ([]*entity.FriendRequest, error) {
	return repo.findRequests(ctx, repo.db.WithContext(ctx).
		Where("to_user_id = ? AND status = ?", toUserID, string(entity.FriendRequestPending)).
		Order("created_at DESC"))
}

// FindPendingBySender retrieves pending requests a user has sent.
func (repo *friendRequestRepository) FindPendingBySender(ctx context.Context, fromUserID uuid.UUID) ([]*entity.FriendRequest, error) {
	return repo.findRequests(ctx, repo.db.WithContext(ctx).
		Where("from_user_id = ? AND status = ?", fromUserID, string(entity.FriendRequestPending)).
		Order("created_at DESC"))
}

// FindAcceptedByUser retrieves accepted requests where the user is either side.
func (repo *friendRequestRepository) FindAcceptedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FriendRequest, error) {
	return repo.findRequests(ctx, repo.db.WithContext(ctx).
		Where("status = ?", string(entity.FriendRequestAccepted)).
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Order("created_at DESC"))
}

// UpdateStatus transitions a request to a new status.
func (repo *friendRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.FriendRequestStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FriendRequestModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, "failed to update friend request status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFriendRequestNotFound
	}

	return nil
}

// DeleteRequest removes a request row.
func (repo *friendRequestRepository) DeleteRequest(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FriendRequestModel{})

	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, "failed to delete friend request")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFriendRequestNotFound
	}

	return nil
}

// DeleteAcceptedBetween removes the accepted request linking two users.
func (repo *friendRequestRepository) DeleteAcceptedBetween(ctx context.Context, userA, userB uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.FriendRequestAccepted)).
		Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)",
			userA, userB, userB, userA).
		Delete(&model.FriendRequestModel{})

	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, "failed to delete accepted request between users")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFriendRequestNotFound
	}

	return nil
}

// findRequests runs a prepared query and maps the rows to domain entities.
func (repo *friendRequestRepository) findRequests(_ context.Context, query *gorm.DB) ([]*entity.FriendRequest, error) {
	var requestModels []*model.FriendRequestModel

	if err := query.Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find friend requests")
	}

	requests := make([]*entity.FriendRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toFriendRequestDomain(requestM))
	}

	return requests, nil
}

// --- Mapper Functions ---

func toFriendRequestDomain(data *model.FriendRequestModel) *entity.FriendRequest {
	if data == nil {
		return nil
	}

	return &entity.FriendRequest{
		ID:         data.ID,
		FromUserID: data.FromUserID,
		ToUserID:   data.ToUserID,
		Status:     entity.FriendRequestStatus(data.Status),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromFriendRequestDomain(data *entity.FriendRequest) *model.FriendRequestModel {
	if data == nil {
		return nil
	}

	return &model.FriendRequestModel{
		ID:         data.ID,
		FromUserID: data.FromUserID,
		ToUserID:   data.ToUserID,
		Status:     string(data.Status),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
