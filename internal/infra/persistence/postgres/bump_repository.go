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

// bumpRepository implements the repository.BumpRepository interface.
type bumpRepository struct {
	db *gorm.DB
}

// NewBumpRepository is the constructor for bumpRepository.
func NewBumpRepository(db *gorm.DB) repository.BumpRepository {
	return &bumpRepository{
		db: db,
	}
}

// CreateBump appends a new encounter record.
func (repo *bumpRepository) CreateBump(ctx context.Context, bump *entity.BumpEvent) error {
	bumpM := fromBumpEventDomain(bump)

	if err := repo.db.WithContext(ctx).Create(bumpM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewStorageError(err, "failed to create bump event")
	}

	bump.ID = bumpM.ID
	bump.CreatedAt = bumpM.CreatedAt

	return nil
}

// FindBumpsByUser retrieves events where the user is initiator or
// counterpart, newest first.
func (repo *bumpRepository) FindBumpsByUser(ctx context.Context, userID uuid.UUID, limit int, since *time.Time) ([]*entity.BumpEvent, error) {
	var bumpModels []*model.BumpEventModel

	query := repo.db.WithContext(ctx).
		Where("initiator_id = ? OR counterpart_id = ?", userID, userID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}

	if err := query.Find(&bumpModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find bump events by user")
	}

	bumps := make([]*entity.BumpEvent, 0, len(bumpModels))
	for _, bumpM := range bumpModels {
		bumps = append(bumps, toBumpEventDomain(bumpM))
	}

	return bumps, nil
}

// --- Mapper Functions ---

func toBumpEventDomain(data *model.BumpEventModel) *entity.BumpEvent {
	if data == nil {
		return nil
	}

	return &entity.BumpEvent{
		ID:             data.ID,
		InitiatorID:    data.InitiatorID,
		CounterpartID:  data.CounterpartID,
		DistanceMeters: data.DistanceMeters,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		CreatedAt:      data.CreatedAt,
	}
}

func fromBumpEventDomain(data *entity.BumpEvent) *model.BumpEventModel {
	if data == nil {
		return nil
	}

	return &model.BumpEventModel{
		ID:             data.ID,
		InitiatorID:    data.InitiatorID,
		CounterpartID:  data.CounterpartID,
		DistanceMeters: data.DistanceMeters,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		CreatedAt:      data.CreatedAt,
	}
}
