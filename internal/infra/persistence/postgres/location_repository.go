// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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
	"gorm.io/gorm/clause"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// FindCurrentByUser retrieves the single live location row for a user.
func (repo *locationRepository) FindCurrentByUser(ctx context.Context, userID uuid.UUID) (*entity.CurrentLocation, error) {
	var locationM model.CurrentLocationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find current location by user")
	}

	return toCurrentLocationDomain(&locationM), nil
}

// FindCurrentByUsers retrieves the live location rows for a set of users.
// Users without a row are simply absent from the result.
func (repo *locationRepository) FindCurrentByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.CurrentLocation, error) {
	if len(userIDs) == 0 {
		return []*entity.CurrentLocation{}, nil
	}

	var locationModels []*model.CurrentLocationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find current locations by users")
	}

	locations := make([]*entity.CurrentLocation, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toCurrentLocationDomain(locationM))
	}

	return locations, nil
}

// UpsertCurrent writes the canonical current-location row for the
// location's owner. Last write wins per owner.
func (repo *locationRepository) UpsertCurrent(ctx context.Context, location *entity.CurrentLocation) error {
	locationM := fromCurrentLocationDomain(location)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(locationM).Error; err != nil {
		return domainerrors.NewStorageError(err, "failed to upsert current location")
	}

	return nil
}

// AppendHistory appends one immutable history sample.
func (repo *locationRepository) AppendHistory(ctx context.Context, sample *entity.LocationHistory) error {
	sampleM := fromLocationHistoryDomain(sample)

	if err := repo.db.WithContext(ctx).Create(sampleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewStorageError(err, "failed to append location history")
	}

	sample.ID = sampleM.ID

	return nil
}

// FindHistoryByUser retrieves history samples newest first.
func (repo *locationRepository) FindHistoryByUser(ctx context.Context, userID uuid.UUID, limit int, since *time.Time) ([]*entity.LocationHistory, error) {
	var sampleModels []*model.LocationHistoryModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if since != nil {
		query = query.Where("recorded_at >= ?", *since)
	}

	if err := query.Find(&sampleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find location history by user")
	}

	samples := make([]*entity.LocationHistory, 0, len(sampleModels))
	for _, sampleM := range sampleModels {
		samples = append(samples, toLocationHistoryDomain(sampleM))
	}

	return samples, nil
}

// --- Mapper Functions ---

// toCurrentLocationDomain converts a GORM CurrentLocationModel to a domain CurrentLocation entity.
func toCurrentLocationDomain(data *model.CurrentLocationModel) *entity.CurrentLocation {
	if data == nil {
		return nil
	}

	return &entity.CurrentLocation{
		UserID:        data.UserID,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		Accuracy:      data.Accuracy,
		BatteryLevel:  data.BatteryLevel,
		IsCharging:    data.IsCharging,
		Speed:         data.Speed,
		Motion:        entity.MotionType(data.Motion),
		LocationSince: data.LocationSince,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromCurrentLocationDomain converts a domain CurrentLocation entity to a GORM model.
func fromCurrentLocationDomain(data *entity.CurrentLocation) *model.CurrentLocationModel {
	if data == nil {
		return nil
	}

	return &model.CurrentLocationModel{
		UserID:        data.UserID,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		Accuracy:      data.Accuracy,
		BatteryLevel:  data.BatteryLevel,
		IsCharging:    data.IsCharging,
		Speed:         data.Speed,
		Motion:        data.Motion.String(),
		LocationSince: data.LocationSince,
		UpdatedAt:     data.UpdatedAt,
	}
}

// toLocationHistoryDomain converts a GORM LocationHistoryModel to a domain entity.
func toLocationHistoryDomain(data *model.LocationHistoryModel) *entity.LocationHistory {
	if data == nil {
		return nil
	}

	return &entity.LocationHistory{
		ID:         data.ID,
		UserID:     data.UserID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Accuracy:   data.Accuracy,
		RecordedAt: data.RecordedAt,
	}
}

// fromLocationHistoryDomain converts a domain LocationHistory entity to a GORM model.
func fromLocationHistoryDomain(data *entity.LocationHistory) *model.LocationHistoryModel {
	if data == nil {
		return nil
	}

	return &model.LocationHistoryModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Accuracy:   data.Accuracy,
		RecordedAt: data.RecordedAt,
	}
}
