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

// placeRepository implements the repository.PlaceRepository interface.
type placeRepository struct {
	db *gorm.DB
}

// NewPlaceRepository is the constructor for placeRepository.
func NewPlaceRepository(db *gorm.DB) repository.PlaceRepository {
	return &placeRepository{
		db: db,
	}
}

// CreatePlace persists a new favorite place.
func (repo *placeRepository) CreatePlace(ctx context.Context, place *entity.FavoritePlace) error {
	placeM := fromFavoritePlaceDomain(place)

	if err := repo.db.WithContext(ctx).Create(placeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidArgument.WrapMessage("missing required place information")
		}

		return domainerrors.NewStorageError(err, "failed to create place")
	}

	place.ID = placeM.ID
	place.CreatedAt = placeM.CreatedAt
	place.UpdatedAt = placeM.UpdatedAt

	return nil
}

// FindPlaceByID retrieves a place by its unique ID.
func (repo *placeRepository) FindPlaceByID(ctx context.Context, id uuid.UUID) (*entity.FavoritePlace, error) {
	var placeM model.FavoritePlaceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&placeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlaceNotFound
		}

		return nil, errors.Wrap(err, "failed to find place by ID")
	}

	return toFavoritePlaceDomain(&placeM), nil
}

// FindPlacesByOwner retrieves all places a user has saved.
func (repo *placeRepository) FindPlacesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.FavoritePlace, error) {
	var placeModels []*model.FavoritePlaceModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&placeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find places by owner")
	}

	places := make([]*entity.FavoritePlace, 0, len(placeModels))
	for _, placeM := range placeModels {
		places = append(places, toFavoritePlaceDomain(placeM))
	}

	return places, nil
}

// UpdatePlace overwrites an existing place record.
func (repo *placeRepository) UpdatePlace(ctx context.Context, place *entity.FavoritePlace) error {
	placeM := fromFavoritePlaceDomain(place)

	if err := repo.db.WithContext(ctx).Save(placeM).Error; err != nil {
		return domainerrors.NewStorageError(err, "failed to update place")
	}

	place.UpdatedAt = placeM.UpdatedAt

	return nil
}

// DeletePlace removes a place by its ID.
func (repo *placeRepository) DeletePlace(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FavoritePlaceModel{})

	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, "failed to delete place")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlaceNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toFavoritePlaceDomain(data *model.FavoritePlaceModel) *entity.FavoritePlace {
	if data == nil {
		return nil
	}

	return &entity.FavoritePlace{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		Name:         data.Name,
		Type:         entity.PlaceType(data.Type),
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		RadiusMeters: data.RadiusMeters,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromFavoritePlaceDomain(data *entity.FavoritePlace) *model.FavoritePlaceModel {
	if data == nil {
		return nil
	}

	return &model.FavoritePlaceModel{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		Name:         data.Name,
		Type:         data.Type.String(),
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		RadiusMeters: data.RadiusMeters,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
