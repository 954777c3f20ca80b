package impl

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"zenmap/internal/domain/entity"
	"zenmap/internal/domain/repository"
	"zenmap/internal/geo"
	"zenmap/internal/usecase"
)

var (
	// ErrPlaceNotFound is returned when a favorite place does not exist.
	ErrPlaceNotFound = errors.New("favorite place not found")
	// ErrNotPlaceOwner is returned when a user touches a place they do not own.
	ErrNotPlaceOwner = errors.New("unauthorized to access this place")
	// ErrInvalidPlace is returned when place attributes are out of range.
	ErrInvalidPlace = errors.New("invalid place attributes")
)

type placeService struct {
	placeRepo repository.PlaceRepository
}

// NewPlaceService creates a new place service instance
func NewPlaceService(placeRepo repository.PlaceRepository) usecase.PlaceUsecase {
	return &placeService{placeRepo: placeRepo}
}

// AddPlace creates a new favorite place for the owner.
func (s *placeService) AddPlace(ctx context.Context, ownerID uuid.UUID, input *usecase.AddPlaceInput) (*entity.FavoritePlace, error) {
	if input.Name == "" || !input.Type.IsValid() || input.RadiusMeters <= 0 || !validCoordinate(input.Latitude, input.Longitude) {
		return nil, ErrInvalidPlace
	}

	place := &entity.FavoritePlace{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Name:         input.Name,
		Type:         input.Type,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		RadiusMeters: input.RadiusMeters,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.placeRepo.CreatePlace(ctx, place); err != nil {
		return nil, errors.Wrap(err, "failed to create place")
	}

	return place, nil
}

// Places lists the owner's favorite places.
func (s *placeService) Places(ctx context.Context, ownerID uuid.UUID) ([]*entity.FavoritePlace, error) {
	places, err := s.placeRepo.FindPlacesByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find places by owner")
	}

	return places, nil
}

// UpdatePlace applies partial edits to a place the user owns.
func (s *placeService) UpdatePlace(ctx context.Context, ownerID, placeID uuid.UUID, input *usecase.UpdatePlaceInput) (*entity.FavoritePlace, error) {
	place, err := s.ownedPlace(ctx, ownerID, placeID)
	if err != nil {
		return nil, err
	}

	s.applyPlaceUpdates(place, input)
	if place.Name == "" || !place.Type.IsValid() || place.RadiusMeters <= 0 || !validCoordinate(place.Latitude, place.Longitude) {
		return nil, ErrInvalidPlace
	}

	if err := s.placeRepo.UpdatePlace(ctx, place); err != nil {
		return nil, errors.Wrap(err, "failed to update place")
	}

	return place, nil
}

// applyPlaceUpdates applies the update input to a place
func (s *placeService) applyPlaceUpdates(place *entity.FavoritePlace, input *usecase.UpdatePlaceInput) {
	if input.Name != nil {
		place.Name = *input.Name
	}
	if input.Type != nil {
		place.Type = *input.Type
	}
	if input.Latitude != nil {
		place.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		place.Longitude = *input.Longitude
	}
	if input.RadiusMeters != nil {
		place.RadiusMeters = *input.RadiusMeters
	}
	place.UpdatedAt = time.Now()
}

// DeletePlace removes a place the user owns.
func (s *placeService) DeletePlace(ctx context.Context, ownerID, placeID uuid.UUID) error {
	if _, err := s.ownedPlace(ctx, ownerID, placeID); err != nil {
		return err
	}

	if err := s.placeRepo.DeletePlace(ctx, placeID); err != nil {
		return errors.Wrap(err, "failed to delete place")
	}

	return nil
}

// PlaceAt returns the owner's place containing the coordinate, or nil.
func (s *placeService) PlaceAt(ctx context.Context, ownerID uuid.UUID, lat, lon float64) (*entity.FavoritePlace, error) {
	if !validCoordinate(lat, lon) {
		return nil, ErrInvalidCoordinate
	}

	places, err := s.placeRepo.FindPlacesByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find places by owner")
	}

	return geo.PlaceAt(lat, lon, places), nil
}

// ownedPlace loads a place and verifies ownership.
func (s *placeService) ownedPlace(ctx context.Context, ownerID, placeID uuid.UUID) (*entity.FavoritePlace, error) {
	place, err := s.placeRepo.FindPlaceByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, repository.ErrPlaceNotFound) {
			return nil, ErrPlaceNotFound
		}

		return nil, errors.Wrap(err, "failed to find place by ID")
	}
	if place.OwnerID != ownerID {
		return nil, ErrNotPlaceOwner
	}

	return place, nil
}
