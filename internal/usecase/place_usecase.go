package usecase

import (
	"context"

	"github.com/google/uuid"

	"zenmap/internal/domain/entity"
)

// AddPlaceInput describes a new favorite place.
type AddPlaceInput struct {
	Name         string
	Type         entity.PlaceType
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

// UpdatePlaceInput carries partial favorite place edits. Nil fields keep
// their stored value.
type UpdatePlaceInput struct {
	Name         *string
	Type         *entity.PlaceType
	Latitude     *float64
	Longitude    *float64
	RadiusMeters *float64
}

// PlaceUsecase manages a user's private favorite places and answers
// which one a coordinate falls into.
type PlaceUsecase interface {
	AddPlace(ctx context.Context, ownerID uuid.UUID, input *AddPlaceInput) (*entity.FavoritePlace, error)
	Places(ctx context.Context, ownerID uuid.UUID) ([]*entity.FavoritePlace, error)
	UpdatePlace(ctx context.Context, ownerID, placeID uuid.UUID, input *UpdatePlaceInput) (*entity.FavoritePlace, error)
	DeletePlace(ctx context.Context, ownerID, placeID uuid.UUID) error

	// PlaceAt returns the owner's place containing the coordinate, or nil
	// when none does. When circles overlap the place whose center is
	// closest to the coordinate wins.
	PlaceAt(ctx context.Context, ownerID uuid.UUID, lat, lon float64) (*entity.FavoritePlace, error)
}
