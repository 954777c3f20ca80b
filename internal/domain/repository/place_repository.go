package repository

import (
	"context"

	"github.com/google/uuid"

	"zenmap/internal/domain/entity"
	"zenmap/internal/errors"
)

// ErrPlaceNotFound is returned when a favorite place does not exist.
var ErrPlaceNotFound = errors.New("favorite place not found")

// PlaceRepository defines the interface for favorite-place persistence.
// The location pipeline only reads places; mutation happens through the
// place management operations.
type PlaceRepository interface {
	// CreatePlace persists a new favorite place.
	CreatePlace(ctx context.Context, place *entity.FavoritePlace) error

	// FindPlaceByID retrieves a place by its unique ID.
	FindPlaceByID(ctx context.Context, id uuid.UUID) (*entity.FavoritePlace, error)

	// FindPlacesByOwner retrieves all places a user has saved.
	FindPlacesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.FavoritePlace, error)

	// UpdatePlace overwrites an existing place record.
	UpdatePlace(ctx context.Context, place *entity.FavoritePlace) error

	// DeletePlace removes a place by its ID.
	DeletePlace(ctx context.Context, id uuid.UUID) error
}
