// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"zenmap/internal/domain/entity"
	"zenmap/internal/errors"
)

// Domain-specific errors for location persistence.
var (
	// ErrLocationNotFound is returned when no current-location row exists for a user.
	ErrLocationNotFound = errors.New("location not found")
)

// LocationRepository defines the interface for current-location and
// location-history persistence.
type LocationRepository interface {
	// FindCurrentByUser retrieves the single live location row for a user.
	// Returns ErrLocationNotFound for users who never submitted a sample.
	FindCurrentByUser(ctx context.Context, userID uuid.UUID) (*entity.CurrentLocation, error)

	// FindCurrentByUsers retrieves the live location rows for a set of users.
	// Users without a row are simply absent from the result.
	FindCurrentByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.CurrentLocation, error)

	// UpsertCurrent writes the canonical current-location row for the
	// location's owner, inserting or overwriting as needed. Last write wins
	// per owner.
	UpsertCurrent(ctx context.Context, location *entity.CurrentLocation) error

	// AppendHistory appends one immutable history sample.
	AppendHistory(ctx context.Context, sample *entity.LocationHistory) error

	// FindHistoryByUser retrieves history samples newest first, optionally
	// capped by limit (<=0 means no cap) and bounded below by since.
	FindHistoryByUser(ctx context.Context, userID uuid.UUID, limit int, since *time.Time) ([]*entity.LocationHistory, error)
}
