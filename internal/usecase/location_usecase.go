// Package usecase defines the application's use case interfaces and their
// input/output types. Implementations live in the impl subpackage.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"zenmap/internal/domain/entity"
)

// LocationUpdateInput is one raw location sample submitted by a device.
type LocationUpdateInput struct {
	Latitude       float64
	Longitude      float64
	Accuracy       *float64
	BatteryLevel   *int
	IsCharging     bool
	Speed          *float64
	MotionOverride *entity.MotionType // Explicit motion label; wins over speed classification.
}

// AnnotatedLocation is a visible friend's location together with the
// favorite place (theirs) the coordinate falls into, if any.
type AnnotatedLocation struct {
	Location *entity.CurrentLocation `json:"location"`
	Place    *entity.FavoritePlace   `json:"place,omitempty"`
}

// LocationUsecase defines the location publication pipeline: privacy
// filtering, motion/stay annotation, the canonical current-location row,
// and visibility-filtered reads.
type LocationUsecase interface {
	// Submit ingests one raw sample for owner. While the owner is ghosted
	// the sample is silently discarded; the caller cannot tell suppression
	// from success. Storage failures propagate verbatim, without retry.
	Submit(ctx context.Context, ownerID uuid.UUID, input *LocationUpdateInput, now time.Time) error

	// VisibleLocations returns every current-location row the viewer may
	// see: rows shared with them through an active rule plus their own.
	// A ghosted owner's last pre-ghost row stays visible until overwritten.
	VisibleLocations(ctx context.Context, viewerID uuid.UUID, now time.Time) ([]*entity.CurrentLocation, error)

	// VisibleLocationsWithPlaces is VisibleLocations with each row annotated
	// by the owner's favorite place containing it, when there is one.
	VisibleLocationsWithPlaces(ctx context.Context, viewerID uuid.UUID, now time.Time) ([]*AnnotatedLocation, error)

	// RecordHistory appends one immutable history sample for the owner.
	// History is not ghost-filtered; it is the owner's own private trail.
	RecordHistory(ctx context.Context, ownerID uuid.UUID, lat, lon float64, accuracy *float64) error

	// History returns the owner's past samples, newest first.
	History(ctx context.Context, userID uuid.UUID, limit int, since *time.Time) ([]*entity.LocationHistory, error)

	// FriendHistory returns owner's past samples for viewer. It requires
	// an active history-level share rule from owner to viewer; a current
	// or absent grant reads the same as an owner that does not exist.
	FriendHistory(ctx context.Context, viewerID, ownerID uuid.UUID, limit int, since *time.Time, now time.Time) ([]*entity.LocationHistory, error)
}
