package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"zenmap/internal/domain/entity"
)

// NearbyFriend is one visible friend within the requested radius.
type NearbyFriend struct {
	UserID         uuid.UUID `json:"userId"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	DistanceMeters float64   `json:"distanceMeters"`
}

// ProximityUsecase answers "who is near me" over the viewer's visible set
// and keeps the append-only log of physical bump encounters.
type ProximityUsecase interface {
	// FindNearby returns visible friends within radiusMeters of the given
	// point, closest first. Ties on distance break on user ID so the order
	// is stable. The requester themself is never included.
	FindNearby(ctx context.Context, requesterID uuid.UUID, lat, lon, radiusMeters float64, now time.Time) ([]*NearbyFriend, error)

	// RecordBump appends one encounter between the two users. Repeated
	// bumps between the same pair are all kept; the log is append only.
	RecordBump(ctx context.Context, initiatorID, counterpartID uuid.UUID, distanceMeters, lat, lon float64) (*entity.BumpEvent, error)

	// BumpHistory returns the user's encounters, newest first.
	BumpHistory(ctx context.Context, userID uuid.UUID, limit int, since *time.Time) ([]*entity.BumpEvent, error)
}
