package impl

import (
	"bytes"
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"zenmap/config"
	"zenmap/internal/domain/entity"
	"zenmap/internal/domain/repository"
	"zenmap/internal/geo"
	"zenmap/internal/usecase"
)

var (
	// ErrInvalidRadius is returned when the search radius is not positive.
	ErrInvalidRadius = errors.New("invalid search radius")
	// ErrSelfBump is returned when a bump names the same user twice.
	ErrSelfBump = errors.New("cannot record a bump with yourself")
)

type proximityService struct {
	locationUsecase usecase.LocationUsecase
	bumpRepo        repository.BumpRepository
	config          *config.Config
}

// ProximityServiceParams holds dependencies for ProximityService, injected by Fx.
type ProximityServiceParams struct {
	fx.In

	LocationUsecase usecase.LocationUsecase
	BumpRepo        repository.BumpRepository
	Config          *config.Config
}

// NewProximityService creates a new proximity service instance
func NewProximityService(params ProximityServiceParams) usecase.ProximityUsecase {
	return &proximityService{
		locationUsecase: params.LocationUsecase,
		bumpRepo:        params.BumpRepo,
		config:          params.Config,
	}
}

// FindNearby returns the requester's visible friends within radiusMeters
// of the given point, closest first. The visibility filter runs before any
// distance math, so no hidden user can ever appear in the result.
func (s *proximityService) FindNearby(ctx context.Context, requesterID uuid.UUID, lat, lon, radiusMeters float64, now time.Time) ([]*usecase.NearbyFriend, error) {
	if !validCoordinate(lat, lon) {
		return nil, ErrInvalidCoordinate
	}

	radiusMeters, err := s.clampRadius(radiusMeters)
	if err != nil {
		return nil, err
	}

	visible, err := s.locationUsecase.VisibleLocations(ctx, requesterID, now)
	if err != nil {
		return nil, err
	}

	center := orb.Point{lon, lat}
	bound := geo.BoundAround(center, radiusMeters)

	nearby := make([]*usecase.NearbyFriend, 0, len(visible))
	for _, location := range visible {
		if location.UserID == requesterID {
			continue
		}
		// Cheap bounding-box rejection before the haversine.
		if !bound.Contains(orb.Point{location.Longitude, location.Latitude}) {
			continue
		}

		distance := geo.DistanceMeters(lat, lon, location.Latitude, location.Longitude)
		if distance > radiusMeters {
			continue
		}

		nearby = append(nearby, &usecase.NearbyFriend{
			UserID:         location.UserID,
			Latitude:       location.Latitude,
			Longitude:      location.Longitude,
			DistanceMeters: distance,
		})
	}

	sortNearby(nearby)

	return nearby, nil
}

// clampRadius applies the configured default and ceiling to a requested radius.
func (s *proximityService) clampRadius(radiusMeters float64) (float64, error) {
	if radiusMeters < 0 {
		return 0, ErrInvalidRadius
	}
	if radiusMeters == 0 {
		return s.config.Location.DefaultNearbyRadiusMeters, nil
	}
	if maxRadius := s.config.Location.MaxNearbyRadiusMeters; radiusMeters > maxRadius {
		return maxRadius, nil
	}

	return radiusMeters, nil
}

// sortNearby orders results by distance, then by user ID. The tie-break
// keeps the order deterministic when two friends sit at the same spot.
func sortNearby(nearby []*usecase.NearbyFriend) {
	sort.Slice(nearby, func(i, j int) bool {
		if nearby[i].DistanceMeters != nearby[j].DistanceMeters {
			return nearby[i].DistanceMeters < nearby[j].DistanceMeters
		}

		return bytes.Compare(nearby[i].UserID[:], nearby[j].UserID[:]) < 0
	})
}

// RecordBump appends one encounter between the two users. Nothing is
// deduplicated; every confirmed encounter becomes its own row.
func (s *proximityService) RecordBump(ctx context.Context, initiatorID, counterpartID uuid.UUID, distanceMeters, lat, lon float64) (*entity.BumpEvent, error) {
	if initiatorID == counterpartID {
		return nil, ErrSelfBump
	}
	if !validCoordinate(lat, lon) {
		return nil, ErrInvalidCoordinate
	}

	// The reported distance is stored as-is; the clients confirmed the
	// encounter and own the measurement.
	bump := &entity.BumpEvent{
		ID:             uuid.New(),
		InitiatorID:    initiatorID,
		CounterpartID:  counterpartID,
		DistanceMeters: distanceMeters,
		Latitude:       lat,
		Longitude:      lon,
		CreatedAt:      time.Now(),
	}

	if err := s.bumpRepo.CreateBump(ctx, bump); err != nil {
		return nil, errors.Wrap(err, "failed to create bump event")
	}

	return bump, nil
}

// BumpHistory returns the user's encounters, newest first.
func (s *proximityService) BumpHistory(ctx context.Context, userID uuid.UUID, limit int, since *time.Time) ([]*entity.BumpEvent, error) {
	if limit <= 0 {
		limit = s.config.Location.HistoryDefaultLimit
	}

	bumps, err := s.bumpRepo.FindBumpsByUser(ctx, userID, limit, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find bump events by user")
	}

	return bumps, nil
}
