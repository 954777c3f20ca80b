// Package impl provides the implementations of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"zenmap/config"
	deliverycontext "zenmap/internal/delivery/context"
	"zenmap/internal/domain/entity"
	"zenmap/internal/domain/repository"
	"zenmap/internal/domain/service"
	"zenmap/internal/geo"
	"zenmap/internal/usecase"
)

var (
	// ErrInvalidCoordinate is returned when a latitude/longitude pair is out of range.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrHistoryNotShared is returned when the viewer holds no active
	// history-level grant from the owner.
	ErrHistoryNotShared = errors.New("location history not shared")
)

type locationService struct {
	locationRepo  repository.LocationRepository
	shareRuleRepo repository.ShareRuleRepository
	settingsRepo  repository.SettingsRepository
	placeRepo     repository.PlaceRepository
	publisher     service.EventPublisher
	config        *config.Config
	logger        *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	LocationRepo  repository.LocationRepository
	ShareRuleRepo repository.ShareRuleRepository
	SettingsRepo  repository.SettingsRepository
	PlaceRepo     repository.PlaceRepository
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		locationRepo:  params.LocationRepo,
		shareRuleRepo: params.ShareRuleRepo,
		settingsRepo:  params.SettingsRepo,
		placeRepo:     params.PlaceRepo,
		publisher:     params.Publisher,
		config:        params.Config,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Submit ingests one raw device sample for the owner.
func (s *locationService) Submit(ctx context.Context, ownerID uuid.UUID, input *usecase.LocationUpdateInput, now time.Time) error {
	if !validCoordinate(input.Latitude, input.Longitude) {
		return ErrInvalidCoordinate
	}

	ghosted, err := s.isGhosted(ctx, ownerID, now)
	if err != nil {
		return err
	}
	// A ghosted submission is indistinguishable from an accepted one to
	// the caller. The sample is dropped before any write happens.
	if ghosted {
		s.log(ctx).Debug("Dropping location sample while ghosted", slog.Any("userID", ownerID))

		return nil
	}

	prev, err := s.locationRepo.FindCurrentByUser(ctx, ownerID)
	if err != nil && !errors.Is(err, repository.ErrLocationNotFound) {
		return errors.Wrap(err, "failed to find current location")
	}

	var anchor *geo.StayAnchor
	if prev != nil {
		anchor = &geo.StayAnchor{
			Latitude:  prev.Latitude,
			Longitude: prev.Longitude,
			Since:     prev.LocationSince,
		}
	}

	location := &entity.CurrentLocation{
		UserID:        ownerID,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		Accuracy:      input.Accuracy,
		BatteryLevel:  input.BatteryLevel,
		IsCharging:    input.IsCharging,
		Speed:         input.Speed,
		Motion:        s.resolveMotion(input),
		LocationSince: geo.ResolveLocationSince(anchor, input.Latitude, input.Longitude, s.config.Location.StayHysteresisMeters, now),
		UpdatedAt:     now,
	}

	if err := s.locationRepo.UpsertCurrent(ctx, location); err != nil {
		return errors.Wrap(err, "failed to upsert current location")
	}

	s.publishLocationEvent(ctx, location)

	return nil
}

// resolveMotion picks the motion label: a valid caller override wins,
// otherwise the label is classified from the reported speed.
func (s *locationService) resolveMotion(input *usecase.LocationUpdateInput) entity.MotionType {
	if input.MotionOverride != nil && input.MotionOverride.IsValid() {
		return *input.MotionOverride
	}

	return geo.ClassifyMotion(input.Speed)
}

// publishLocationEvent hands the accepted sample to the event pipeline.
// Publication is best effort; the row is already committed.
func (s *locationService) publishLocationEvent(ctx context.Context, location *entity.CurrentLocation) {
	event := &service.LocationEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		UserID:    location.UserID.String(),
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		Accuracy:  location.Accuracy,
		Motion:    location.Motion.String(),
		UpdatedAt: location.UpdatedAt,
	}

	if err := s.publisher.PublishLocationEvent(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish location event", slog.String("userID", event.UserID), slog.Any("error", err))
	}
}

// isGhosted evaluates the owner's ghost state at the given instant.
// A user without stored settings is never ghosted.
func (s *locationService) isGhosted(ctx context.Context, userID uuid.UUID, now time.Time) (bool, error) {
	settings, err := s.settingsRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to find user settings")
	}

	return settings.GhostedAt(now), nil
}

// VisibleLocations returns every current-location row the viewer may see.
func (s *locationService) VisibleLocations(ctx context.Context, viewerID uuid.UUID, now time.Time) ([]*entity.CurrentLocation, error) {
	ownerIDs, err := s.visibleOwners(ctx, viewerID, now)
	if err != nil {
		return nil, err
	}

	locations, err := s.locationRepo.FindCurrentByUsers(ctx, ownerIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find current locations")
	}

	return locations, nil
}

// VisibleLocationsWithPlaces annotates each visible row with the owner's
// favorite place containing it, when one does.
func (s *locationService) VisibleLocationsWithPlaces(ctx context.Context, viewerID uuid.UUID, now time.Time) ([]*usecase.AnnotatedLocation, error) {
	locations, err := s.VisibleLocations(ctx, viewerID, now)
	if err != nil {
		return nil, err
	}

	annotated := make([]*usecase.AnnotatedLocation, 0, len(locations))
	for _, location := range locations {
		places, err := s.placeRepo.FindPlacesByOwner(ctx, location.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find places by owner")
		}

		annotated = append(annotated, &usecase.AnnotatedLocation{
			Location: location,
			Place:    geo.PlaceAt(location.Latitude, location.Longitude, places),
		})
	}

	return annotated, nil
}

// visibleOwners resolves the set of user IDs whose current location the
// viewer may read: themself plus every owner with an active grant to them.
func (s *locationService) visibleOwners(ctx context.Context, viewerID uuid.UUID, now time.Time) ([]uuid.UUID, error) {
	rules, err := s.shareRuleRepo.FindRulesByViewer(ctx, viewerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find share rules by viewer")
	}

	ownerIDs := make([]uuid.UUID, 0, len(rules)+1)
	ownerIDs = append(ownerIDs, viewerID)
	for _, rule := range rules {
		if rule.ActiveAt(now) {
			ownerIDs = append(ownerIDs, rule.OwnerID)
		}
	}

	return ownerIDs, nil
}

// RecordHistory appends one immutable history sample for the owner.
func (s *locationService) RecordHistory(ctx context.Context, ownerID uuid.UUID, lat, lon float64, accuracy *float64) error {
	if !validCoordinate(lat, lon) {
		return ErrInvalidCoordinate
	}

	sample := &entity.LocationHistory{
		UserID:     ownerID,
		Latitude:   lat,
		Longitude:  lon,
		Accuracy:   accuracy,
		RecordedAt: time.Now(),
	}

	if err := s.locationRepo.AppendHistory(ctx, sample); err != nil {
		return errors.Wrap(err, "failed to append location history")
	}

	return nil
}

// History returns the owner's past samples, newest first.
func (s *locationService) History(ctx context.Context, userID uuid.UUID, limit int, since *time.Time) ([]*entity.LocationHistory, error) {
	if limit <= 0 {
		limit = s.config.Location.HistoryDefaultLimit
	}

	samples, err := s.locationRepo.FindHistoryByUser(ctx, userID, limit, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find location history")
	}

	return samples, nil
}

// FriendHistory returns owner's past samples to a viewer holding an
// active history-level grant. Any weaker grant reads the same as no
// grant at all.
func (s *locationService) FriendHistory(ctx context.Context, viewerID, ownerID uuid.UUID, limit int, since *time.Time, now time.Time) ([]*entity.LocationHistory, error) {
	if viewerID != ownerID {
		rule, err := s.shareRuleRepo.FindRule(ctx, ownerID, viewerID)
		if err != nil {
			if errors.Is(err, repository.ErrShareRuleNotFound) {
				return nil, ErrHistoryNotShared
			}

			return nil, errors.Wrap(err, "failed to find share rule")
		}

		if rule.Level != entity.ShareLevelHistory || !rule.ActiveAt(now) {
			return nil, ErrHistoryNotShared
		}
	}

	return s.History(ctx, ownerID, limit, since)
}

// validCoordinate checks a WGS84 latitude/longitude pair.
func validCoordinate(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
