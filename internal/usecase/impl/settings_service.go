package impl

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"zenmap/internal/domain/entity"
	"zenmap/internal/domain/repository"
	"zenmap/internal/usecase"
)

// ErrInvalidUpdateInterval is returned when the submission interval is not positive.
var ErrInvalidUpdateInterval = errors.New("update interval must be positive")

// defaultUpdateIntervalSeconds is the suggested submission cadence for
// users who never changed it.
const defaultUpdateIntervalSeconds = 30

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(settingsRepo repository.SettingsRepository) usecase.SettingsUsecase {
	return &settingsService{settingsRepo: settingsRepo}
}

// Settings returns the user's stored settings, or the defaults when none exist.
func (s *settingsService) Settings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	settings, err := s.settingsRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return defaultSettings(userID), nil
		}

		return nil, errors.Wrap(err, "failed to find user settings")
	}

	return settings, nil
}

// defaultSettings is what a user looks like before their first write:
// not ghosted, default cadence.
func defaultSettings(userID uuid.UUID) *entity.UserSettings {
	return &entity.UserSettings{
		UserID:                userID,
		GhostMode:             false,
		UpdateIntervalSeconds: defaultUpdateIntervalSeconds,
	}
}

// SetUpdateInterval changes the suggested seconds between submissions.
func (s *settingsService) SetUpdateInterval(ctx context.Context, userID uuid.UUID, seconds int) (*entity.UserSettings, error) {
	if seconds <= 0 {
		return nil, ErrInvalidUpdateInterval
	}

	return s.mutate(ctx, userID, func(settings *entity.UserSettings) {
		settings.UpdateIntervalSeconds = seconds
	})
}

// EnableGhostMode turns ghost mode on, optionally with an expiry window.
func (s *settingsService) EnableGhostMode(ctx context.Context, userID uuid.UUID, duration *time.Duration, now time.Time) (*entity.UserSettings, error) {
	var until *time.Time
	if duration != nil {
		t := now.Add(*duration)
		until = &t
	}

	return s.mutate(ctx, userID, func(settings *entity.UserSettings) {
		settings.GhostMode = true
		settings.GhostUntil = until
	})
}

// DisableGhostMode turns ghost mode off and clears any expiry.
func (s *settingsService) DisableGhostMode(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	return s.mutate(ctx, userID, func(settings *entity.UserSettings) {
		settings.GhostMode = false
		settings.GhostUntil = nil
	})
}

// IsGhosted reports whether submissions are suppressed at the given instant.
func (s *settingsService) IsGhosted(ctx context.Context, userID uuid.UUID, now time.Time) (bool, error) {
	settings, err := s.Settings(ctx, userID)
	if err != nil {
		return false, err
	}

	return settings.GhostedAt(now), nil
}

// mutate loads (or defaults) the user's settings, applies the change and
// persists the result.
func (s *settingsService) mutate(ctx context.Context, userID uuid.UUID, apply func(*entity.UserSettings)) (*entity.UserSettings, error) {
	settings, err := s.Settings(ctx, userID)
	if err != nil {
		return nil, err
	}

	apply(settings)
	settings.UpdatedAt = time.Now()

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, errors.Wrap(err, "failed to upsert user settings")
	}

	return settings, nil
}
