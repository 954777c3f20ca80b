package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"zenmap/internal/domain/entity"
)

// SettingsUsecase manages per-user sharing preferences, ghost mode above
// all. Reads for a user without a stored row return the defaults.
type SettingsUsecase interface {
	// Settings returns the user's stored settings, or the defaults when
	// none exist yet.
	Settings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error)

	// SetUpdateInterval changes the suggested seconds between device
	// submissions.
	SetUpdateInterval(ctx context.Context, userID uuid.UUID, seconds int) (*entity.UserSettings, error)

	// EnableGhostMode turns ghost mode on. A nil duration ghosts the user
	// until they explicitly disable it; otherwise ghost mode lapses on its
	// own once now+duration passes.
	EnableGhostMode(ctx context.Context, userID uuid.UUID, duration *time.Duration, now time.Time) (*entity.UserSettings, error)

	// DisableGhostMode turns ghost mode off and clears any expiry.
	DisableGhostMode(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error)

	// IsGhosted reports whether the user's submissions are suppressed at
	// the given instant. An expired ghost window counts as not ghosted
	// even before the stored flag is cleaned up.
	IsGhosted(ctx context.Context, userID uuid.UUID, now time.Time) (bool, error)
}
