package repository

import (
	"context"

	"github.com/google/uuid"

	"zenmap/internal/domain/entity"
	"zenmap/internal/errors"
)

// ErrSettingsNotFound is returned when a user has never written settings.
var ErrSettingsNotFound = errors.New("user settings not found")

// SettingsRepository defines the interface for per-user settings persistence.
type SettingsRepository interface {
	// FindByUser retrieves the settings row for a user.
	// Returns ErrSettingsNotFound if the user never saved settings; callers
	// treat that as all-defaults (ghost mode off).
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error)

	// Upsert writes the settings row for the settings' subject user.
	Upsert(ctx context.Context, settings *entity.UserSettings) error
}
