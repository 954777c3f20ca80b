package postgres

import (
	"context"

	"zenmap/internal/domain/entity"
	domainerrors "zenmap/internal/domain/errors"
	"zenmap/internal/domain/repository"
	"zenmap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsRepository implements the repository.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// FindByUser retrieves the settings row for a user.
func (repo *settingsRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	var settingsM model.UserSettingsModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to find user settings")
	}

	return toUserSettingsDomain(&settingsM), nil
}

// Upsert writes the settings row for the settings' subject user.
func (repo *settingsRepository) Upsert(ctx context.Context, settings *entity.UserSettings) error {
	settingsM := fromUserSettingsDomain(settings)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(settingsM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewStorageError(err, "failed to upsert user settings")
	}

	return nil
}

// --- Mapper Functions ---

func toUserSettingsDomain(data *model.UserSettingsModel) *entity.UserSettings {
	if data == nil {
		return nil
	}

	return &entity.UserSettings{
		UserID:                data.UserID,
		GhostMode:             data.GhostMode,
		GhostUntil:            data.GhostUntil,
		UpdateIntervalSeconds: data.UpdateIntervalSeconds,
		UpdatedAt:             data.UpdatedAt,
	}
}

func fromUserSettingsDomain(data *entity.UserSettings) *model.UserSettingsModel {
	if data == nil {
		return nil
	}

	return &model.UserSettingsModel{
		UserID:                data.UserID,
		GhostMode:             data.GhostMode,
		GhostUntil:            data.GhostUntil,
		UpdateIntervalSeconds: data.UpdateIntervalSeconds,
		UpdatedAt:             data.UpdatedAt,
	}
}
