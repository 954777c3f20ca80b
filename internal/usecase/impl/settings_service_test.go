package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zenmap/internal/domain/entity"
	"zenmap/internal/domain/repository"
	mockRepo "zenmap/internal/mocks/repository"
	"zenmap/internal/usecase"
)

type settingsServiceFixtures struct {
	service      usecase.SettingsUsecase
	settingsRepo *mockRepo.MockSettingsRepository
}

func createTestSettingsService(t *testing.T) settingsServiceFixtures {
	settingsRepo := mockRepo.NewMockSettingsRepository(t)

	return settingsServiceFixtures{
		service:      NewSettingsService(settingsRepo),
		settingsRepo: settingsRepo,
	}
}

func TestSettingsService_Settings_DefaultsWhenMissing(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.settingsRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(nil, repository.ErrSettingsNotFound)

	settings, err := fx.service.Settings(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, settings.UserID)
	assert.False(t, settings.GhostMode)
	assert.Equal(t, defaultUpdateIntervalSeconds, settings.UpdateIntervalSeconds)
}

func TestSettingsService_SetUpdateInterval(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.settingsRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(&entity.UserSettings{UserID: userID, UpdateIntervalSeconds: 30}, nil)

	fx.settingsRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.UserSettings")).
		Return(nil)

	settings, err := fx.service.SetUpdateInterval(ctx, userID, 120)

	require.NoError(t, err)
	assert.Equal(t, 120, settings.UpdateIntervalSeconds)
}

func TestSettingsService_SetUpdateInterval_RejectsNonPositive(t *testing.T) {
	fx := createTestSettingsService(t)

	_, err := fx.service.SetUpdateInterval(context.Background(), uuid.New(), 0)
	assert.ErrorIs(t, err, ErrInvalidUpdateInterval)

	_, err = fx.service.SetUpdateInterval(context.Background(), uuid.New(), -5)
	assert.ErrorIs(t, err, ErrInvalidUpdateInterval)
}

func TestSettingsService_EnableGhostMode_Indefinite(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	userID := uuid.New()

	// First-ever write works off the defaults.
	fx.settingsRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(nil, repository.ErrSettingsNotFound)

	fx.settingsRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.UserSettings")).
		Return(nil)

	settings, err := fx.service.EnableGhostMode(ctx, userID, nil, time.Now())

	require.NoError(t, err)
	assert.True(t, settings.GhostMode)
	assert.Nil(t, settings.GhostUntil)
}

func TestSettingsService_EnableGhostMode_TimedWindow(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	duration := 2 * time.Hour

	fx.settingsRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(&entity.UserSettings{UserID: userID, UpdateIntervalSeconds: 30}, nil)

	fx.settingsRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.UserSettings")).
		Return(nil)

	settings, err := fx.service.EnableGhostMode(ctx, userID, &duration, now)

	require.NoError(t, err)
	assert.True(t, settings.GhostMode)
	require.NotNil(t, settings.GhostUntil)
	assert.Equal(t, now.Add(2*time.Hour), *settings.GhostUntil)
}

func TestSettingsService_DisableGhostMode_ClearsExpiry(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	userID := uuid.New()
	until := time.Now().Add(time.Hour)

	fx.settingsRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(&entity.UserSettings{UserID: userID, GhostMode: true, GhostUntil: &until}, nil)

	fx.settingsRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.UserSettings")).
		Return(nil)

	settings, err := fx.service.DisableGhostMode(ctx, userID)

	require.NoError(t, err)
	assert.False(t, settings.GhostMode)
	assert.Nil(t, settings.GhostUntil)
}

func TestSettingsService_IsGhosted_ExpiryIsLazy(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	until := now.Add(30 * time.Minute)

	// The stored row keeps GhostMode true past expiry; only the clock decides.
	fx.settingsRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(&entity.UserSettings{UserID: userID, GhostMode: true, GhostUntil: &until}, nil).
		Twice()

	ghosted, err := fx.service.IsGhosted(ctx, userID, now)
	require.NoError(t, err)
	assert.True(t, ghosted)

	ghosted, err = fx.service.IsGhosted(ctx, userID, until.Add(time.Second))
	require.NoError(t, err)
	assert.False(t, ghosted)
}

func TestSettingsService_IsGhosted_DefaultsToVisible(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.settingsRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(nil, repository.ErrSettingsNotFound)

	ghosted, err := fx.service.IsGhosted(ctx, userID, time.Now())

	require.NoError(t, err)
	assert.False(t, ghosted)
}
