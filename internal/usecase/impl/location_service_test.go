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
	"zenmap/internal/domain/service"
	mockRepo "zenmap/internal/mocks/repository"
	mockSvc "zenmap/internal/mocks/service"
	"zenmap/internal/usecase"
)

// locationServiceFixtures holds all test dependencies for location service tests.
type locationServiceFixtures struct {
	service       usecase.LocationUsecase
	locationRepo  *mockRepo.MockLocationRepository
	shareRuleRepo *mockRepo.MockShareRuleRepository
	settingsRepo  *mockRepo.MockSettingsRepository
	placeRepo     *mockRepo.MockPlaceRepository
	publisher     *mockSvc.MockEventPublisher
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	shareRuleRepo := mockRepo.NewMockShareRuleRepository(t)
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	placeRepo := mockRepo.NewMockPlaceRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewLocationService(LocationServiceParams{
		LocationRepo:  locationRepo,
		ShareRuleRepo: shareRuleRepo,
		SettingsRepo:  settingsRepo,
		PlaceRepo:     placeRepo,
		Publisher:     publisher,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return locationServiceFixtures{
		service:       service,
		locationRepo:  locationRepo,
		shareRuleRepo: shareRuleRepo,
		settingsRepo:  settingsRepo,
		placeRepo:     placeRepo,
		publisher:     publisher,
	}
}

func TestLocationService_Submit_FirstSample(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	now := time.Now()

	fx.settingsRepo.EXPECT().
		FindByUser(ctx, ownerID).
		Return(nil, repository.ErrSettingsNotFound)

	fx.locationRepo.EXPECT().
		FindCurrentByUser(ctx, ownerID).
		Return(nil, repository.ErrLocationNotFound)

	var stored *entity.CurrentLocation
	fx.locationRepo.EXPECT().
		UpsertCurrent(ctx, mock.AnythingOfType("*entity.CurrentLocation")).
		Run(func(ctx context.Context, location *entity.CurrentLocation) {
			stored = location
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishLocationEvent(ctx, mock.AnythingOfType("*service.LocationEvent")).
		Return(nil)

	err := fx.service.Submit(ctx, ownerID, &usecase.LocationUpdateInput{
		Latitude:  35.6812,
		Longitude: 139.7671,
		Speed:     floatPtr(1.0),
	}, now)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, ownerID, stored.UserID)
	assert.Equal(t, entity.MotionWalking, stored.Motion)
	// A first sample anchors the stay window at submission time.
	assert.True(t, stored.LocationSince.Equal(now))
	assert.True(t, stored.UpdatedAt.Equal(now))
}

func TestLocationService_Submit_GhostedIsSilentNoop(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	now := time.Now()

	fx.settingsRepo.EXPECT().
		FindByUser(ctx, ownerID).
		Return(&entity.UserSettings{UserID: ownerID, GhostMode: true}, nil)

	// No location read, no write, no event. The caller still sees success.
	err := fx.service.Submit(ctx, ownerID, &usecase.LocationUpdateInput{
		Latitude:  35.6812,
		Longitude: 139.7671,
	}, now)

	require.NoError(t, err)
}

func TestLocationService_Submit_ExpiredGhostPublishes(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	now := time.Now()
	lapsed := now.Add(-time.Hour)

	fx.settingsRepo.EXPECT().
		FindByUser(ctx, ownerID).
		Return(&entity.UserSettings{UserID: ownerID, GhostMode: true, GhostUntil: &lapsed}, nil)

	fx.locationRepo.EXPECT().
		FindCurrentByUser(ctx, ownerID).
		Return(nil, repository.ErrLocationNotFound)

	fx.locationRepo.EXPECT().
		UpsertCurrent(ctx, mock.AnythingOfType("*entity.CurrentLocation")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishLocationEvent(ctx, mock.AnythingOfType("*service.LocationEvent")).
		Return(nil)

	err := fx.service.Submit(ctx, ownerID, &usecase.LocationUpdateInput{
		Latitude:  35.6812,
		Longitude: 139.7671,
	}, now)

	require.NoError(t, err)
}

func TestLocationService_Submit_KeepsStayAnchorWithinHysteresis(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	anchorTime := time.Now().Add(-30 * time.Minute)
	now := time.Now()

	fx.settingsRepo.EXPECT().
		FindByUser(ctx, ownerID).
		Return(nil, repository.ErrSettingsNotFound)

	fx.locationRepo.EXPECT().
		FindCurrentByUser(ctx, ownerID).
		Return(&entity.CurrentLocation{
			UserID:        ownerID,
			Latitude:      35.6812,
			Longitude:     139.7671,
			LocationSince: anchorTime,
		}, nil)

	var stored *entity.CurrentLocation
	fx.locationRepo.EXPECT().
		UpsertCurrent(ctx, mock.AnythingOfType("*entity.CurrentLocation")).
		Run(func(ctx context.Context, location *entity.CurrentLocation) {
			stored = location
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishLocationEvent(ctx, mock.AnythingOfType("*service.LocationEvent")).
		Return(nil)

	// About 47m from the previous point, inside the 50m hysteresis.
	err := fx.service.Submit(ctx, ownerID, &usecase.LocationUpdateInput{
		Latitude:  35.6815,
		Longitude: 139.7675,
	}, now)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.LocationSince.Equal(anchorTime), "stay anchor should survive a small move")
}

func TestLocationService_Submit_ResetsStayAnchorOnRealMove(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	anchorTime := time.Now().Add(-30 * time.Minute)
	now := time.Now()

	fx.settingsRepo.EXPECT().
		FindByUser(ctx, ownerID).
		Return(nil, repository.ErrSettingsNotFound)

	fx.locationRepo.EXPECT().
		FindCurrentByUser(ctx, ownerID).
		Return(&entity.CurrentLocation{
			UserID:        ownerID,
			Latitude:      35.6812,
			Longitude:     139.7671,
			LocationSince: anchorTime,
		}, nil)

	var stored *entity.CurrentLocation
	fx.locationRepo.EXPECT().
		UpsertCurrent(ctx, mock.AnythingOfType("*entity.CurrentLocation")).
		Run(func(ctx context.Context, location *entity.CurrentLocation) {
			stored = location
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishLocationEvent(ctx, mock.AnythingOfType("*service.LocationEvent")).
		Return(nil)

	// Shibuya, several kilometers away.
	err := fx.service.Submit(ctx, ownerID, &usecase.LocationUpdateInput{
		Latitude:  35.6580,
		Longitude: 139.7016,
	}, now)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.LocationSince.Equal(now))
}

func TestLocationService_Submit_MotionOverrideWins(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	now := time.Now()
	override := entity.MotionCycling

	fx.settingsRepo.EXPECT().
		FindByUser(ctx, ownerID).
		Return(nil, repository.ErrSettingsNotFound)

	fx.locationRepo.EXPECT().
		FindCurrentByUser(ctx, ownerID).
		Return(nil, repository.ErrLocationNotFound)

	var stored *entity.CurrentLocation
	fx.locationRepo.EXPECT().
		UpsertCurrent(ctx, mock.AnythingOfType("*entity.CurrentLocation")).
		Run(func(ctx context.Context, location *entity.CurrentLocation) {
			stored = location
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishLocationEvent(ctx, mock.AnythingOfType("*service.LocationEvent")).
		Return(nil)

	err := fx.service.Submit(ctx, ownerID, &usecase.LocationUpdateInput{
		Latitude:       35.6812,
		Longitude:      139.7671,
		Speed:          floatPtr(10.0), // would classify as driving
		MotionOverride: &override,
	}, now)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.MotionCycling, stored.Motion)
}

func TestLocationService_Submit_InvalidCoordinate(t *testing.T) {
	fx := createTestLocationService(t)

	err := fx.service.Submit(context.Background(), uuid.New(), &usecase.LocationUpdateInput{
		Latitude:  91.0,
		Longitude: 139.7671,
	}, time.Now())

	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}

func TestLocationService_Submit_StorageErrorPropagates(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	now := time.Now()

	fx.settingsRepo.EXPECT().
		FindByUser(ctx, ownerID).
		Return(nil, repository.ErrSettingsNotFound)

	fx.locationRepo.EXPECT().
		FindCurrentByUser(ctx, ownerID).
		Return(nil, repository.ErrLocationNotFound)

	fx.locationRepo.EXPECT().
		UpsertCurrent(ctx, mock.AnythingOfType("*entity.CurrentLocation")).
		Return(assert.AnError)

	// No publish on a failed write.
	err := fx.service.Submit(ctx, ownerID, &usecase.LocationUpdateInput{
		Latitude:  35.6812,
		Longitude: 139.7671,
	}, now)

	assert.ErrorIs(t, err, assert.AnError)
}

func TestLocationService_Submit_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	now := time.Now()

	fx.settingsRepo.EXPECT().
		FindByUser(ctx, ownerID).
		Return(nil, repository.ErrSettingsNotFound)

	fx.locationRepo.EXPECT().
		FindCurrentByUser(ctx, ownerID).
		Return(nil, repository.ErrLocationNotFound)

	fx.locationRepo.EXPECT().
		UpsertCurrent(ctx, mock.AnythingOfType("*entity.CurrentLocation")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishLocationEvent(ctx, mock.AnythingOfType("*service.LocationEvent")).
		Return(assert.AnError)

	err := fx.service.Submit(ctx, ownerID, &usecase.LocationUpdateInput{
		Latitude:  35.6812,
		Longitude: 139.7671,
	}, now)

	require.NoError(t, err)
}

func TestLocationService_VisibleLocations_FiltersInactiveRules(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	activeOwner := uuid.New()
	revokedOwner := uuid.New()
	expiredOwner := uuid.New()
	now := time.Now()
	lapsed := now.Add(-time.Minute)

	fx.shareRuleRepo.EXPECT().
		FindRulesByViewer(ctx, viewerID).
		Return([]*entity.ShareRule{
			{OwnerID: activeOwner, ViewerID: viewerID, Level: entity.ShareLevelCurrent},
			{OwnerID: revokedOwner, ViewerID: viewerID, Level: entity.ShareLevelNone},
			{OwnerID: expiredOwner, ViewerID: viewerID, Level: entity.ShareLevelCurrent, ExpiresAt: &lapsed},
		}, nil)

	fx.locationRepo.EXPECT().
		FindCurrentByUsers(ctx, []uuid.UUID{viewerID, activeOwner}).
		Return([]*entity.CurrentLocation{
			{UserID: activeOwner, Latitude: 35.6812, Longitude: 139.7671},
		}, nil)

	locations, err := fx.service.VisibleLocations(ctx, viewerID, now)

	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, activeOwner, locations[0].UserID)
}

func TestLocationService_VisibleLocationsWithPlaces(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	friendID := uuid.New()
	now := time.Now()

	fx.shareRuleRepo.EXPECT().
		FindRulesByViewer(ctx, viewerID).
		Return([]*entity.ShareRule{
			{OwnerID: friendID, ViewerID: viewerID, Level: entity.ShareLevelCurrent},
		}, nil)

	fx.locationRepo.EXPECT().
		FindCurrentByUsers(ctx, []uuid.UUID{viewerID, friendID}).
		Return([]*entity.CurrentLocation{
			{UserID: friendID, Latitude: 35.6812, Longitude: 139.7671},
		}, nil)

	home := &entity.FavoritePlace{
		ID:           uuid.New(),
		OwnerID:      friendID,
		Name:         "自宅",
		Type:         entity.PlaceTypeHome,
		Latitude:     35.6812,
		Longitude:    139.7671,
		RadiusMeters: 100,
	}
	fx.placeRepo.EXPECT().
		FindPlacesByOwner(ctx, friendID).
		Return([]*entity.FavoritePlace{home}, nil)

	annotated, err := fx.service.VisibleLocationsWithPlaces(ctx, viewerID, now)

	require.NoError(t, err)
	require.Len(t, annotated, 1)
	require.NotNil(t, annotated[0].Place)
	assert.Equal(t, home.ID, annotated[0].Place.ID)
}

func TestLocationService_RecordHistory(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	var stored *entity.LocationHistory
	fx.locationRepo.EXPECT().
		AppendHistory(ctx, mock.AnythingOfType("*entity.LocationHistory")).
		Run(func(ctx context.Context, sample *entity.LocationHistory) {
			stored = sample
		}).
		Return(nil)

	err := fx.service.RecordHistory(ctx, ownerID, 35.6812, 139.7671, floatPtr(12.5))

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, ownerID, stored.UserID)
	assert.Equal(t, 12.5, *stored.Accuracy)
}

func TestLocationService_History_DefaultLimit(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.locationRepo.EXPECT().
		FindHistoryByUser(ctx, userID, 100, (*time.Time)(nil)).
		Return([]*entity.LocationHistory{}, nil)

	samples, err := fx.service.History(ctx, userID, 0, nil)

	require.NoError(t, err)
	assert.Empty(t, samples)
}

// Submit builds the event from the committed row, not the raw input.
func TestLocationService_Submit_EventCarriesMotion(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	now := time.Now()

	fx.settingsRepo.EXPECT().
		FindByUser(ctx, ownerID).
		Return(nil, repository.ErrSettingsNotFound)

	fx.locationRepo.EXPECT().
		FindCurrentByUser(ctx, ownerID).
		Return(nil, repository.ErrLocationNotFound)

	fx.locationRepo.EXPECT().
		UpsertCurrent(ctx, mock.AnythingOfType("*entity.CurrentLocation")).
		Return(nil)

	var published *service.LocationEvent
	fx.publisher.EXPECT().
		PublishLocationEvent(ctx, mock.AnythingOfType("*service.LocationEvent")).
		Run(func(ctx context.Context, event *service.LocationEvent) {
			published = event
		}).
		Return(nil)

	err := fx.service.Submit(ctx, ownerID, &usecase.LocationUpdateInput{
		Latitude:  35.6812,
		Longitude: 139.7671,
		Speed:     floatPtr(5.0),
	}, now)

	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, ownerID.String(), published.UserID)
	assert.Equal(t, entity.MotionCycling.String(), published.Motion)
}

func TestLocationService_FriendHistory_HistoryGrant(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	ownerID := uuid.New()
	now := time.Now()

	fx.shareRuleRepo.EXPECT().
		FindRule(ctx, ownerID, viewerID).
		Return(&entity.ShareRule{
			OwnerID:  ownerID,
			ViewerID: viewerID,
			Level:    entity.ShareLevelHistory,
		}, nil)

	fx.locationRepo.EXPECT().
		FindHistoryByUser(ctx, ownerID, 100, (*time.Time)(nil)).
		Return([]*entity.LocationHistory{{UserID: ownerID}}, nil)

	samples, err := fx.service.FriendHistory(ctx, viewerID, ownerID, 0, nil, now)

	require.NoError(t, err)
	assert.Len(t, samples, 1)
}

// A current-level grant exposes the live location only, never the trail.
func TestLocationService_FriendHistory_CurrentGrantDenied(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	ownerID := uuid.New()

	fx.shareRuleRepo.EXPECT().
		FindRule(ctx, ownerID, viewerID).
		Return(&entity.ShareRule{
			OwnerID:  ownerID,
			ViewerID: viewerID,
			Level:    entity.ShareLevelCurrent,
		}, nil)

	_, err := fx.service.FriendHistory(ctx, viewerID, ownerID, 0, nil, time.Now())

	require.ErrorIs(t, err, ErrHistoryNotShared)
}

func TestLocationService_FriendHistory_NoRuleDenied(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	ownerID := uuid.New()

	fx.shareRuleRepo.EXPECT().
		FindRule(ctx, ownerID, viewerID).
		Return(nil, repository.ErrShareRuleNotFound)

	_, err := fx.service.FriendHistory(ctx, viewerID, ownerID, 0, nil, time.Now())

	require.ErrorIs(t, err, ErrHistoryNotShared)
}

func TestLocationService_FriendHistory_ExpiredGrantDenied(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	ownerID := uuid.New()
	now := time.Now()
	expired := now.Add(-time.Hour)

	fx.shareRuleRepo.EXPECT().
		FindRule(ctx, ownerID, viewerID).
		Return(&entity.ShareRule{
			OwnerID:   ownerID,
			ViewerID:  viewerID,
			Level:     entity.ShareLevelHistory,
			ExpiresAt: &expired,
		}, nil)

	_, err := fx.service.FriendHistory(ctx, viewerID, ownerID, 0, nil, now)

	require.ErrorIs(t, err, ErrHistoryNotShared)
}

// Reading your own trail never consults the share rule table.
func TestLocationService_FriendHistory_Self(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.locationRepo.EXPECT().
		FindHistoryByUser(ctx, userID, 25, (*time.Time)(nil)).
		Return([]*entity.LocationHistory{}, nil)

	samples, err := fx.service.FriendHistory(ctx, userID, userID, 25, nil, time.Now())

	require.NoError(t, err)
	assert.Empty(t, samples)
}
