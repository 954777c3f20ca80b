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
	mockRepo "zenmap/internal/mocks/repository"
	mockUsecase "zenmap/internal/mocks/usecase"
	"zenmap/internal/usecase"
)

type proximityServiceFixtures struct {
	service         usecase.ProximityUsecase
	locationUsecase *mockUsecase.MockLocationUsecase
	bumpRepo        *mockRepo.MockBumpRepository
}

func createTestProximityService(t *testing.T) proximityServiceFixtures {
	locationUsecase := mockUsecase.NewMockLocationUsecase(t)
	bumpRepo := mockRepo.NewMockBumpRepository(t)

	service := NewProximityService(ProximityServiceParams{
		LocationUsecase: locationUsecase,
		BumpRepo:        bumpRepo,
		Config:          newTestConfig(),
	})

	return proximityServiceFixtures{
		service:         service,
		locationUsecase: locationUsecase,
		bumpRepo:        bumpRepo,
	}
}

func TestProximityService_FindNearby_SortedByDistance(t *testing.T) {
	fx := createTestProximityService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	nearID := uuid.New()
	farID := uuid.New()
	now := time.Now()

	fx.locationUsecase.EXPECT().
		VisibleLocations(ctx, requesterID, now).
		Return([]*entity.CurrentLocation{
			// ~500m north of Tokyo Station.
			{UserID: farID, Latitude: 35.6857, Longitude: 139.7671},
			// ~47m away.
			{UserID: nearID, Latitude: 35.6815, Longitude: 139.7675},
		}, nil)

	nearby, err := fx.service.FindNearby(ctx, requesterID, 35.6812, 139.7671, 1000, now)

	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, nearID, nearby[0].UserID)
	assert.Equal(t, farID, nearby[1].UserID)
	assert.Less(t, nearby[0].DistanceMeters, nearby[1].DistanceMeters)
	assert.InDelta(t, 47, nearby[0].DistanceMeters, 10)
}

func TestProximityService_FindNearby_TieBreakOnUserID(t *testing.T) {
	fx := createTestProximityService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	userA := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	userB := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	now := time.Now()

	// Both friends share the exact same point. Listing userB first
	// proves the sort, not the input order, decides.
	fx.locationUsecase.EXPECT().
		VisibleLocations(ctx, requesterID, now).
		Return([]*entity.CurrentLocation{
			{UserID: userB, Latitude: 35.6815, Longitude: 139.7675},
			{UserID: userA, Latitude: 35.6815, Longitude: 139.7675},
		}, nil)

	nearby, err := fx.service.FindNearby(ctx, requesterID, 35.6812, 139.7671, 1000, now)

	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, userA, nearby[0].UserID)
	assert.Equal(t, userB, nearby[1].UserID)
}

func TestProximityService_FindNearby_ExcludesSelfAndOutOfRange(t *testing.T) {
	fx := createTestProximityService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	friendID := uuid.New()
	now := time.Now()

	fx.locationUsecase.EXPECT().
		VisibleLocations(ctx, requesterID, now).
		Return([]*entity.CurrentLocation{
			{UserID: requesterID, Latitude: 35.6812, Longitude: 139.7671},
			{UserID: friendID, Latitude: 35.6815, Longitude: 139.7675},
			// Shibuya, well outside a 1km radius.
			{UserID: uuid.New(), Latitude: 35.6580, Longitude: 139.7016},
		}, nil)

	nearby, err := fx.service.FindNearby(ctx, requesterID, 35.6812, 139.7671, 1000, now)

	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, friendID, nearby[0].UserID)
}

func TestProximityService_FindNearby_ZeroRadiusUsesDefault(t *testing.T) {
	fx := createTestProximityService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	friendID := uuid.New()
	now := time.Now()

	fx.locationUsecase.EXPECT().
		VisibleLocations(ctx, requesterID, now).
		Return([]*entity.CurrentLocation{
			// ~500m away, inside the 1000m default.
			{UserID: friendID, Latitude: 35.6857, Longitude: 139.7671},
		}, nil)

	nearby, err := fx.service.FindNearby(ctx, requesterID, 35.6812, 139.7671, 0, now)

	require.NoError(t, err)
	require.Len(t, nearby, 1)
}

func TestProximityService_FindNearby_ClampsOversizedRadius(t *testing.T) {
	fx := createTestProximityService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	now := time.Now()

	// Shibuya is ~6km from Tokyo Station. A 100km request clamps to the
	// configured 5km ceiling, so it must not appear.
	fx.locationUsecase.EXPECT().
		VisibleLocations(ctx, requesterID, now).
		Return([]*entity.CurrentLocation{
			{UserID: uuid.New(), Latitude: 35.6580, Longitude: 139.7016},
		}, nil)

	nearby, err := fx.service.FindNearby(ctx, requesterID, 35.6812, 139.7671, 100000, now)

	require.NoError(t, err)
	assert.Empty(t, nearby)
}

func TestProximityService_FindNearby_NegativeRadius(t *testing.T) {
	fx := createTestProximityService(t)

	_, err := fx.service.FindNearby(context.Background(), uuid.New(), 35.6812, 139.7671, -1, time.Now())

	assert.ErrorIs(t, err, ErrInvalidRadius)
}

func TestProximityService_FindNearby_InvalidCoordinate(t *testing.T) {
	fx := createTestProximityService(t)

	_, err := fx.service.FindNearby(context.Background(), uuid.New(), 95, 139.7671, 1000, time.Now())

	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}

func TestProximityService_RecordBump(t *testing.T) {
	fx := createTestProximityService(t)

	ctx := context.Background()
	initiatorID := uuid.New()
	counterpartID := uuid.New()

	var stored *entity.BumpEvent
	fx.bumpRepo.EXPECT().
		CreateBump(ctx, mock.AnythingOfType("*entity.BumpEvent")).
		Run(func(ctx context.Context, bump *entity.BumpEvent) {
			stored = bump
		}).
		Return(nil)

	bump, err := fx.service.RecordBump(ctx, initiatorID, counterpartID, 3.2, 35.6812, 139.7671)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, initiatorID, bump.InitiatorID)
	assert.Equal(t, counterpartID, bump.CounterpartID)
	assert.Equal(t, 3.2, bump.DistanceMeters)
	assert.NotEqual(t, uuid.Nil, bump.ID)
}

// The reported distance is client-measured and stored verbatim, even
// when the sensor read comes out negative.
func TestProximityService_RecordBump_StoresReportedDistance(t *testing.T) {
	fx := createTestProximityService(t)

	ctx := context.Background()
	initiatorID := uuid.New()
	counterpartID := uuid.New()

	var stored *entity.BumpEvent
	fx.bumpRepo.EXPECT().
		CreateBump(ctx, mock.AnythingOfType("*entity.BumpEvent")).
		Run(func(ctx context.Context, bump *entity.BumpEvent) {
			stored = bump
		}).
		Return(nil)

	bump, err := fx.service.RecordBump(ctx, initiatorID, counterpartID, -0.4, 35.6812, 139.7671)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, -0.4, bump.DistanceMeters)
	assert.Equal(t, -0.4, stored.DistanceMeters)
}

func TestProximityService_RecordBump_Self(t *testing.T) {
	fx := createTestProximityService(t)

	userID := uuid.New()
	_, err := fx.service.RecordBump(context.Background(), userID, userID, 0, 35.6812, 139.7671)

	assert.ErrorIs(t, err, ErrSelfBump)
}

func TestProximityService_BumpHistory_DefaultLimit(t *testing.T) {
	fx := createTestProximityService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.bumpRepo.EXPECT().
		FindBumpsByUser(ctx, userID, 100, (*time.Time)(nil)).
		Return([]*entity.BumpEvent{}, nil)

	bumps, err := fx.service.BumpHistory(ctx, userID, 0, nil)

	require.NoError(t, err)
	assert.Empty(t, bumps)
}
