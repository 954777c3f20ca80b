package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zenmap/internal/domain/entity"
	"zenmap/internal/domain/repository"
	mockRepo "zenmap/internal/mocks/repository"
	"zenmap/internal/usecase"
)

type placeServiceFixtures struct {
	service   usecase.PlaceUsecase
	placeRepo *mockRepo.MockPlaceRepository
}

func createTestPlaceService(t *testing.T) placeServiceFixtures {
	placeRepo := mockRepo.NewMockPlaceRepository(t)

	return placeServiceFixtures{
		service:   NewPlaceService(placeRepo),
		placeRepo: placeRepo,
	}
}

func TestPlaceService_AddPlace(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.placeRepo.EXPECT().
		CreatePlace(ctx, mock.AnythingOfType("*entity.FavoritePlace")).
		Return(nil)

	place, err := fx.service.AddPlace(ctx, ownerID, &usecase.AddPlaceInput{
		Name:         "自宅",
		Type:         entity.PlaceTypeHome,
		Latitude:     35.6812,
		Longitude:    139.7671,
		RadiusMeters: 100,
	})

	require.NoError(t, err)
	assert.Equal(t, ownerID, place.OwnerID)
	assert.Equal(t, "自宅", place.Name)
	assert.NotEqual(t, uuid.Nil, place.ID)
}

func TestPlaceService_AddPlace_Invalid(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	cases := map[string]*usecase.AddPlaceInput{
		"empty name":  {Name: "", Type: entity.PlaceTypeHome, Latitude: 35.68, Longitude: 139.76, RadiusMeters: 100},
		"bad type":    {Name: "会社", Type: entity.PlaceType("castle"), Latitude: 35.68, Longitude: 139.76, RadiusMeters: 100},
		"zero radius": {Name: "会社", Type: entity.PlaceTypeWork, Latitude: 35.68, Longitude: 139.76, RadiusMeters: 0},
		"bad lat":     {Name: "会社", Type: entity.PlaceTypeWork, Latitude: 91, Longitude: 139.76, RadiusMeters: 100},
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := fx.service.AddPlace(ctx, ownerID, input)
			assert.ErrorIs(t, err, ErrInvalidPlace)
		})
	}
}

func TestPlaceService_UpdatePlace_PartialEdit(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	placeID := uuid.New()

	fx.placeRepo.EXPECT().
		FindPlaceByID(ctx, placeID).
		Return(&entity.FavoritePlace{
			ID:           placeID,
			OwnerID:      ownerID,
			Name:         "自宅",
			Type:         entity.PlaceTypeHome,
			Latitude:     35.6812,
			Longitude:    139.7671,
			RadiusMeters: 100,
		}, nil)

	fx.placeRepo.EXPECT().
		UpdatePlace(ctx, mock.AnythingOfType("*entity.FavoritePlace")).
		Return(nil)

	newName := "実家"
	newRadius := 150.0
	place, err := fx.service.UpdatePlace(ctx, ownerID, placeID, &usecase.UpdatePlaceInput{
		Name:         &newName,
		RadiusMeters: &newRadius,
	})

	require.NoError(t, err)
	assert.Equal(t, "実家", place.Name)
	assert.Equal(t, 150.0, place.RadiusMeters)
	// Untouched fields survive the edit.
	assert.Equal(t, entity.PlaceTypeHome, place.Type)
	assert.Equal(t, 35.6812, place.Latitude)
}

func TestPlaceService_UpdatePlace_WrongOwner(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()
	placeID := uuid.New()

	fx.placeRepo.EXPECT().
		FindPlaceByID(ctx, placeID).
		Return(&entity.FavoritePlace{ID: placeID, OwnerID: uuid.New()}, nil)

	_, err := fx.service.UpdatePlace(ctx, uuid.New(), placeID, &usecase.UpdatePlaceInput{})

	assert.ErrorIs(t, err, ErrNotPlaceOwner)
}

func TestPlaceService_DeletePlace(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	placeID := uuid.New()

	fx.placeRepo.EXPECT().
		FindPlaceByID(ctx, placeID).
		Return(&entity.FavoritePlace{ID: placeID, OwnerID: ownerID}, nil)

	fx.placeRepo.EXPECT().
		DeletePlace(ctx, placeID).
		Return(nil)

	require.NoError(t, fx.service.DeletePlace(ctx, ownerID, placeID))
}

func TestPlaceService_DeletePlace_NotFound(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()
	placeID := uuid.New()

	fx.placeRepo.EXPECT().
		FindPlaceByID(ctx, placeID).
		Return(nil, repository.ErrPlaceNotFound)

	err := fx.service.DeletePlace(ctx, uuid.New(), placeID)

	assert.ErrorIs(t, err, ErrPlaceNotFound)
}

func TestPlaceService_PlaceAt_NearestCenterWins(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	home := &entity.FavoritePlace{
		ID: uuid.New(), OwnerID: ownerID, Name: "自宅", Type: entity.PlaceTypeHome,
		Latitude: 35.6812, Longitude: 139.7671, RadiusMeters: 500,
	}
	work := &entity.FavoritePlace{
		ID: uuid.New(), OwnerID: ownerID, Name: "会社", Type: entity.PlaceTypeWork,
		Latitude: 35.6815, Longitude: 139.7675, RadiusMeters: 500,
	}

	fx.placeRepo.EXPECT().
		FindPlacesByOwner(ctx, ownerID).
		Return([]*entity.FavoritePlace{home, work}, nil)

	// The query point sits inside both radii but on top of the work center.
	place, err := fx.service.PlaceAt(ctx, ownerID, 35.6815, 139.7675)

	require.NoError(t, err)
	require.NotNil(t, place)
	assert.Equal(t, work.ID, place.ID)
}

func TestPlaceService_PlaceAt_OutsideEveryPlace(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.placeRepo.EXPECT().
		FindPlacesByOwner(ctx, ownerID).
		Return([]*entity.FavoritePlace{
			{ID: uuid.New(), OwnerID: ownerID, Latitude: 35.6812, Longitude: 139.7671, RadiusMeters: 100},
		}, nil)

	place, err := fx.service.PlaceAt(ctx, ownerID, 35.6580, 139.7016)

	require.NoError(t, err)
	assert.Nil(t, place)
}
