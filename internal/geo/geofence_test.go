package geo

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"zenmap/internal/domain/entity"
)

func place(name string, lat, lon, radius float64) *entity.FavoritePlace {
	return &entity.FavoritePlace{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		Name:         name,
		Type:         entity.PlaceTypeOther,
		Latitude:     lat,
		Longitude:    lon,
		RadiusMeters: radius,
	}
}

func TestPlaceAt(t *testing.T) {
	home := place("home", 35.6812, 139.7671, 100)
	office := place("office", 35.6580, 139.7016, 150)

	t.Run("inside a single geofence", func(t *testing.T) {
		got := PlaceAt(35.6813, 139.7671, []*entity.FavoritePlace{home, office})
		assert.Equal(t, home.ID, got.ID)
	})

	t.Run("outside every geofence", func(t *testing.T) {
		got := PlaceAt(35.70, 139.80, []*entity.FavoritePlace{home, office})
		assert.Nil(t, got)
	})

	t.Run("no places", func(t *testing.T) {
		assert.Nil(t, PlaceAt(35.6812, 139.7671, nil))
	})

	t.Run("overlapping geofences pick the nearest center", func(t *testing.T) {
		// Both circles contain the probe point; "near" has the closer center
		// even though "wide" comes first and has the larger radius.
		wide := place("wide", 35.6812, 139.7671, 500)
		near := place("near", 35.6815, 139.7675, 200)

		got := PlaceAt(35.6816, 139.7676, []*entity.FavoritePlace{wide, near})
		assert.Equal(t, near.ID, got.ID)

		// Order must not matter.
		got = PlaceAt(35.6816, 139.7676, []*entity.FavoritePlace{near, wide})
		assert.Equal(t, near.ID, got.ID)
	})

	t.Run("on the radius boundary counts as inside", func(t *testing.T) {
		spot := place("spot", 35.6812, 139.7671, 50)
		// ~49m away, just inside the 50m radius.
		got := PlaceAt(35.6812+49/111320.0, 139.7671, []*entity.FavoritePlace{spot})
		assert.NotNil(t, got)
	})
}
