package geo

import (
	"github.com/paulmach/orb"

	"zenmap/internal/domain/entity"
)

// PlaceAt returns the favorite place whose geofence contains the given
// coordinate, or nil if none does. When the point lies inside several
// overlapping geofences the place with the nearest center wins, so the
// result does not depend on input order.
func PlaceAt(lat, lon float64, places []*entity.FavoritePlace) *entity.FavoritePlace {
	point := orb.Point{lon, lat}

	var (
		best     *entity.FavoritePlace
		bestDist float64
	)

	for _, place := range places {
		// Cheap bounding-box reject before the exact distance check.
		if !BoundAround(orb.Point{place.Longitude, place.Latitude}, place.RadiusMeters).Contains(point) {
			continue
		}

		dist := DistanceMeters(lat, lon, place.Latitude, place.Longitude)
		if dist > place.RadiusMeters {
			continue
		}

		if best == nil || dist < bestDist {
			best = place
			bestDist = dist
		}
	}

	return best
}
