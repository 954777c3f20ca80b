// Package geo contains the pure geographic and motion primitives of the
// location engine: great-circle distance, speed classification, the
// stay-duration anchor rule, and geofence matching. Everything here is
// deterministic and free of I/O.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// earthRadiusMeters is the mean Earth radius used by the Haversine formula.
// Accurate to a few meters for the sub-50km distances this domain cares
// about; no ellipsoidal correction needed.
const earthRadiusMeters = 6371000.0

// DistanceMeters returns the great-circle distance between two coordinates
// in meters, via the Haversine formula.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := toRadians(lat1)
	lat2Rad := toRadians(lat2)
	deltaLat := toRadians(lat2 - lat1)
	deltaLon := toRadians(lon2 - lon1)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// PointDistanceMeters is DistanceMeters over orb points (lon/lat order).
func PointDistanceMeters(a, b orb.Point) float64 {
	return DistanceMeters(a.Lat(), a.Lon(), b.Lat(), b.Lon())
}

// BoundAround returns a bounding box that fully contains the circle of the
// given radius around the center point. Used as a cheap pre-filter before
// exact Haversine checks; the box is padded, never tight.
func BoundAround(center orb.Point, radiusMeters float64) orb.Bound {
	// One degree of latitude is ~111.32 km everywhere; longitude shrinks
	// with the cosine of the latitude.
	latDelta := radiusMeters / 111320.0
	cosLat := math.Cos(toRadians(center.Lat()))
	if cosLat < 0.01 {
		cosLat = 0.01 // polar degenerate case: fall back to a wide box
	}
	lonDelta := radiusMeters / (111320.0 * cosLat)

	return orb.Bound{
		Min: orb.Point{center.Lon() - lonDelta, center.Lat() - latDelta},
		Max: orb.Point{center.Lon() + lonDelta, center.Lat() + latDelta},
	}
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
