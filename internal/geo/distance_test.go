package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_Symmetry(t *testing.T) {
	lat1, lon1 := 35.6812, 139.7671 // Tokyo Station
	lat2, lon2 := 35.6580, 139.7016 // Shibuya

	forward := DistanceMeters(lat1, lon1, lat2, lon2)
	backward := DistanceMeters(lat2, lon2, lat1, lon1)

	assert.InDelta(t, forward, backward, 1e-9)
}

func TestDistanceMeters_Zero(t *testing.T) {
	assert.InDelta(t, 0, DistanceMeters(35.6812, 139.7671, 35.6812, 139.7671), 1e-9)
}

func TestDistanceMeters_KnownDistances(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		wantMeters             float64
		tolerance              float64
	}{
		{
			name: "short hop near Tokyo Station",
			lat1: 35.6812, lon1: 139.7671,
			lat2: 35.6815, lon2: 139.7675,
			wantMeters: 47,
			tolerance:  8,
		},
		{
			name: "Tokyo Station to Shibuya",
			lat1: 35.6812, lon1: 139.7671,
			lat2: 35.6580, lon2: 139.7016,
			wantMeters: 6490,
			tolerance:  200,
		},
		{
			name: "across the equator",
			lat1: 0.0, lon1: 0.0,
			lat2: 1.0, lon2: 0.0,
			wantMeters: 111195,
			tolerance:  100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceMeters(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.wantMeters, got, tt.tolerance)
		})
	}
}

func TestBoundAround_ContainsCircle(t *testing.T) {
	center := orb.Point{139.7671, 35.6812}
	bound := BoundAround(center, 500)

	// Points on the circle's cardinal edges must fall inside the padded box.
	north := orb.Point{center.Lon(), center.Lat() + 500/111320.0}
	assert.True(t, bound.Contains(north))
	assert.True(t, bound.Contains(center))

	// A point far outside must be rejected.
	shibuya := orb.Point{139.7016, 35.6580}
	assert.False(t, bound.Contains(shibuya))
}
