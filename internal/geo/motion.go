package geo

import (
	"time"

	"zenmap/internal/domain/entity"
)

// Speed thresholds in m/s. The bands are contiguous and exhaustive, lower
// bound inclusive: [0,0.5) stationary, [0.5,2) walking, [2,4) running,
// [4,8) cycling, [8,30) driving, [30,∞) transit.
const (
	speedStationaryMax = 0.5
	speedWalkingMax    = 2.0
	speedRunningMax    = 4.0
	speedCyclingMax    = 8.0
	speedDrivingMax    = 30.0
)

// DefaultStayHysteresisMeters is how far a new sample must land from the
// stored position before the location-since anchor resets. Positional
// jitter below this must not reset "how long have I been here".
const DefaultStayHysteresisMeters = 50.0

// ClassifyMotion maps an instantaneous speed to a motion category.
// A nil speed means the sampling device reported nothing.
func ClassifyMotion(speedMetersPerSecond *float64) entity.MotionType {
	if speedMetersPerSecond == nil {
		return entity.MotionUnknown
	}

	switch speed := *speedMetersPerSecond; {
	case speed < speedStationaryMax:
		return entity.MotionStationary
	case speed < speedWalkingMax:
		return entity.MotionWalking
	case speed < speedRunningMax:
		return entity.MotionRunning
	case speed < speedCyclingMax:
		return entity.MotionCycling
	case speed < speedDrivingMax:
		return entity.MotionDriving
	default:
		return entity.MotionTransit
	}
}

// StayAnchor is the previous stored position and its location-since
// timestamp, as read back from storage. It must come from the persisted
// row, not an in-process cache, so the rule survives process restarts.
type StayAnchor struct {
	Latitude  float64
	Longitude float64
	Since     time.Time
}

// ResolveLocationSince decides the location-since anchor for a new sample.
// No previous record, or a move of at least hysteresisMeters, resets the
// anchor to now; anything closer keeps the previous anchor unchanged.
func ResolveLocationSince(prev *StayAnchor, newLat, newLon float64, hysteresisMeters float64, now time.Time) time.Time {
	if prev == nil || prev.Since.IsZero() {
		return now
	}

	if DistanceMeters(prev.Latitude, prev.Longitude, newLat, newLon) >= hysteresisMeters {
		return now
	}

	return prev.Since
}
