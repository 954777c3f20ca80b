// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// MotionType is a coarse movement label derived from instantaneous speed.
type MotionType string

const (
	// MotionUnknown indicates no speed information was available.
	MotionUnknown MotionType = "unknown"
	// MotionStationary indicates the user is not moving (speed < 0.5 m/s).
	MotionStationary MotionType = "stationary"
	// MotionWalking indicates walking pace (speed < 2 m/s).
	MotionWalking MotionType = "walking"
	// MotionRunning indicates running pace (speed < 4 m/s).
	MotionRunning MotionType = "running"
	// MotionCycling indicates cycling pace (speed < 8 m/s).
	MotionCycling MotionType = "cycling"
	// MotionDriving indicates driving pace (speed < 30 m/s).
	MotionDriving MotionType = "driving"
	// MotionTransit indicates high-speed transit (speed >= 30 m/s).
	MotionTransit MotionType = "transit"
)

// String returns the string representation of the MotionType.
func (m MotionType) String() string {
	return string(m)
}

// IsValid checks if the MotionType is a valid value.
func (m MotionType) IsValid() bool {
	switch m {
	case MotionUnknown, MotionStationary, MotionWalking, MotionRunning,
		MotionCycling, MotionDriving, MotionTransit:
		return true
	default:
		return false
	}
}
