// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CurrentLocation is the canonical "where is this user right now" record.
// There is exactly one live row per user; every accepted location sample
// overwrites it.
type CurrentLocation struct {
	UserID        uuid.UUID  `json:"user_id"`        // The owner of this location row.
	Latitude      float64    `json:"lat"`            // The geographic latitude.
	Longitude     float64    `json:"lon"`            // The geographic longitude.
	Accuracy      *float64   `json:"accuracy"`       // GPS accuracy in meters, if reported.
	BatteryLevel  *int       `json:"battery_level"`  // Device battery percentage (0-100), if reported.
	IsCharging    bool       `json:"is_charging"`    // Whether the device was charging at sample time.
	Speed         *float64   `json:"speed"`          // Instantaneous speed in m/s, if reported.
	Motion        MotionType `json:"motion"`         // Movement label derived from speed (or caller override).
	LocationSince time.Time  `json:"location_since"` // When the user started staying near the current position.
	UpdatedAt     time.Time  `json:"updated_at"`     // When this row was last overwritten.
}

// LocationHistory is an append-only trail of past positions for a user.
// It is never read by the publication pipeline itself.
type LocationHistory struct {
	ID         int64     `json:"id"`          // Monotonic row identifier.
	UserID     uuid.UUID `json:"user_id"`     // The user this sample belongs to.
	Latitude   float64   `json:"lat"`         // The geographic latitude.
	Longitude  float64   `json:"lon"`         // The geographic longitude.
	Accuracy   *float64  `json:"accuracy"`    // GPS accuracy in meters, if reported.
	RecordedAt time.Time `json:"recorded_at"` // When the sample was recorded.
}
