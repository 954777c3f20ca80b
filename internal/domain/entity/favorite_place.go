// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PlaceType is a user-chosen category for a favorite place.
type PlaceType string

const (
	// PlaceTypeHome marks the user's home.
	PlaceTypeHome PlaceType = "home"
	// PlaceTypeWork marks the user's workplace.
	PlaceTypeWork PlaceType = "work"
	// PlaceTypeSchool marks a school or campus.
	PlaceTypeSchool PlaceType = "school"
	// PlaceTypeOther is the catch-all category.
	PlaceTypeOther PlaceType = "other"
)

// String returns the string representation of the PlaceType.
func (t PlaceType) String() string {
	return string(t)
}

// IsValid checks if the PlaceType is a valid value.
func (t PlaceType) IsValid() bool {
	switch t {
	case PlaceTypeHome, PlaceTypeWork, PlaceTypeSchool, PlaceTypeOther:
		return true
	default:
		return false
	}
}

// FavoritePlace is a named circular geofence owned by a user. The location
// pipeline only reads places to annotate results with a human label ("at
// home"); it never mutates them.
type FavoritePlace struct {
	ID           uuid.UUID `json:"id"`            // The Global Unique Identifier (GUID) for the place.
	OwnerID      uuid.UUID `json:"owner_id"`      // The user this place belongs to.
	Name         string    `json:"name"`          // A user-chosen label, e.g. "自宅".
	Type         PlaceType `json:"type"`          // The place category.
	Latitude     float64   `json:"lat"`           // The geofence center latitude.
	Longitude    float64   `json:"lon"`           // The geofence center longitude.
	RadiusMeters float64   `json:"radius_meters"` // The geofence radius in meters.
	CreatedAt    time.Time `json:"created_at"`    // When the place was created.
	UpdatedAt    time.Time `json:"updated_at"`    // When the place was last modified.
}
