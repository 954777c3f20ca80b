// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BumpEvent is a permanent record that two users were observed within a
// given distance of each other. It is append-only: the engine never
// updates, deletes, or deduplicates bump rows, so repeated encounters
// between the same pair produce repeated history entries.
type BumpEvent struct {
	ID             uuid.UUID `json:"id"`              // The Global Unique Identifier (GUID) for the event.
	InitiatorID    uuid.UUID `json:"initiator_id"`    // The user who confirmed the encounter.
	CounterpartID  uuid.UUID `json:"counterpart_id"`  // The nearby user involved.
	DistanceMeters float64   `json:"distance_meters"` // The observed distance between the pair.
	Latitude       float64   `json:"lat"`             // Where the encounter was recorded.
	Longitude      float64   `json:"lon"`             // Where the encounter was recorded.
	CreatedAt      time.Time `json:"created_at"`      // When the encounter was recorded.
}
