package service

import (
	"context"
	"time"
)

// LocationEvent is the row-change notification emitted after a successful
// current-location write. Downstream consumers (history worker, map UIs)
// subscribe to it; the engine's own correctness never depends on delivery.
type LocationEvent struct {
	RequestID string   `json:"request_id,omitempty"` // For distributed tracing
	UserID    string   `json:"user_id"`
	Latitude  float64  `json:"lat"`
	Longitude float64  `json:"lon"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
	Motion    string   `json:"motion"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLocationEvent publishes a location-change event for async processing
	PublishLocationEvent(ctx context.Context, event *LocationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
