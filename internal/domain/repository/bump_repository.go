package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"zenmap/internal/domain/entity"
)

// BumpRepository defines the interface for the append-only encounter log.
// There is deliberately no update or delete: bump events are permanent facts.
type BumpRepository interface {
	// CreateBump appends a new encounter record.
	CreateBump(ctx context.Context, bump *entity.BumpEvent) error

	// FindBumpsByUser retrieves events where the user is initiator or
	// counterpart, newest first, optionally capped by limit (<=0 means no
	// cap) and bounded below by since.
	FindBumpsByUser(ctx context.Context, userID uuid.UUID, limit int, since *time.Time) ([]*entity.BumpEvent, error)
}
