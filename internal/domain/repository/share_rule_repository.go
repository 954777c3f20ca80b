package repository

import (
	"context"

	"github.com/google/uuid"

	"zenmap/internal/domain/entity"
	"zenmap/internal/errors"
)

// Domain-specific errors for share-rule persistence.
var (
	// ErrShareRuleNotFound is returned when no rule exists for an (owner, viewer) pair.
	ErrShareRuleNotFound = errors.New("share rule not found")
)

// ShareRuleRepository defines the interface for directed visibility grants.
type ShareRuleRepository interface {
	// UpsertRule creates or overwrites the rule for the rule's (owner, viewer) pair.
	UpsertRule(ctx context.Context, rule *entity.ShareRule) error

	// UpsertRules creates or overwrites several rules. Callers needing
	// atomicity run this through the TransactionManager.
	UpsertRules(ctx context.Context, rules []*entity.ShareRule) error

	// FindRule retrieves the single rule for an (owner, viewer) pair.
	// Returns ErrShareRuleNotFound if no such rule exists.
	FindRule(ctx context.Context, ownerID, viewerID uuid.UUID) (*entity.ShareRule, error)

	// FindRulesByViewer retrieves every rule granting the viewer visibility.
	FindRulesByViewer(ctx context.Context, viewerID uuid.UUID) ([]*entity.ShareRule, error)

	// FindRulesByOwner retrieves every rule the owner has granted.
	FindRulesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ShareRule, error)

	// DeleteRule removes the owner→viewer rule only; the reverse direction
	// is a separate row and stays untouched.
	DeleteRule(ctx context.Context, ownerID, viewerID uuid.UUID) error

	// DeleteRulePair removes both directed rules between two users.
	DeleteRulePair(ctx context.Context, userA, userB uuid.UUID) error
}
