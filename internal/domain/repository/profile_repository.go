package repository

import (
	"context"

	"github.com/google/uuid"

	"zenmap/internal/domain/entity"
	"zenmap/internal/errors"
)

// Domain-specific errors for profile and credential persistence.
var (
	// ErrProfileNotFound is returned when a profile does not exist.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrCredentialNotFound is returned when no credential exists for an email.
	ErrCredentialNotFound = errors.New("credential not found")
	// ErrDuplicateIdentity is returned when a username or email is taken.
	ErrDuplicateIdentity = errors.New("username or email already registered")
)

// ProfileRepository defines the interface for identity persistence: the
// public profile plus the private login credential.
type ProfileRepository interface {
	// CreateProfile persists a new profile.
	CreateProfile(ctx context.Context, profile *entity.Profile) error

	// FindProfileByUser retrieves a profile by user ID.
	FindProfileByUser(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// SearchProfiles retrieves profiles whose username or display name
	// contains the query (case-insensitive), capped by limit.
	SearchProfiles(ctx context.Context, query string, limit int) ([]*entity.Profile, error)

	// UpdateProfile overwrites an existing profile.
	UpdateProfile(ctx context.Context, profile *entity.Profile) error

	// CreateCredential persists a new login credential.
	CreateCredential(ctx context.Context, credential *entity.Credential) error

	// FindCredentialByEmail retrieves a credential by its login email.
	FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error)
}
