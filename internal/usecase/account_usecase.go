package usecase

import (
	"context"

	"github.com/google/uuid"

	"zenmap/internal/domain/entity"
)

// RegisterInput describes a new account.
type RegisterInput struct {
	Email       string
	Password    string
	Username    string
	DisplayName string
}

// UpdateProfileInput carries partial profile edits. Nil fields keep their
// stored value.
type UpdateProfileInput struct {
	DisplayName *string
	AvatarURL   *string
	StatusText  *string
}

// AccountUsecase covers registration, credential login and profile
// management.
type AccountUsecase interface {
	// Register creates the profile and password credential and returns the
	// profile with a signed access token.
	Register(ctx context.Context, input *RegisterInput) (*entity.Profile, string, error)

	// Login verifies the email/password pair and returns the profile with
	// a signed access token.
	Login(ctx context.Context, email, password string) (*entity.Profile, string, error)

	// Profile returns one user's profile.
	Profile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// UpdateProfile applies partial edits to the user's own profile.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)

	// SearchProfiles finds profiles whose username or display name matches
	// the query.
	SearchProfiles(ctx context.Context, query string) ([]*entity.Profile, error)
}
