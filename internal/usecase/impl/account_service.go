package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "zenmap/internal/delivery/context"
	"zenmap/internal/domain/entity"
	domainerrors "zenmap/internal/domain/errors"
	"zenmap/internal/domain/repository"
	"zenmap/internal/domain/service"
	"zenmap/internal/usecase"
)

var (
	// ErrProfileNotFound is returned when a profile does not exist.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrWeakPassword is returned when a registration password is too short.
	ErrWeakPassword = errors.New("password must be at least 8 characters")
	// ErrInvalidRegistration is returned when required registration fields are missing.
	ErrInvalidRegistration = errors.New("email and username are required")
)

// minPasswordLength is the registration password floor.
const minPasswordLength = 8

type accountService struct {
	profileRepo    repository.ProfileRepository
	txManager      repository.TransactionManager
	passwordHasher service.PasswordHasher
	tokenService   service.TokenService
	logger         *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	ProfileRepo    repository.ProfileRepository
	TxManager      repository.TransactionManager
	PasswordHasher service.PasswordHasher
	TokenService   service.TokenService
	Logger         *slog.Logger
}

// NewAccountService creates a new account service instance
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		profileRepo:    params.ProfileRepo,
		txManager:      params.TxManager,
		passwordHasher: params.PasswordHasher,
		tokenService:   params.TokenService,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Register creates the profile and password credential atomically and
// returns the new profile with a signed access token.
func (s *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Profile, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	username := strings.TrimSpace(input.Username)
	if email == "" || username == "" {
		return nil, "", ErrInvalidRegistration
	}
	if len(input.Password) < minPasswordLength {
		return nil, "", ErrWeakPassword
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		s.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, "", errors.Wrap(err, "failed to hash password")
	}

	now := time.Now()
	profile := &entity.Profile{
		UserID:      uuid.New(),
		Username:    username,
		DisplayName: input.DisplayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	credential := &entity.Credential{
		UserID:       profile.UserID,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		txProfileRepo := repoFactory.NewProfileRepository()
		if err := txProfileRepo.CreateProfile(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create profile")
		}
		if err := txProfileRepo.CreateCredential(ctx, credential); err != nil {
			return errors.Wrap(err, "failed to create credential")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateIdentity) {
			return nil, "", domainerrors.ErrIdentityTaken
		}
		s.log(ctx).Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, "", err
	}

	token, err := s.tokenService.GenerateAccessToken(profile.UserID)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to generate access token")
	}

	s.log(ctx).Info("Account registered", slog.Any("userID", profile.UserID))

	return profile, token, nil
}

// Login verifies the email/password pair and returns the profile with a
// signed access token. Unknown email and wrong password are reported
// identically.
func (s *accountService) Login(ctx context.Context, email, password string) (*entity.Profile, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	credential, err := s.profileRepo.FindCredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			s.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, "", domainerrors.ErrInvalidCredentials
		}

		return nil, "", errors.Wrap(err, "failed to find credential by email")
	}

	if !s.passwordHasher.Check(password, credential.PasswordHash) {
		s.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, "", domainerrors.ErrInvalidCredentials
	}

	profile, err := s.profileRepo.FindProfileByUser(ctx, credential.UserID)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to find profile by user")
	}

	token, err := s.tokenService.GenerateAccessToken(profile.UserID)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to generate access token")
	}

	s.log(ctx).Debug("User logged in successfully", slog.Any("userID", profile.UserID))

	return profile, token, nil
}

// Profile returns one user's profile.
func (s *accountService) Profile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := s.profileRepo.FindProfileByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user")
	}

	return profile, nil
}

// UpdateProfile applies partial edits to the user's own profile.
func (s *accountService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	profile, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != nil {
		profile.DisplayName = *input.DisplayName
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = *input.AvatarURL
	}
	if input.StatusText != nil {
		profile.StatusText = *input.StatusText
	}
	profile.UpdatedAt = time.Now()

	if err := s.profileRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return profile, nil
}

// SearchProfiles finds profiles whose username or display name matches the query.
func (s *accountService) SearchProfiles(ctx context.Context, query string) ([]*entity.Profile, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*entity.Profile{}, nil
	}

	profiles, err := s.profileRepo.SearchProfiles(ctx, query, profileSearchLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search profiles")
	}

	return profiles, nil
}

// profileSearchLimit caps search results per query.
const profileSearchLimit = 20
