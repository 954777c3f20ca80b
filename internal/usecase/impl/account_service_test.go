package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zenmap/internal/domain/entity"
	domainerrors "zenmap/internal/domain/errors"
	"zenmap/internal/domain/repository"
	"zenmap/internal/domain/service"
	mockRepo "zenmap/internal/mocks/repository"
	mockSvc "zenmap/internal/mocks/service"
	"zenmap/internal/usecase"
)

type accountServiceFixtures struct {
	service        usecase.AccountUsecase
	profileRepo    *mockRepo.MockProfileRepository
	txManager      *mockRepo.MockTransactionManager
	passwordHasher *mockSvc.MockPasswordHasher
	tokenService   *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	passwordHasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAccountService(AccountServiceParams{
		ProfileRepo:    profileRepo,
		TxManager:      txManager,
		PasswordHasher: passwordHasher,
		TokenService:   tokenService,
		Logger:         newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:        service,
		profileRepo:    profileRepo,
		txManager:      txManager,
		passwordHasher: passwordHasher,
		tokenService:   tokenService,
	}
}

func TestAccountService_Register(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.passwordHasher.EXPECT().
		Hash("correct horse battery").
		Return("hashed", nil)

	var createdProfile *entity.Profile
	var createdCredential *entity.Credential
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().NewProfileRepository().Return(mockProfileRepo)

			mockProfileRepo.EXPECT().
				CreateProfile(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(ctx context.Context, profile *entity.Profile) {
					createdProfile = profile
				}).
				Return(nil)

			mockProfileRepo.EXPECT().
				CreateCredential(ctx, mock.AnythingOfType("*entity.Credential")).
				Run(func(ctx context.Context, credential *entity.Credential) {
					createdCredential = credential
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		GenerateAccessToken(mock.AnythingOfType("uuid.UUID")).
		Return("signed-token", nil)

	profile, token, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:       "  Taro@Example.COM ",
		Password:    "correct horse battery",
		Username:    "taro",
		DisplayName: "太郎",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, "taro", profile.Username)
	require.NotNil(t, createdProfile)
	require.NotNil(t, createdCredential)
	// Email is normalized before it ever reaches storage.
	assert.Equal(t, "taro@example.com", createdCredential.Email)
	assert.Equal(t, "hashed", createdCredential.PasswordHash)
	assert.Equal(t, createdProfile.UserID, createdCredential.UserID)
}

func TestAccountService_Register_WeakPassword(t *testing.T) {
	fx := createTestAccountService(t)

	_, _, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "taro@example.com",
		Password: "short",
		Username: "taro",
	})

	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestAccountService_Register_MissingFields(t *testing.T) {
	fx := createTestAccountService(t)

	_, _, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "",
		Password: "long enough password",
		Username: "taro",
	})

	assert.ErrorIs(t, err, ErrInvalidRegistration)
}

func TestAccountService_Register_DuplicateIdentity(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.passwordHasher.EXPECT().
		Hash("long enough password").
		Return("hashed", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrDuplicateIdentity)

	_, _, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "taro@example.com",
		Password: "long enough password",
		Username: "taro",
	})

	assert.ErrorIs(t, err, domainerrors.ErrIdentityTaken)
}

func TestAccountService_Login(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindCredentialByEmail(ctx, "taro@example.com").
		Return(&entity.Credential{UserID: userID, Email: "taro@example.com", PasswordHash: "hashed"}, nil)

	fx.passwordHasher.EXPECT().
		Check("secret-password", "hashed").
		Return(true)

	fx.profileRepo.EXPECT().
		FindProfileByUser(ctx, userID).
		Return(&entity.Profile{UserID: userID, Username: "taro"}, nil)

	fx.tokenService.EXPECT().
		GenerateAccessToken(userID).
		Return("signed-token", nil)

	profile, token, err := fx.service.Login(ctx, "Taro@Example.com", "secret-password")

	require.NoError(t, err)
	assert.Equal(t, userID, profile.UserID)
	assert.Equal(t, "signed-token", token)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.profileRepo.EXPECT().
		FindCredentialByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrCredentialNotFound)

	_, _, err := fx.service.Login(ctx, "nobody@example.com", "whatever-password")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindCredentialByEmail(ctx, "taro@example.com").
		Return(&entity.Credential{UserID: userID, PasswordHash: "hashed"}, nil)

	fx.passwordHasher.EXPECT().
		Check("wrong-password", "hashed").
		Return(false)

	_, _, err := fx.service.Login(ctx, "taro@example.com", "wrong-password")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_UpdateProfile(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindProfileByUser(ctx, userID).
		Return(&entity.Profile{UserID: userID, Username: "taro", DisplayName: "太郎"}, nil)

	fx.profileRepo.EXPECT().
		UpdateProfile(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(nil)

	newStatus := "カフェなう"
	profile, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		StatusText: &newStatus,
	})

	require.NoError(t, err)
	assert.Equal(t, "カフェなう", profile.StatusText)
	assert.Equal(t, "太郎", profile.DisplayName)
}

func TestAccountService_SearchProfiles_EmptyQuery(t *testing.T) {
	fx := createTestAccountService(t)

	profiles, err := fx.service.SearchProfiles(context.Background(), "   ")

	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestAccountService_SearchProfiles(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.profileRepo.EXPECT().
		SearchProfiles(ctx, "taro", profileSearchLimit).
		Return([]*entity.Profile{{Username: "taro"}}, nil)

	profiles, err := fx.service.SearchProfiles(ctx, "taro")

	require.NoError(t, err)
	assert.Len(t, profiles, 1)
}

// The token service double has to satisfy the full domain contract,
// including the token lifetime accessor.
func TestMockTokenService_AccessTokenDuration(t *testing.T) {
	fx := createTestAccountService(t)

	var tokenService service.TokenService = fx.tokenService
	fx.tokenService.EXPECT().AccessTokenDuration().Return(15 * time.Minute).Once()

	assert.Equal(t, 15*time.Minute, tokenService.AccessTokenDuration())
}
