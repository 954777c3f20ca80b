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
	"zenmap/internal/domain/repository"
	mockRepo "zenmap/internal/mocks/repository"
	mockSvc "zenmap/internal/mocks/service"
	"zenmap/internal/usecase"
)

// friendServiceFixtures holds all test dependencies for friend service tests.
type friendServiceFixtures struct {
	service       usecase.FriendUsecase
	friendRepo    *mockRepo.MockFriendRequestRepository
	shareRuleRepo *mockRepo.MockShareRuleRepository
	profileRepo   *mockRepo.MockProfileRepository
	txManager     *mockRepo.MockTransactionManager
	qrcodeService *mockSvc.MockQRCodeService
}

func createTestFriendService(t *testing.T) friendServiceFixtures {
	friendRepo := mockRepo.NewMockFriendRequestRepository(t)
	shareRuleRepo := mockRepo.NewMockShareRuleRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)

	service := NewFriendService(FriendServiceParams{
		FriendRepo:    friendRepo,
		ShareRuleRepo: shareRuleRepo,
		ProfileRepo:   profileRepo,
		TxManager:     txManager,
		QRCodeService: qrcodeService,
		Logger:        newDiscardLogger(),
	})

	return friendServiceFixtures{
		service:       service,
		friendRepo:    friendRepo,
		shareRuleRepo: shareRuleRepo,
		profileRepo:   profileRepo,
		txManager:     txManager,
		qrcodeService: qrcodeService,
	}
}

func TestFriendService_SendRequest_Success(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	fromID := uuid.New()
	toID := uuid.New()

	fx.profileRepo.EXPECT().
		FindProfileByUser(ctx, toID).
		Return(&entity.Profile{UserID: toID, Username: "hanako"}, nil)

	fx.friendRepo.EXPECT().
		FindAcceptedByUser(ctx, fromID).
		Return([]*entity.FriendRequest{}, nil)

	fx.friendRepo.EXPECT().
		FindPendingBetween(ctx, fromID, toID).
		Return(nil, repository.ErrFriendRequestNotFound)

	fx.friendRepo.EXPECT().
		CreateRequest(ctx, mock.AnythingOfType("*entity.FriendRequest")).
		Return(nil)

	request, err := fx.service.SendRequest(ctx, fromID, toID)

	require.NoError(t, err)
	require.NotNil(t, request)
	assert.Equal(t, fromID, request.FromUserID)
	assert.Equal(t, toID, request.ToUserID)
	assert.Equal(t, entity.FriendRequestPending, request.Status)
}

func TestFriendService_SendRequest_Self(t *testing.T) {
	fx := createTestFriendService(t)

	userID := uuid.New()
	_, err := fx.service.SendRequest(context.Background(), userID, userID)

	assert.ErrorIs(t, err, ErrSelfRequest)
}

func TestFriendService_SendRequest_DuplicatePending(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	fromID := uuid.New()
	toID := uuid.New()

	fx.profileRepo.EXPECT().
		FindProfileByUser(ctx, toID).
		Return(&entity.Profile{UserID: toID}, nil)

	fx.friendRepo.EXPECT().
		FindAcceptedByUser(ctx, fromID).
		Return([]*entity.FriendRequest{}, nil)

	// The reverse-direction request counts too.
	fx.friendRepo.EXPECT().
		FindPendingBetween(ctx, fromID, toID).
		Return(&entity.FriendRequest{FromUserID: toID, ToUserID: fromID, Status: entity.FriendRequestPending}, nil)

	_, err := fx.service.SendRequest(ctx, fromID, toID)

	assert.ErrorIs(t, err, ErrDuplicateRequest)
}

func TestFriendService_SendRequest_AlreadyFriends(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	fromID := uuid.New()
	toID := uuid.New()

	fx.profileRepo.EXPECT().
		FindProfileByUser(ctx, toID).
		Return(&entity.Profile{UserID: toID}, nil)

	fx.friendRepo.EXPECT().
		FindAcceptedByUser(ctx, fromID).
		Return([]*entity.FriendRequest{
			{FromUserID: toID, ToUserID: fromID, Status: entity.FriendRequestAccepted},
		}, nil)

	_, err := fx.service.SendRequest(ctx, fromID, toID)

	assert.ErrorIs(t, err, ErrAlreadyFriends)
}

func TestFriendService_SendRequest_UnknownRecipient(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	fromID := uuid.New()
	toID := uuid.New()

	fx.profileRepo.EXPECT().
		FindProfileByUser(ctx, toID).
		Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.SendRequest(ctx, fromID, toID)

	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestFriendService_AcceptRequest_InstallsRulePair(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	fromID := uuid.New()
	toID := uuid.New()
	requestID := uuid.New()

	fx.friendRepo.EXPECT().
		FindRequestByID(ctx, requestID).
		Return(&entity.FriendRequest{
			ID:         requestID,
			FromUserID: fromID,
			ToUserID:   toID,
			Status:     entity.FriendRequestPending,
		}, nil)

	var installed []*entity.ShareRule
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFriendRepo := mockRepo.NewMockFriendRequestRepository(t)
			mockShareRuleRepo := mockRepo.NewMockShareRuleRepository(t)

			mockFactory.EXPECT().NewFriendRequestRepository().Return(mockFriendRepo)
			mockFactory.EXPECT().NewShareRuleRepository().Return(mockShareRuleRepo)

			mockFriendRepo.EXPECT().
				UpdateStatus(ctx, requestID, entity.FriendRequestAccepted).
				Return(nil)

			mockShareRuleRepo.EXPECT().
				UpsertRules(ctx, mock.AnythingOfType("[]*entity.ShareRule")).
				Run(func(ctx context.Context, rules []*entity.ShareRule) {
					installed = rules
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.AcceptRequest(ctx, requestID, toID)

	require.NoError(t, err)
	require.Len(t, installed, 2)
	assert.Equal(t, fromID, installed[0].OwnerID)
	assert.Equal(t, toID, installed[0].ViewerID)
	assert.Equal(t, toID, installed[1].OwnerID)
	assert.Equal(t, fromID, installed[1].ViewerID)
	for _, rule := range installed {
		assert.Equal(t, entity.ShareLevelCurrent, rule.Level)
		assert.Nil(t, rule.ExpiresAt)
	}
}

func TestFriendService_AcceptRequest_OnlyRecipient(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	requestID := uuid.New()
	senderID := uuid.New()

	fx.friendRepo.EXPECT().
		FindRequestByID(ctx, requestID).
		Return(&entity.FriendRequest{
			ID:         requestID,
			FromUserID: senderID,
			ToUserID:   uuid.New(),
			Status:     entity.FriendRequestPending,
		}, nil)

	// The sender cannot accept their own request.
	err := fx.service.AcceptRequest(ctx, requestID, senderID)

	assert.ErrorIs(t, err, ErrNotRequestRecipient)
}

func TestFriendService_AcceptRequest_AlreadyDecided(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	requestID := uuid.New()
	toID := uuid.New()

	fx.friendRepo.EXPECT().
		FindRequestByID(ctx, requestID).
		Return(&entity.FriendRequest{
			ID:       requestID,
			ToUserID: toID,
			Status:   entity.FriendRequestAccepted,
		}, nil)

	err := fx.service.AcceptRequest(ctx, requestID, toID)

	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestFriendService_AcceptRequest_TransactionFailure(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	requestID := uuid.New()
	toID := uuid.New()

	fx.friendRepo.EXPECT().
		FindRequestByID(ctx, requestID).
		Return(&entity.FriendRequest{
			ID:         requestID,
			FromUserID: uuid.New(),
			ToUserID:   toID,
			Status:     entity.FriendRequestPending,
		}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(assert.AnError)

	err := fx.service.AcceptRequest(ctx, requestID, toID)

	assert.ErrorIs(t, err, assert.AnError)
}

func TestFriendService_RejectRequest(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	requestID := uuid.New()
	toID := uuid.New()

	fx.friendRepo.EXPECT().
		FindRequestByID(ctx, requestID).
		Return(&entity.FriendRequest{
			ID:         requestID,
			FromUserID: uuid.New(),
			ToUserID:   toID,
			Status:     entity.FriendRequestPending,
		}, nil)

	fx.friendRepo.EXPECT().
		UpdateStatus(ctx, requestID, entity.FriendRequestRejected).
		Return(nil)

	err := fx.service.RejectRequest(ctx, requestID, toID)

	require.NoError(t, err)
}

func TestFriendService_CancelRequest_OnlySender(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	requestID := uuid.New()
	fromID := uuid.New()
	toID := uuid.New()

	fx.friendRepo.EXPECT().
		FindRequestByID(ctx, requestID).
		Return(&entity.FriendRequest{
			ID:         requestID,
			FromUserID: fromID,
			ToUserID:   toID,
			Status:     entity.FriendRequestPending,
		}, nil).Twice()

	fx.friendRepo.EXPECT().
		DeleteRequest(ctx, requestID).
		Return(nil)

	require.NoError(t, fx.service.CancelRequest(ctx, requestID, fromID))
	assert.ErrorIs(t, fx.service.CancelRequest(ctx, requestID, toID), ErrNotRequestSender)
}

func TestFriendService_FriendsOf(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	userID := uuid.New()
	friendA := uuid.New()
	friendB := uuid.New()

	fx.friendRepo.EXPECT().
		FindAcceptedByUser(ctx, userID).
		Return([]*entity.FriendRequest{
			{FromUserID: userID, ToUserID: friendA, Status: entity.FriendRequestAccepted},
			{FromUserID: friendB, ToUserID: userID, Status: entity.FriendRequestAccepted},
		}, nil)

	friends, err := fx.service.FriendsOf(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{friendA, friendB}, friends)
}

func TestFriendService_RemoveFriend_DeletesBothSides(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	userID := uuid.New()
	friendID := uuid.New()

	fx.friendRepo.EXPECT().
		FindAcceptedByUser(ctx, userID).
		Return([]*entity.FriendRequest{
			{FromUserID: userID, ToUserID: friendID, Status: entity.FriendRequestAccepted},
		}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFriendRepo := mockRepo.NewMockFriendRequestRepository(t)
			mockShareRuleRepo := mockRepo.NewMockShareRuleRepository(t)

			mockFactory.EXPECT().NewFriendRequestRepository().Return(mockFriendRepo)
			mockFactory.EXPECT().NewShareRuleRepository().Return(mockShareRuleRepo)

			mockFriendRepo.EXPECT().
				DeleteAcceptedBetween(ctx, userID, friendID).
				Return(nil)

			mockShareRuleRepo.EXPECT().
				DeleteRulePair(ctx, userID, friendID).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.RemoveFriend(ctx, userID, friendID)

	require.NoError(t, err)
}

func TestFriendService_RemoveFriend_NotFriends(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.friendRepo.EXPECT().
		FindAcceptedByUser(ctx, userID).
		Return([]*entity.FriendRequest{}, nil)

	err := fx.service.RemoveFriend(ctx, userID, uuid.New())

	assert.ErrorIs(t, err, ErrNotFriends)
}

func TestFriendService_Allow(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	viewerID := uuid.New()
	expiresAt := time.Now().Add(time.Hour)

	fx.friendRepo.EXPECT().
		FindAcceptedByUser(ctx, ownerID).
		Return([]*entity.FriendRequest{
			{FromUserID: ownerID, ToUserID: viewerID, Status: entity.FriendRequestAccepted},
		}, nil)

	var stored *entity.ShareRule
	fx.shareRuleRepo.EXPECT().
		UpsertRule(ctx, mock.AnythingOfType("*entity.ShareRule")).
		Run(func(ctx context.Context, rule *entity.ShareRule) {
			stored = rule
		}).
		Return(nil)

	err := fx.service.Allow(ctx, ownerID, viewerID, entity.ShareLevelHistory, &expiresAt)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.ShareLevelHistory, stored.Level)
	assert.Equal(t, &expiresAt, stored.ExpiresAt)
}

func TestFriendService_Allow_InvalidLevel(t *testing.T) {
	fx := createTestFriendService(t)

	err := fx.service.Allow(context.Background(), uuid.New(), uuid.New(), entity.ShareLevel("loud"), nil)

	assert.ErrorIs(t, err, ErrInvalidShareLevel)
}

func TestFriendService_Allow_NotFriends(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.friendRepo.EXPECT().
		FindAcceptedByUser(ctx, ownerID).
		Return([]*entity.FriendRequest{}, nil)

	err := fx.service.Allow(ctx, ownerID, uuid.New(), entity.ShareLevelCurrent, nil)

	assert.ErrorIs(t, err, ErrNotFriends)
}

func TestFriendService_Revoke_MissingRuleIsNoop(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	viewerID := uuid.New()

	fx.shareRuleRepo.EXPECT().
		DeleteRule(ctx, ownerID, viewerID).
		Return(repository.ErrShareRuleNotFound)

	err := fx.service.Revoke(ctx, ownerID, viewerID)

	require.NoError(t, err)
}

func TestFriendService_InviteQR_RoundTrip(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	inviterID := uuid.New()
	scannerID := uuid.New()

	fx.qrcodeService.EXPECT().
		GenerateInviteQR(inviterID).
		Return([]byte("png-bytes"), nil)

	qrCode, err := fx.service.GenerateInviteQR(ctx, inviterID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrCode)

	fx.qrcodeService.EXPECT().
		ParseInviteQR("zenmap://invite/xyz").
		Return(inviterID, nil)

	fx.profileRepo.EXPECT().
		FindProfileByUser(ctx, inviterID).
		Return(&entity.Profile{UserID: inviterID}, nil)

	fx.friendRepo.EXPECT().
		FindAcceptedByUser(ctx, scannerID).
		Return([]*entity.FriendRequest{}, nil)

	fx.friendRepo.EXPECT().
		FindPendingBetween(ctx, scannerID, inviterID).
		Return(nil, repository.ErrFriendRequestNotFound)

	fx.friendRepo.EXPECT().
		CreateRequest(ctx, mock.AnythingOfType("*entity.FriendRequest")).
		Return(nil)

	request, err := fx.service.AcceptInviteQR(ctx, scannerID, "zenmap://invite/xyz")

	require.NoError(t, err)
	assert.Equal(t, scannerID, request.FromUserID)
	assert.Equal(t, inviterID, request.ToUserID)
}

func TestFriendService_AcceptInviteQR_InvalidContent(t *testing.T) {
	fx := createTestFriendService(t)

	fx.qrcodeService.EXPECT().
		ParseInviteQR("not-an-invite").
		Return(uuid.Nil, assert.AnError)

	_, err := fx.service.AcceptInviteQR(context.Background(), uuid.New(), "not-an-invite")

	assert.ErrorIs(t, err, ErrInvalidInviteCode)
}
