package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "zenmap/internal/delivery/context"
	"zenmap/internal/domain/entity"
	"zenmap/internal/domain/repository"
	"zenmap/internal/domain/service"
	"zenmap/internal/usecase"
)

var (
	// ErrRequestNotFound is returned when no matching friend request exists.
	ErrRequestNotFound = errors.New("friend request not found")
	// ErrNotRequestRecipient is returned when a user other than the recipient tries to decide a request.
	ErrNotRequestRecipient = errors.New("only the recipient can decide this request")
	// ErrNotRequestSender is returned when a user other than the sender tries to cancel a request.
	ErrNotRequestSender = errors.New("only the sender can cancel this request")
	// ErrSelfRequest is returned when a user sends a friend request to themself.
	ErrSelfRequest = errors.New("cannot send a friend request to yourself")
	// ErrDuplicateRequest is returned when a pending request already exists between the pair.
	ErrDuplicateRequest = errors.New("a pending friend request already exists")
	// ErrAlreadyFriends is returned when the pair already has an accepted relationship.
	ErrAlreadyFriends = errors.New("users are already friends")
	// ErrNotFriends is returned when a share grant targets a non-friend.
	ErrNotFriends = errors.New("users are not friends")
	// ErrInvalidShareLevel is returned when a grant names an unknown share level.
	ErrInvalidShareLevel = errors.New("invalid share level")
	// ErrInvalidInviteCode is returned when scanned invite content cannot be parsed.
	ErrInvalidInviteCode = errors.New("invalid invite code")
)

type friendService struct {
	friendRepo    repository.FriendRequestRepository
	shareRuleRepo repository.ShareRuleRepository
	profileRepo   repository.ProfileRepository
	txManager     repository.TransactionManager
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// FriendServiceParams holds dependencies for FriendService, injected by Fx.
type FriendServiceParams struct {
	fx.In

	FriendRepo    repository.FriendRequestRepository
	ShareRuleRepo repository.ShareRuleRepository
	ProfileRepo   repository.ProfileRepository
	TxManager     repository.TransactionManager
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewFriendService creates a new friend service instance
func NewFriendService(params FriendServiceParams) usecase.FriendUsecase {
	return &friendService{
		friendRepo:    params.FriendRepo,
		shareRuleRepo: params.ShareRuleRepo,
		profileRepo:   params.ProfileRepo,
		txManager:     params.TxManager,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *friendService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SendRequest creates a pending friend request from one user to another.
func (s *friendService) SendRequest(ctx context.Context, fromUserID, toUserID uuid.UUID) (*entity.FriendRequest, error) {
	if fromUserID == toUserID {
		return nil, ErrSelfRequest
	}

	// The recipient must exist; a dangling request would never resolve.
	if _, err := s.profileRepo.FindProfileByUser(ctx, toUserID); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipient profile")
	}

	areFriends, err := s.areFriends(ctx, fromUserID, toUserID)
	if err != nil {
		return nil, err
	}
	if areFriends {
		return nil, ErrAlreadyFriends
	}

	// One pending request per pair, regardless of direction.
	if _, err := s.friendRepo.FindPendingBetween(ctx, fromUserID, toUserID); err == nil {
		return nil, ErrDuplicateRequest
	} else if !errors.Is(err, repository.ErrFriendRequestNotFound) {
		return nil, errors.Wrap(err, "failed to find pending request between users")
	}

	request := &entity.FriendRequest{
		ID:         uuid.New(),
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Status:     entity.FriendRequestPending,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := s.friendRepo.CreateRequest(ctx, request); err != nil {
		if errors.Is(err, repository.ErrDuplicateFriendRequest) {
			return nil, ErrDuplicateRequest
		}

		return nil, errors.Wrap(err, "failed to create friend request")
	}

	s.log(ctx).Info("Friend request sent", slog.Any("requestID", request.ID), slog.Any("from", fromUserID), slog.Any("to", toUserID))

	return request, nil
}

// AcceptRequest marks a pending request accepted and installs the default
// share rule pair. The status change and both rules commit together, so a
// failure can never leave the pair half shared.
func (s *friendService) AcceptRequest(ctx context.Context, requestID, actingUserID uuid.UUID) error {
	request, err := s.pendingRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.ToUserID != actingUserID {
		return ErrNotRequestRecipient
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewFriendRequestRepository().UpdateStatus(ctx, requestID, entity.FriendRequestAccepted); err != nil {
			return errors.Wrap(err, "failed to update request status")
		}

		if err := repoFactory.NewShareRuleRepository().UpsertRules(ctx, defaultRulePair(request.FromUserID, request.ToUserID)); err != nil {
			return errors.Wrap(err, "failed to upsert share rule pair")
		}

		return nil
	})
	if err != nil {
		s.log(ctx).Error("Failed to execute accept transaction", slog.Any("requestID", requestID), slog.Any("error", err))

		return err
	}

	s.log(ctx).Info("Friend request accepted", slog.Any("requestID", requestID))

	return nil
}

// defaultRulePair builds the mutual current-only grants installed on accept.
func defaultRulePair(userA, userB uuid.UUID) []*entity.ShareRule {
	now := time.Now()

	return []*entity.ShareRule{
		{OwnerID: userA, ViewerID: userB, Level: entity.ShareLevelCurrent, CreatedAt: now, UpdatedAt: now},
		{OwnerID: userB, ViewerID: userA, Level: entity.ShareLevelCurrent, CreatedAt: now, UpdatedAt: now},
	}
}

// RejectRequest marks a pending request rejected. No share rules are touched.
func (s *friendService) RejectRequest(ctx context.Context, requestID, actingUserID uuid.UUID) error {
	request, err := s.pendingRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.ToUserID != actingUserID {
		return ErrNotRequestRecipient
	}

	if err := s.friendRepo.UpdateStatus(ctx, requestID, entity.FriendRequestRejected); err != nil {
		return errors.Wrap(err, "failed to update request status")
	}

	return nil
}

// CancelRequest withdraws a still-pending request on the sender's behalf.
func (s *friendService) CancelRequest(ctx context.Context, requestID, actingUserID uuid.UUID) error {
	request, err := s.pendingRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.FromUserID != actingUserID {
		return ErrNotRequestSender
	}

	if err := s.friendRepo.DeleteRequest(ctx, requestID); err != nil {
		return errors.Wrap(err, "failed to delete friend request")
	}

	return nil
}

// pendingRequest loads a request and requires it to still be pending.
// Decided requests are reported as not found rather than as a conflict.
func (s *friendService) pendingRequest(ctx context.Context, requestID uuid.UUID) (*entity.FriendRequest, error) {
	request, err := s.friendRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrFriendRequestNotFound) {
			return nil, ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find friend request")
	}
	if request.Status != entity.FriendRequestPending {
		return nil, ErrRequestNotFound
	}

	return request, nil
}

// PendingRequests lists requests awaiting the user's decision.
func (s *friendService) PendingRequests(ctx context.Context, userID uuid.UUID) ([]*entity.FriendRequest, error) {
	requests, err := s.friendRepo.FindPendingByRecipient(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pending requests by recipient")
	}

	return requests, nil
}

// SentRequests lists the user's own still-pending requests.
func (s *friendService) SentRequests(ctx context.Context, userID uuid.UUID) ([]*entity.FriendRequest, error) {
	requests, err := s.friendRepo.FindPendingBySender(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pending requests by sender")
	}

	return requests, nil
}

// FriendsOf returns every counterpart of the user's accepted requests.
func (s *friendService) FriendsOf(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	accepted, err := s.friendRepo.FindAcceptedByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find accepted requests by user")
	}

	friends := make([]uuid.UUID, 0, len(accepted))
	for _, request := range accepted {
		friends = append(friends, request.Counterpart(userID))
	}

	return friends, nil
}

// RemoveFriend deletes the relationship and both share rules atomically.
func (s *friendService) RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error {
	areFriends, err := s.areFriends(ctx, userID, friendID)
	if err != nil {
		return err
	}
	if !areFriends {
		return ErrNotFriends
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewFriendRequestRepository().DeleteAcceptedBetween(ctx, userID, friendID); err != nil {
			return errors.Wrap(err, "failed to delete accepted request")
		}

		if err := repoFactory.NewShareRuleRepository().DeleteRulePair(ctx, userID, friendID); err != nil {
			return errors.Wrap(err, "failed to delete share rule pair")
		}

		return nil
	})
	if err != nil {
		s.log(ctx).Error("Failed to execute remove friend transaction", slog.Any("userID", userID), slog.Any("friendID", friendID), slog.Any("error", err))

		return err
	}

	return nil
}

// Allow grants or updates the directed share rule owner -> viewer.
func (s *friendService) Allow(ctx context.Context, ownerID, viewerID uuid.UUID, level entity.ShareLevel, expiresAt *time.Time) error {
	if !level.IsValid() {
		return ErrInvalidShareLevel
	}

	areFriends, err := s.areFriends(ctx, ownerID, viewerID)
	if err != nil {
		return err
	}
	if !areFriends {
		return ErrNotFriends
	}

	rule := &entity.ShareRule{
		OwnerID:   ownerID,
		ViewerID:  viewerID,
		Level:     level,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.shareRuleRepo.UpsertRule(ctx, rule); err != nil {
		return errors.Wrap(err, "failed to upsert share rule")
	}

	return nil
}

// Revoke removes the directed share rule owner -> viewer. Revoking an
// absent rule succeeds quietly.
func (s *friendService) Revoke(ctx context.Context, ownerID, viewerID uuid.UUID) error {
	if err := s.shareRuleRepo.DeleteRule(ctx, ownerID, viewerID); err != nil {
		if errors.Is(err, repository.ErrShareRuleNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to delete share rule")
	}

	return nil
}

// GenerateInviteQR renders the user's friend-invite QR code.
func (s *friendService) GenerateInviteQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	qrCode, err := s.qrcodeService.GenerateInviteQR(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invite QR")
	}

	return qrCode, nil
}

// AcceptInviteQR resolves scanned invite content into a friend request
// from the scanning user to the invite owner.
func (s *friendService) AcceptInviteQR(ctx context.Context, userID uuid.UUID, content string) (*entity.FriendRequest, error) {
	inviterID, err := s.qrcodeService.ParseInviteQR(content)
	if err != nil {
		return nil, ErrInvalidInviteCode
	}

	return s.SendRequest(ctx, userID, inviterID)
}

// areFriends reports whether an accepted request links the two users.
func (s *friendService) areFriends(ctx context.Context, userID, otherID uuid.UUID) (bool, error) {
	accepted, err := s.friendRepo.FindAcceptedByUser(ctx, userID)
	if err != nil {
		return false, errors.Wrap(err, "failed to find accepted requests by user")
	}

	for _, request := range accepted {
		if request.Counterpart(userID) == otherID {
			return true, nil
		}
	}

	return false, nil
}
