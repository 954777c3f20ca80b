package handler

import (
	"log/slog"
	"net/http"
	"time"

	"zenmap/internal/delivery/http/response"
	"zenmap/internal/domain/entity"
	"zenmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FriendHandlerParams holds dependencies for FriendHandler, injected by Fx.
type FriendHandlerParams struct {
	fx.In

	FriendUC usecase.FriendUsecase
	Logger   *slog.Logger
}

// FriendHandler holds dependencies for friend graph handlers.
type FriendHandler struct {
	friendUC usecase.FriendUsecase
	logger   *slog.Logger
}

// NewFriendHandler is the constructor for FriendHandler.
func NewFriendHandler(params FriendHandlerParams) *FriendHandler {
	return &FriendHandler{
		friendUC: params.FriendUC,
		logger:   params.Logger,
	}
}

// SendRequestRequest represents the request body for sending a friend request.
type SendRequestRequest struct {
	ToUserID string `json:"to_user_id" validate:"required,uuid"`
}

// ShareRequest represents the request body for granting a share rule.
type ShareRequest struct {
	Level     string     `json:"level" validate:"required"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// AcceptInviteRequest represents scanned QR invite content.
type AcceptInviteRequest struct {
	Content string `json:"content" validate:"required"`
}

// SendRequest creates a pending friend request to another user.
func (h *FriendHandler) SendRequest(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req SendRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid friend request input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	toUserID, err := uuid.Parse(req.ToUserID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipient ID")
	}

	request, err := h.friendUC.SendRequest(c.Request().Context(), userID, toUserID)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusCreated, request, "Friend request sent successfully")
}

// AcceptRequest accepts a pending friend request addressed to the user.
func (h *FriendHandler) AcceptRequest(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	if err := h.friendUC.AcceptRequest(c.Request().Context(), requestID, userID); err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Friend request accepted successfully")
}

// RejectRequest rejects a pending friend request addressed to the user.
func (h *FriendHandler) RejectRequest(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	if err := h.friendUC.RejectRequest(c.Request().Context(), requestID, userID); err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Friend request rejected successfully")
}

// CancelRequest withdraws a still-pending request the user sent.
func (h *FriendHandler) CancelRequest(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	if err := h.friendUC.CancelRequest(c.Request().Context(), requestID, userID); err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Friend request cancelled successfully")
}

// PendingRequests lists requests awaiting the user's decision.
func (h *FriendHandler) PendingRequests(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requests, err := h.friendUC.PendingRequests(c.Request().Context(), userID)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "Pending requests retrieved successfully")
}

// SentRequests lists the user's own still-pending requests.
func (h *FriendHandler) SentRequests(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requests, err := h.friendUC.SentRequests(c.Request().Context(), userID)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "Sent requests retrieved successfully")
}

// ListFriends returns the IDs of the user's accepted friends.
func (h *FriendHandler) ListFriends(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	friends, err := h.friendUC.FriendsOf(c.Request().Context(), userID)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, friends, "Friends retrieved successfully")
}

// RemoveFriend deletes the friendship and both share rules.
func (h *FriendHandler) RemoveFriend(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	friendID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid friend ID")
	}

	if err := h.friendUC.RemoveFriend(c.Request().Context(), userID, friendID); err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Friend removed successfully")
}

// AllowShare grants or updates the user's share rule toward a viewer.
func (h *FriendHandler) AllowShare(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	viewerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid viewer ID")
	}

	var req ShareRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid share rule input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	level := entity.ShareLevel(req.Level)
	if err := h.friendUC.Allow(c.Request().Context(), userID, viewerID, level, req.ExpiresAt); err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Share rule updated successfully")
}

// RevokeShare removes the user's share rule toward a viewer.
func (h *FriendHandler) RevokeShare(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	viewerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid viewer ID")
	}

	if err := h.friendUC.Revoke(c.Request().Context(), userID, viewerID); err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Share rule revoked successfully")
}

// InviteQR renders the user's friend-invite QR code as a PNG image.
func (h *FriendHandler) InviteQR(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	png, err := h.friendUC.GenerateInviteQR(c.Request().Context(), userID)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// AcceptInviteQR decodes scanned invite content and sends a request to
// the invite's owner.
func (h *FriendHandler) AcceptInviteQR(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req AcceptInviteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invite input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	request, err := h.friendUC.AcceptInviteQR(c.Request().Context(), userID, req.Content)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusCreated, request, "Invite accepted successfully")
}
