package handler

import (
	"log/slog"
	"net/http"

	"zenmap/internal/delivery/http/response"
	"zenmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ReactionHandler holds dependencies for location reaction handlers.
type ReactionHandler struct {
	reactionUC usecase.ReactionUsecase
	logger     *slog.Logger
}

// NewReactionHandler is the constructor for ReactionHandler, injected by Fx.
func NewReactionHandler(reactionUC usecase.ReactionUsecase, logger *slog.Logger) *ReactionHandler {
	return &ReactionHandler{
		reactionUC: reactionUC,
		logger:     logger,
	}
}

// SendReactionRequest represents the request body for sending a reaction.
type SendReactionRequest struct {
	ToUserID string `json:"to_user_id" validate:"required,uuid"`
	Emoji    string `json:"emoji" validate:"required"`
	Message  string `json:"message" validate:"max=200"`
}

// SendReaction sends a reaction to a friend whose location is visible.
func (h *ReactionHandler) SendReaction(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req SendReactionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reaction input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	toUserID, err := uuid.Parse(req.ToUserID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipient ID")
	}

	reaction, err := h.reactionUC.SendReaction(c.Request().Context(), userID, toUserID, req.Emoji, req.Message)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusCreated, reaction, "Reaction sent successfully")
}

// ReceivedReactions lists reactions sent to the user, newest first.
func (h *ReactionHandler) ReceivedReactions(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	limit, err := parseLimit(c.QueryParam("limit"))
	if err != nil {
		return response.BadRequest(c, "INVALID_LIMIT", "Limit must be a non-negative integer")
	}

	since, err := parseSince(c.QueryParam("since"))
	if err != nil {
		return response.BadRequest(c, "INVALID_SINCE", "Since must be an RFC3339 timestamp")
	}

	reactions, err := h.reactionUC.ReceivedReactions(c.Request().Context(), userID, limit, since)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, reactions, "Received reactions retrieved successfully")
}

// SentReactions lists reactions the user sent, newest first.
func (h *ReactionHandler) SentReactions(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	limit, err := parseLimit(c.QueryParam("limit"))
	if err != nil {
		return response.BadRequest(c, "INVALID_LIMIT", "Limit must be a non-negative integer")
	}

	reactions, err := h.reactionUC.SentReactions(c.Request().Context(), userID, limit)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, reactions, "Sent reactions retrieved successfully")
}
