package handler

import (
	"log/slog"
	"net/http"
	"time"

	"zenmap/internal/delivery/http/response"
	"zenmap/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SettingsHandler holds dependencies for visibility settings handlers.
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
	logger     *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler, injected by Fx.
func NewSettingsHandler(settingsUC usecase.SettingsUsecase, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsUC: settingsUC,
		logger:     logger,
	}
}

// UpdateIntervalRequest represents the request body for changing the
// suggested device update interval.
type UpdateIntervalRequest struct {
	Seconds int `json:"seconds" validate:"required,min=1"`
}

// GhostModeRequest represents the request body for enabling ghost mode.
// A missing duration ghosts the user until they explicitly disable it.
type GhostModeRequest struct {
	DurationSeconds *int64 `json:"duration_seconds,omitempty" validate:"omitempty,min=1"`
}

// GetSettings returns the user's settings, or the defaults when none
// are stored yet.
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	settings, err := h.settingsUC.Settings(c.Request().Context(), userID)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, settings, "Settings retrieved successfully")
}

// SetUpdateInterval changes the suggested seconds between submissions.
func (h *SettingsHandler) SetUpdateInterval(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req UpdateIntervalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid interval input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	settings, err := h.settingsUC.SetUpdateInterval(c.Request().Context(), userID, req.Seconds)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, settings, "Update interval changed successfully")
}

// EnableGhostMode suppresses the user's location submissions, optionally
// for a bounded window.
func (h *SettingsHandler) EnableGhostMode(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req GhostModeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ghost mode input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	var duration *time.Duration
	if req.DurationSeconds != nil {
		d := time.Duration(*req.DurationSeconds) * time.Second
		duration = &d
	}

	settings, err := h.settingsUC.EnableGhostMode(c.Request().Context(), userID, duration, time.Now().UTC())
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, settings, "Ghost mode enabled successfully")
}

// DisableGhostMode turns ghost mode off and clears any expiry.
func (h *SettingsHandler) DisableGhostMode(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	settings, err := h.settingsUC.DisableGhostMode(c.Request().Context(), userID)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, settings, "Ghost mode disabled successfully")
}
