package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"zenmap/internal/delivery/http/response"
	"zenmap/internal/domain/entity"
	"zenmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler.
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// SubmitLocationRequest represents one raw device location sample.
type SubmitLocationRequest struct {
	Latitude     float64  `json:"lat" validate:"min=-90,max=90"`
	Longitude    float64  `json:"lon" validate:"min=-180,max=180"`
	Accuracy     *float64 `json:"accuracy,omitempty" validate:"omitempty,min=0"`
	BatteryLevel *int     `json:"battery_level,omitempty" validate:"omitempty,min=0,max=100"`
	IsCharging   bool     `json:"is_charging"`
	Speed        *float64 `json:"speed,omitempty" validate:"omitempty,min=0"`
	Motion       *string  `json:"motion,omitempty"`
}

// SubmitLocation ingests one location sample for the authenticated user.
// A ghosted user receives the same success response as a visible one.
func (h *LocationHandler) SubmitLocation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req SubmitLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.LocationUpdateInput{
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Accuracy:     req.Accuracy,
		BatteryLevel: req.BatteryLevel,
		IsCharging:   req.IsCharging,
		Speed:        req.Speed,
	}
	if req.Motion != nil {
		motion := entity.MotionType(*req.Motion)
		if !motion.IsValid() {
			return response.BadRequest(c, "INVALID_MOTION", "Unknown motion type")
		}
		input.MotionOverride = &motion
	}

	if err := h.locationUC.Submit(c.Request().Context(), userID, input, time.Now().UTC()); err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusAccepted, nil, "Location submitted successfully")
}

// GetVisibleLocations returns every friend location the viewer may see.
// With ?places=true each row is annotated with the owner's favorite place
// containing it.
func (h *LocationHandler) GetVisibleLocations(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	ctx := c.Request().Context()

	if c.QueryParam("places") == "true" {
		annotated, err := h.locationUC.VisibleLocationsWithPlaces(ctx, userID, now)
		if err != nil {
			return handleUsecaseError(c, err)
		}

		return response.Success(c, http.StatusOK, annotated, "Visible locations retrieved successfully")
	}

	locations, err := h.locationUC.VisibleLocations(ctx, userID, now)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, locations, "Visible locations retrieved successfully")
}

// GetHistory returns the authenticated user's own location trail.
func (h *LocationHandler) GetHistory(c echo.Context) error {
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

	history, err := h.locationUC.History(c.Request().Context(), userID, limit, since)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, history, "Location history retrieved successfully")
}

// GetFriendHistory returns a friend's location trail. The owner must have
// granted the viewer history-level sharing; otherwise the owner reads as
// not found.
func (h *LocationHandler) GetFriendHistory(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	ownerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", "Invalid user ID format")
	}

	limit, err := parseLimit(c.QueryParam("limit"))
	if err != nil {
		return response.BadRequest(c, "INVALID_LIMIT", "Limit must be a non-negative integer")
	}

	since, err := parseSince(c.QueryParam("since"))
	if err != nil {
		return response.BadRequest(c, "INVALID_SINCE", "Since must be an RFC3339 timestamp")
	}

	history, err := h.locationUC.FriendHistory(c.Request().Context(), userID, ownerID, limit, since, time.Now().UTC())
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, history, "Location history retrieved successfully")
}

// parseLimit parses an optional limit query parameter; empty means 0,
// which lets the service apply its own default.
func parseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, errInvalidQueryParam
	}

	return limit, nil
}

// parseSince parses an optional RFC3339 lower bound.
func parseSince(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	since, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, errInvalidQueryParam
	}

	return &since, nil
}
