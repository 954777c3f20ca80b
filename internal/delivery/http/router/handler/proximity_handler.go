package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"zenmap/internal/delivery/http/response"
	"zenmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProximityHandlerParams holds dependencies for ProximityHandler, injected by Fx.
type ProximityHandlerParams struct {
	fx.In

	ProximityUC usecase.ProximityUsecase
	Logger      *slog.Logger
}

// ProximityHandler holds dependencies for nearby-search and bump handlers.
type ProximityHandler struct {
	proximityUC usecase.ProximityUsecase
	logger      *slog.Logger
}

// NewProximityHandler is the constructor for ProximityHandler.
func NewProximityHandler(params ProximityHandlerParams) *ProximityHandler {
	return &ProximityHandler{
		proximityUC: params.ProximityUC,
		logger:      params.Logger,
	}
}

// RecordBumpRequest represents the request body for logging an encounter.
type RecordBumpRequest struct {
	CounterpartID  string  `json:"counterpart_id" validate:"required,uuid"`
	DistanceMeters float64 `json:"distance_meters" validate:"min=0"`
	Latitude       float64 `json:"lat" validate:"min=-90,max=90"`
	Longitude      float64 `json:"lon" validate:"min=-180,max=180"`
}

// Nearby returns visible friends within a radius of the given point,
// closest first.
func (h *ProximityHandler) Nearby(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATE", "Invalid latitude")
	}

	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATE", "Invalid longitude")
	}

	// Radius is optional; zero lets the service apply its default.
	var radius float64
	if raw := c.QueryParam("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_RADIUS", "Invalid radius")
		}
	}

	nearby, err := h.proximityUC.FindNearby(c.Request().Context(), userID, lat, lon, radius, time.Now().UTC())
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, nearby, "Nearby friends retrieved successfully")
}

// RecordBump appends one encounter between the user and a nearby friend.
func (h *ProximityHandler) RecordBump(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req RecordBumpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bump input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	counterpartID, err := uuid.Parse(req.CounterpartID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid counterpart ID")
	}

	bump, err := h.proximityUC.RecordBump(c.Request().Context(), userID, counterpartID, req.DistanceMeters, req.Latitude, req.Longitude)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusCreated, bump, "Bump recorded successfully")
}

// BumpHistory returns the user's encounters, newest first.
func (h *ProximityHandler) BumpHistory(c echo.Context) error {
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

	bumps, err := h.proximityUC.BumpHistory(c.Request().Context(), userID, limit, since)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, bumps, "Bump history retrieved successfully")
}
