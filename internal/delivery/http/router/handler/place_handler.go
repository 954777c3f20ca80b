package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"zenmap/internal/delivery/http/response"
	"zenmap/internal/domain/entity"
	"zenmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PlaceHandler holds dependencies for favorite place handlers.
type PlaceHandler struct {
	placeUC usecase.PlaceUsecase
	logger  *slog.Logger
}

// NewPlaceHandler is the constructor for PlaceHandler, injected by Fx.
func NewPlaceHandler(placeUC usecase.PlaceUsecase, logger *slog.Logger) *PlaceHandler {
	return &PlaceHandler{
		placeUC: placeUC,
		logger:  logger,
	}
}

// AddPlaceRequest represents the request body for creating a favorite place.
type AddPlaceRequest struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Type         string  `json:"type" validate:"required"`
	Latitude     float64 `json:"lat" validate:"min=-90,max=90"`
	Longitude    float64 `json:"lon" validate:"min=-180,max=180"`
	RadiusMeters float64 `json:"radius_meters" validate:"required,gt=0"`
}

// UpdatePlaceRequest carries partial favorite place edits.
type UpdatePlaceRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	Type         *string  `json:"type,omitempty"`
	Latitude     *float64 `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude    *float64 `json:"lon,omitempty" validate:"omitempty,min=-180,max=180"`
	RadiusMeters *float64 `json:"radius_meters,omitempty" validate:"omitempty,gt=0"`
}

// AddPlace creates a favorite place for the authenticated user.
func (h *PlaceHandler) AddPlace(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req AddPlaceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid place input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.AddPlaceInput{
		Name:         req.Name,
		Type:         entity.PlaceType(req.Type),
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
	}

	place, err := h.placeUC.AddPlace(c.Request().Context(), userID, input)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusCreated, place, "Place created successfully")
}

// ListPlaces returns the user's favorite places.
func (h *PlaceHandler) ListPlaces(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	places, err := h.placeUC.Places(c.Request().Context(), userID)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, places, "Places retrieved successfully")
}

// UpdatePlace applies partial edits to one of the user's places.
func (h *PlaceHandler) UpdatePlace(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	placeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid place ID")
	}

	var req UpdatePlaceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid place input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdatePlaceInput{
		Name:         req.Name,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
	}
	if req.Type != nil {
		placeType := entity.PlaceType(*req.Type)
		input.Type = &placeType
	}

	place, err := h.placeUC.UpdatePlace(c.Request().Context(), userID, placeID, input)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, place, "Place updated successfully")
}

// DeletePlace removes one of the user's places.
func (h *PlaceHandler) DeletePlace(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	placeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid place ID")
	}

	if err := h.placeUC.DeletePlace(c.Request().Context(), userID, placeID); err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Place deleted successfully")
}

// LocatePlace returns the user's place containing a coordinate, if any.
func (h *PlaceHandler) LocatePlace(c echo.Context) error {
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

	place, err := h.placeUC.PlaceAt(c.Request().Context(), userID, lat, lon)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, place, "Place lookup completed successfully")
}
