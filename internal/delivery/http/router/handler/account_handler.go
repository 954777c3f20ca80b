package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"zenmap/internal/delivery/http/response"
	"zenmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AccountHandler holds dependencies for account and profile handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterRequest represents the request body for account registration.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Username    string `json:"username" validate:"required,min=3,max=50"`
	DisplayName string `json:"display_name"`
}

// LoginRequest represents the request body for credential login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest carries partial profile edits.
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	StatusText  *string `json:"status_text,omitempty" validate:"omitempty,max=200"`
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		Username:    req.Username,
		DisplayName: req.DisplayName,
	}

	profile, token, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"profile":      profile,
		"access_token": token,
	}, "Account registered successfully")
}

// Login handles the credential login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	profile, token, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"profile":      profile,
		"access_token": token,
	}, "Login successful")
}

// GetProfile returns the authenticated user's own profile.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.uc.Profile(c.Request().Context(), userID)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// GetUserProfile returns another user's public profile.
func (h *AccountHandler) GetUserProfile(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	profile, err := h.uc.Profile(c.Request().Context(), targetID)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// UpdateProfile applies partial edits to the authenticated user's profile.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateProfileInput{
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
		StatusText:  req.StatusText,
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated successfully")
}

// SearchProfiles finds profiles by username or display name.
func (h *AccountHandler) SearchProfiles(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return err
	}

	query := strings.TrimSpace(c.QueryParam("q"))

	profiles, err := h.uc.SearchProfiles(c.Request().Context(), query)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, profiles, "Profiles retrieved successfully")
}
