// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"zenmap/internal/delivery/http/response"
	domainerrors "zenmap/internal/domain/errors"
	"zenmap/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// errInvalidQueryParam marks an unparseable query parameter.
var errInvalidQueryParam = errors.New("invalid query parameter")

// usecaseErrorStatus maps service-level sentinel errors to HTTP status
// codes and business error codes. Errors outside the table fall through
// to the global error handler. Ownership failures carry the same status,
// code and message as the matching not-found case so a caller cannot
// tell whether somebody else's resource exists.
var usecaseErrorStatus = map[error]struct {
	status  int
	code    string
	message string
}{
	impl.ErrProfileNotFound:       {http.StatusNotFound, "PROFILE_NOT_FOUND", ""},
	impl.ErrWeakPassword:          {http.StatusBadRequest, "WEAK_PASSWORD", ""},
	impl.ErrInvalidRegistration:   {http.StatusBadRequest, "INVALID_REGISTRATION", ""},
	impl.ErrRequestNotFound:       {http.StatusNotFound, "FRIEND_REQUEST_NOT_FOUND", ""},
	impl.ErrNotRequestRecipient:   {http.StatusNotFound, "FRIEND_REQUEST_NOT_FOUND", impl.ErrRequestNotFound.Error()},
	impl.ErrNotRequestSender:      {http.StatusNotFound, "FRIEND_REQUEST_NOT_FOUND", impl.ErrRequestNotFound.Error()},
	impl.ErrSelfRequest:           {http.StatusBadRequest, "SELF_FRIEND_REQUEST", ""},
	impl.ErrDuplicateRequest:      {http.StatusConflict, "DUPLICATE_FRIEND_REQUEST", ""},
	impl.ErrAlreadyFriends:        {http.StatusConflict, "ALREADY_FRIENDS", ""},
	impl.ErrNotFriends:            {http.StatusConflict, "NOT_FRIENDS", ""},
	impl.ErrInvalidShareLevel:     {http.StatusBadRequest, "INVALID_SHARE_LEVEL", ""},
	impl.ErrInvalidInviteCode:     {http.StatusBadRequest, "INVALID_INVITE_CODE", ""},
	impl.ErrInvalidCoordinate:     {http.StatusBadRequest, "INVALID_COORDINATE", ""},
	impl.ErrPlaceNotFound:         {http.StatusNotFound, "PLACE_NOT_FOUND", ""},
	impl.ErrNotPlaceOwner:         {http.StatusNotFound, "PLACE_NOT_FOUND", impl.ErrPlaceNotFound.Error()},
	impl.ErrInvalidPlace:          {http.StatusBadRequest, "INVALID_PLACE", ""},
	impl.ErrInvalidRadius:         {http.StatusBadRequest, "INVALID_RADIUS", ""},
	impl.ErrSelfBump:              {http.StatusBadRequest, "SELF_BUMP", ""},
	impl.ErrInvalidReaction:       {http.StatusBadRequest, "INVALID_REACTION", ""},
	impl.ErrRecipientNotVisible:   {http.StatusForbidden, "RECIPIENT_NOT_VISIBLE", ""},
	impl.ErrHistoryNotShared:      {http.StatusNotFound, "HISTORY_NOT_SHARED", ""},
	impl.ErrInvalidUpdateInterval: {http.StatusBadRequest, "INVALID_UPDATE_INTERVAL", ""},
}

// handleUsecaseError translates known service errors into API responses.
func handleUsecaseError(c echo.Context, err error) error {
	for sentinel, mapping := range usecaseErrorStatus {
		if errors.Is(err, sentinel) {
			message := mapping.message
			if message == "" {
				message = sentinel.Error()
			}

			return response.Error(c, mapping.status, mapping.code, message, "")
		}
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

// getUserID extracts the authenticated user ID placed on the context by
// the auth middleware.
func getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		if err := response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token"); err != nil {
			return uuid.Nil, errors.WithStack(err)
		}
		// Non-nil error stops the caller; the global error handler
		// skips rendering because the response is already committed.
		return uuid.Nil, echo.ErrUnauthorized
	}

	return userID, nil
}
