package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"zenmap/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderUsecaseError(t *testing.T, err error) (int, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handleUsecaseError(c, err))

	return rec.Code, rec.Body.String()
}

// Acting on a friend request that belongs to someone else must look
// exactly like acting on a request that does not exist.
func TestHandleUsecaseError_OwnershipLooksLikeNotFound(t *testing.T) {
	tests := []struct {
		name     string
		notFound error
		denied   error
	}{
		{"request recipient", impl.ErrRequestNotFound, impl.ErrNotRequestRecipient},
		{"request sender", impl.ErrRequestNotFound, impl.ErrNotRequestSender},
		{"place owner", impl.ErrPlaceNotFound, impl.ErrNotPlaceOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notFoundStatus, notFoundBody := renderUsecaseError(t, tt.notFound)
			deniedStatus, deniedBody := renderUsecaseError(t, tt.denied)

			assert.Equal(t, http.StatusNotFound, notFoundStatus)
			assert.Equal(t, notFoundStatus, deniedStatus)
			assert.Equal(t, notFoundBody, deniedBody)
		})
	}
}

func TestHandleUsecaseError_MapsSentinels(t *testing.T) {
	status, body := renderUsecaseError(t, impl.ErrSelfBump)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "SELF_BUMP")
}

func TestGetUserID_MissingContextValue(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_, err := getUserID(c)
	require.ErrorIs(t, err, echo.ErrUnauthorized)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}
