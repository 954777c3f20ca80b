package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mockusecase "zenmap/internal/mocks/usecase"
	"zenmap/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushRequest(t *testing.T, event *service.LocationEvent, attributes map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	body := fmt.Sprintf(`{"message":{"data":%q,"attributes":%s,"messageId":"msg-1"},"subscription":"sub-1"}`,
		base64.StdEncoding.EncodeToString(payload), mustJSON(t, attributes))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	return string(data)
}

func TestHistoryHandler_HandlePush_AppendsHistory(t *testing.T) {
	locationUC := mockusecase.NewMockLocationUsecase(t)
	handler := &HistoryHandler{logger: slog.Default(), locationUC: locationUC}

	userID := uuid.New()
	accuracy := 8.0
	event := &service.LocationEvent{
		UserID:    userID.String(),
		Latitude:  35.6812,
		Longitude: 139.7671,
		Accuracy:  &accuracy,
		Motion:    "walking",
	}

	c, rec := newPushRequest(t, event, map[string]string{"request_id": "req-123"})

	locationUC.EXPECT().
		RecordHistory(mock.Anything, userID, 35.6812, 139.7671, &accuracy).
		Return(nil).
		Once()

	err := handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHistoryHandler_HandlePush_RetryableOnStorageFailure(t *testing.T) {
	locationUC := mockusecase.NewMockLocationUsecase(t)
	handler := &HistoryHandler{logger: slog.Default(), locationUC: locationUC}

	event := &service.LocationEvent{
		UserID:    uuid.New().String(),
		Latitude:  35.6812,
		Longitude: 139.7671,
	}

	c, rec := newPushRequest(t, event, nil)

	locationUC.EXPECT().
		RecordHistory(mock.Anything, mock.AnythingOfType("uuid.UUID"), 35.6812, 139.7671, (*float64)(nil)).
		Return(assert.AnError).
		Once()

	err := handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHistoryHandler_HandlePush_MalformedUserIDIsNotRetried(t *testing.T) {
	locationUC := mockusecase.NewMockLocationUsecase(t)
	handler := &HistoryHandler{logger: slog.Default(), locationUC: locationUC}

	event := &service.LocationEvent{
		UserID:    "not-a-uuid",
		Latitude:  35.6812,
		Longitude: 139.7671,
	}

	c, rec := newPushRequest(t, event, nil)

	err := handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHistoryHandler_HandlePush_BadBase64(t *testing.T) {
	locationUC := mockusecase.NewMockLocationUsecase(t)
	handler := &HistoryHandler{logger: slog.Default(), locationUC: locationUC}

	e := echo.New()
	body := `{"message":{"data":"%%%not-base64%%%","messageId":"msg-1"},"subscription":"sub-1"}`
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
