package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zenmap/config"
)

func testQRConfig(size int, level, baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.QRCode = &config.QRCodeConfig{
		Size:                 size,
		ErrorCorrectionLevel: level,
		BaseURL:              baseURL,
	}

	return cfg
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(testQRConfig(256, tt.errorCorrectionLevel, ""))
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateInviteQR(t *testing.T) {
	service := NewQRCodeService(testQRConfig(256, "M", "https://zenmap.example.com"))
	userID := uuid.New()

	qrBytes, err := service.GenerateInviteQR(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParseInviteQR(t *testing.T) {
	service := NewQRCodeService(testQRConfig(256, "M", ""))
	userID := uuid.New()

	data := QRCodeData{
		UserID: userID.String(),
		Type:   inviteType,
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseInviteQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestQRCodeService_ParseInviteQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(testQRConfig(256, "M", ""))

	_, err := service.ParseInviteQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParseInviteQR_WrongType(t *testing.T) {
	service := NewQRCodeService(testQRConfig(256, "M", ""))

	data := QRCodeData{
		UserID: uuid.New().String(),
		Type:   "subscription",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseInviteQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseInviteQR_InvalidUUID(t *testing.T) {
	service := NewQRCodeService(testQRConfig(256, "M", ""))

	data := QRCodeData{
		UserID: "not-a-valid-uuid",
		Type:   inviteType,
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseInviteQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse user ID")
}
