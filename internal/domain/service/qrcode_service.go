package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for friend-invite QR codes: a scannable
// payload that lets another user send a friend request without typing a name.
type QRCodeService interface {
	// GenerateInviteQR generates a QR code PNG encoding a friend invite for the user.
	GenerateInviteQR(userID uuid.UUID) ([]byte, error)

	// ParseInviteQR parses QR payload data and returns the invited user's ID.
	ParseInviteQR(qrData string) (uuid.UUID, error)
}
