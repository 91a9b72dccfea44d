package service

import (
	"github.com/google/uuid"
)

// PickupTicket identifies a pickup at handover time.
type PickupTicket struct {
	PickupID   uuid.UUID
	DonationID uuid.UUID
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePickupQR renders the pickup ticket as a PNG QR code
	GeneratePickupQR(ticket PickupTicket) ([]byte, error)

	// ParsePickupQR parses QR code data back into a pickup ticket
	ParsePickupQR(qrData string) (PickupTicket, error)
}
