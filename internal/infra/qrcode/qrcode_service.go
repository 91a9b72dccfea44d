package qrcode

import (
	"encoding/json"
	"fmt"

	"foodbridge/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const pickupTicketType = "pickup"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ticketPayload is the JSON encoded in a pickup QR code.
type ticketPayload struct {
	Type       string `json:"type"`
	PickupID   string `json:"pickup_id"`
	DonationID string `json:"donation_id"`
}

// NewQRCodeService creates a QR code service. Unknown levels fall back to "M".
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePickupQR renders the ticket as a PNG.
func (s *qrcodeService) GeneratePickupQR(ticket service.PickupTicket) ([]byte, error) {
	jsonData, err := json.Marshal(ticketPayload{
		Type:       pickupTicketType,
		PickupID:   ticket.PickupID.String(),
		DonationID: ticket.DonationID.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePickupQR decodes scanned QR text back into a ticket.
func (s *qrcodeService) ParsePickupQR(qrData string) (service.PickupTicket, error) {
	var data ticketPayload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return service.PickupTicket{}, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != pickupTicketType {
		return service.PickupTicket{}, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	pickupID, err := uuid.Parse(data.PickupID)
	if err != nil {
		return service.PickupTicket{}, fmt.Errorf("failed to parse pickup ID: %w", err)
	}
	donationID, err := uuid.Parse(data.DonationID)
	if err != nil {
		return service.PickupTicket{}, fmt.Errorf("failed to parse donation ID: %w", err)
	}

	return service.PickupTicket{PickupID: pickupID, DonationID: donationID}, nil
}
