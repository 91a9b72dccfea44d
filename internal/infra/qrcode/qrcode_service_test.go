package qrcode

import (
	"encoding/json"
	"testing"

	"foodbridge/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  int
	}{
		{"L", 0},
		{"M", 1},
		{"Q", 2},
		{"H", 3},
		{"invalid", 1},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			svc := NewQRCodeService(256, tt.level).(*qrcodeService)
			assert.Equal(t, tt.want, int(svc.errorCorrectionLevel))
		})
	}
}

func TestQRCodeService_GeneratePickupQR(t *testing.T) {
	for _, size := range []int{128, 256, 0} {
		svc := NewQRCodeService(size, "M")

		pngBytes, err := svc.GeneratePickupQR(service.PickupTicket{PickupID: uuid.New(), DonationID: uuid.New()})
		require.NoError(t, err)
		require.Greater(t, len(pngBytes), 4)

		// PNG magic number
		assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, pngBytes[:4])
	}
}

func TestQRCodeService_ParsePickupQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	ticket := service.PickupTicket{PickupID: uuid.New(), DonationID: uuid.New()}

	payload, err := json.Marshal(ticketPayload{
		Type:       "pickup",
		PickupID:   ticket.PickupID.String(),
		DonationID: ticket.DonationID.String(),
	})
	require.NoError(t, err)

	parsed, err := svc.ParsePickupQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, ticket, parsed)
}

func TestQRCodeService_ParsePickupQR_Errors(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"invalid json", "not json", "failed to unmarshal QR code data"},
		{"wrong type", `{"type":"subscription","pickup_id":"` + uuid.NewString() + `"}`, "invalid QR code type"},
		{"bad pickup id", `{"type":"pickup","pickup_id":"x","donation_id":"` + uuid.NewString() + `"}`, "failed to parse pickup ID"},
		{"bad donation id", `{"type":"pickup","pickup_id":"` + uuid.NewString() + `","donation_id":"x"}`, "failed to parse donation ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParsePickupQR(tt.data)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
