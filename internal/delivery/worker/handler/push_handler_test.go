package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodbridge/config"
	deliverycontext "foodbridge/internal/delivery/context"
	"foodbridge/internal/domain/constants"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/service"
	mockUsecase "foodbridge/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

const donationID = "3a7b9c1d-2e4f-4a6b-8c0d-1e2f3a4b5c6d"

func newPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockNotificationUsecase) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationUC: notificationUC,
	})

	return h, notificationUC
}

func envelopeFor(t *testing.T, data string, attributes map[string]string) string {
	t.Helper()

	var envelope PushEnvelope
	envelope.Message.Data = data
	envelope.Message.MessageID = "m-1"
	envelope.Message.Attributes = attributes
	envelope.Subscription = "projects/p/subscriptions/donation-events"

	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	return string(body)
}

func encodeEvent(t *testing.T, event service.DonationEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func post(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	claimed := service.DonationEvent{
		RequestID:    "req-from-api",
		EventType:    constants.EventDonationClaimed,
		DonationID:   donationID,
		RestaurantID: "f0e1d2c3-b4a5-4697-8879-6a5b4c3d2e1f",
		Status:       "claimed",
	}

	tests := []struct {
		name       string
		body       func(t *testing.T) string
		setupMock  func(m *mockUsecase.MockNotificationUsecase)
		wantStatus int
	}{
		{
			name: "dispatches and acks",
			body: func(t *testing.T) string {
				return envelopeFor(t, encodeEvent(t, claimed), map[string]string{"request_id": "req-attr"})
			},
			setupMock: func(m *mockUsecase.MockNotificationUsecase) {
				m.EXPECT().
					DispatchDonationEvent(mock.Anything, mock.MatchedBy(func(e *service.DonationEvent) bool {
						return e.EventType == constants.EventDonationClaimed && e.DonationID == donationID
					})).
					RunAndReturn(func(ctx context.Context, _ *service.DonationEvent) error {
						assert.Equal(t, "req-attr", deliverycontext.GetRequestIDFromContext(ctx))

						return nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "transient push failure asks for redelivery",
			body: func(t *testing.T) string { return envelopeFor(t, encodeEvent(t, claimed), nil) },
			setupMock: func(m *mockUsecase.MockNotificationUsecase) {
				m.EXPECT().DispatchDonationEvent(mock.Anything, mock.Anything).
					Return(errors.Wrap(errors.New("fcm: unavailable"), "failed to push donation.claimed"))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "permanent failure is acked",
			body: func(t *testing.T) string {
				unknown := claimed
				unknown.EventType = "donation.exploded"

				return envelopeFor(t, encodeEvent(t, unknown), nil)
			},
			setupMock: func(m *mockUsecase.MockNotificationUsecase) {
				m.EXPECT().DispatchDonationEvent(mock.Anything, mock.Anything).
					Return(domainerrors.ErrValidationFailed.WithDetails("unknown event type"))
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "undecodable data is acked without dispatch",
			body:       func(t *testing.T) string { return envelopeFor(t, "%%%not-base64", nil) },
			wantStatus: http.StatusOK,
		},
		{
			name: "event without donation id is acked without dispatch",
			body: func(t *testing.T) string {
				broken := claimed
				broken.DonationID = ""

				return envelopeFor(t, encodeEvent(t, broken), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "not an envelope",
			body:       func(*testing.T) string { return `[1,2,3]` },
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notificationUC := newPushHandler(t, &config.Config{})
			if tt.setupMock != nil {
				tt.setupMock(notificationUC)
			}

			rec := post(h, tt.body(t), nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesGoogleTokens(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{
		Provider:           constants.PubSubProviderGoogle,
		PushAudience:       "https://notifier.example/push",
		PushServiceAccount: "pusher@proj.iam.gserviceaccount.com",
	}}
	cfg.Env.Env = constants.EnvProduction

	newVerifyingHandler := func(t *testing.T, payload *idtoken.Payload, err error) (*PushHandler, *mockUsecase.MockNotificationUsecase) {
		h, notificationUC := newPushHandler(t, cfg)
		require.True(t, h.verifyPushAuth)
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "oidc", token)
			assert.Equal(t, "https://notifier.example/push", audience)

			return payload, err
		}

		return h, notificationUC
	}
	body := envelopeFor(t, base64.StdEncoding.EncodeToString([]byte(`{"event_type":"donation.cancelled","donation_id":"`+donationID+`"}`)), nil)
	bearer := http.Header{"Authorization": {"Bearer oidc"}}

	t.Run("missing token", func(t *testing.T) {
		h, _ := newPushHandler(t, cfg)
		assert.Equal(t, http.StatusUnauthorized, post(h, body, nil).Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		h, _ := newVerifyingHandler(t, nil, errors.New("expired"))
		assert.Equal(t, http.StatusUnauthorized, post(h, body, bearer).Code)
	})

	t.Run("wrong service account", func(t *testing.T) {
		h, _ := newVerifyingHandler(t, &idtoken.Payload{
			Issuer: "https://accounts.google.com",
			Claims: map[string]any{"email": "someone@else.test", "email_verified": true},
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, post(h, body, bearer).Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, notificationUC := newVerifyingHandler(t, &idtoken.Payload{
			Issuer: "accounts.google.com",
			Claims: map[string]any{"email": "pusher@proj.iam.gserviceaccount.com", "email_verified": true},
		}, nil)
		notificationUC.EXPECT().DispatchDonationEvent(mock.Anything, mock.Anything).Return(nil)

		assert.Equal(t, http.StatusOK, post(h, body, bearer).Code)
	})
}
