package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodbridge/internal/delivery/api/response"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/service"
	mockService "foodbridge/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		header    string
		setupMock func(m *mockService.MockTokenService)
		expectErr error
		expect    entity.Caller
	}{
		{
			name:      "missing header",
			expectErr: domainerrors.ErrUnauthenticated,
		},
		{
			name:      "not a bearer token",
			header:    "Basic abc",
			expectErr: domainerrors.ErrTokenInvalid,
		},
		{
			name:   "token rejected",
			header: "Bearer expired",
			setupMock: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
			},
			expectErr: domainerrors.ErrTokenInvalid,
		},
		{
			name:   "unknown role",
			header: "Bearer forged",
			setupMock: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("forged").Return(&service.Claims{UserID: userID, Role: "superuser"}, nil)
			},
			expectErr: domainerrors.ErrTokenInvalid,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setupMock: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Role: "ngo", Verified: true}, nil)
			},
			expect: entity.Caller{UserID: userID, Role: entity.RoleNGO, Verified: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			if tt.setupMock != nil {
				tt.setupMock(tokenSvc)
			}

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			var got entity.Caller
			handler := NewAuthMiddleware(tokenSvc, discardLogger()).Authenticate(func(c echo.Context) error {
				got, _ = GetCaller(c)

				return nil
			})

			err := handler(c)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t), discardLogger())
	guard := m.RequireRole(entity.RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	e := echo.New()

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.ErrorIs(t, guard(c), domainerrors.ErrUnauthenticated)

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.Set(callerKey, entity.Caller{UserID: uuid.New(), Role: entity.RoleNGO})
	assert.ErrorIs(t, guard(c), domainerrors.ErrForbidden)

	rec := httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.Set(callerKey, entity.Caller{UserID: uuid.New(), Role: entity.RoleAdmin})
	require.NoError(t, guard(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails string
	}{
		{
			name:        "validation error keeps details",
			err:         domainerrors.ErrValidationFailed.WithDetails("expiryHours: must be between 1 and 48"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantMessage: "Input validation failed",
			wantDetails: "expiryHours: must be between 1 and 48",
		},
		{
			name:        "wrapped conflict",
			err:         errors.Wrap(domainerrors.ErrDonationAlreadyClaimed, "cancel"),
			wantStatus:  http.StatusConflict,
			wantCode:    "DONATION_ALREADY_CLAIMED",
			wantMessage: "Cannot cancel claimed donation. Please contact the NGO first",
		},
		{
			name:        "forbidden hides details",
			err:         domainerrors.ErrForbidden.WithDetails("role ngo"),
			wantStatus:  http.StatusForbidden,
			wantCode:    "FORBIDDEN",
			wantMessage: "Access denied. Insufficient permissions",
		},
		{
			name:        "echo body limit",
			err:         echo.ErrStatusRequestEntityTooLarge,
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantCode:    "PAYLOAD_TOO_LARGE",
			wantMessage: "Request Entity Too Large",
		},
		{
			name:        "unexpected error",
			err:         errors.New("pq: connection reset"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Internal server error, please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/donations", nil), rec)

			NewErrorMiddleware(discardLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMessage, body.Error)
			assert.Equal(t, tt.wantDetails, body.Details)
			require.NotNil(t, body.Meta)
			assert.NotEmpty(t, body.Meta.RequestID)
		})
	}
}
