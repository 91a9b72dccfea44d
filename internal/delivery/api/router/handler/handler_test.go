package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"foodbridge/internal/delivery/api/middleware"
	"foodbridge/internal/delivery/api/response"
	"foodbridge/internal/delivery/api/validator"
	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var (
	restaurant = entity.Caller{UserID: uuid.MustParse("6f1c3e52-7a0e-4f43-9d25-1f0a3c6b8e01"), Role: entity.RoleRestaurant, Verified: true}
	ngo        = entity.Caller{UserID: uuid.MustParse("b9d2a4c7-3e15-4a8f-8c60-2d7e9f1b4a02"), Role: entity.RoleNGO, Verified: true}
	admin      = entity.Caller{UserID: uuid.MustParse("0c8e7f6d-5b4a-4392-8d1c-0e9f8a7b6c03"), Role: entity.RoleAdmin, Verified: true}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestContext builds an echo context the way the router would hand it to a handler.
// A nil caller leaves the request unauthenticated.
func newTestContext(method, target, contentType string, body io.Reader, caller *entity.Caller) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if caller != nil {
		middleware.SetCaller(c, *caller)
	}

	return c, rec
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func decodeSuccess(t *testing.T, rec *httptest.ResponseRecorder, data any) response.SuccessResponse {
	t.Helper()

	var raw struct {
		Data    json.RawMessage    `json:"data"`
		Message string             `json:"message"`
		Meta    *response.MetaInfo `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	if data != nil {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}

	return response.SuccessResponse{Data: data, Message: raw.Message, Meta: raw.Meta}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}
