// Package middleware holds the echo middleware shared by the API and the worker.
package middleware

import (
	"log/slog"

	deliverycontext "foodbridge/internal/delivery/context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Client supplied ids are echoed into logs and events, so only short printable tokens are accepted.
const requestIDRule = "required,max=128,printascii,excludesall= "

// RequestIDMiddleware assigns every request an id and a logger tagged with it.
type RequestIDMiddleware struct {
	logger   *slog.Logger
	validate *validator.Validate
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger:   logger,
		validate: validator.New(),
	}
}

// Process reuses a well-formed X-Request-Id header or generates a UUID, then stores the id and a
// request-scoped logger on both the echo context and the request context.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if m.validate.Var(requestID, requestIDRule) != nil {
			requestID = uuid.NewString()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", requestID)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
