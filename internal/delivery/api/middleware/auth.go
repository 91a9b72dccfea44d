package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "foodbridge/internal/delivery/context"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const callerKey = "caller"

// AuthMiddleware turns a bearer token into an entity.Caller and gates routes by role.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the access token and stores the caller on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return domainerrors.ErrUnauthenticated
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			return domainerrors.ErrTokenInvalid
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			return domainerrors.ErrTokenInvalid
		}

		role := entity.Role(claims.Role)
		if !role.IsValid() {
			return domainerrors.ErrTokenInvalid
		}

		caller := entity.Caller{
			UserID:   claims.UserID,
			Role:     role,
			Verified: claims.Verified,
		}
		SetCaller(c, caller)

		ctx := c.Request().Context()
		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(
			slog.String("user_id", caller.UserID.String()),
			slog.String("role", caller.Role.String()),
		)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, reqLogger)))

		return next(c)
	}
}

// RequireRole rejects callers whose role is not listed. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := GetCaller(c)
			if !ok {
				return domainerrors.ErrUnauthenticated
			}
			if !allowed.Contains(caller.Role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// SetCaller stores the authenticated identity on the echo context.
func SetCaller(c echo.Context, caller entity.Caller) {
	c.Set(callerKey, caller)
}

// GetCaller returns the identity stored by Authenticate.
func GetCaller(c echo.Context) (entity.Caller, bool) {
	caller, ok := c.Get(callerKey).(entity.Caller)

	return caller, ok
}
