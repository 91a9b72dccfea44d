package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"foodbridge/internal/delivery/api/middleware"
	"foodbridge/internal/delivery/api/response"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the admin panel.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// ToggleStatusRequest represents the body of PUT /users/:id/toggle-status
type ToggleStatusRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

// Dashboard handles GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	dashboard, err := h.adminUC.Dashboard(c.Request().Context(), caller)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dashboard)
}

// ListUsers handles GET /api/admin/users?role=&verified=&page=&limit=
func (h *AdminHandler) ListUsers(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	page, err := pageInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := usecase.ListUsersInput{PageInput: page}
	if raw := strings.TrimSpace(c.QueryParam("role")); raw != "" {
		role := entity.Role(strings.ToLower(raw))
		if !role.IsValid() {
			return response.HandleAppError(c, invalidParam("role", "must be restaurant or ngo"))
		}
		input.Role = &role
	}
	if input.Verified, err = optionalBool("verified", c.QueryParam("verified")); err != nil {
		return response.HandleAppError(c, err)
	}

	users, err := h.adminUC.ListUsers(c.Request().Context(), caller, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// VerifyUser handles PUT /api/admin/users/:id/verify
func (h *AdminHandler) VerifyUser(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	userID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adminUC.VerifyUser(c.Request().Context(), caller, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "User verified successfully", nil)
}

// ToggleStatus handles PUT /api/admin/users/:id/toggle-status
func (h *AdminHandler) ToggleStatus(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	userID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ToggleStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adminUC.SetUserActive(c.Request().Context(), caller, userID, *req.IsActive); err != nil {
		return response.HandleAppError(c, err)
	}

	message := "User deactivated successfully"
	if *req.IsActive {
		message = "User activated successfully"
	}

	return response.SuccessWithMessage(c, http.StatusOK, message, nil)
}

// DeleteUser handles DELETE /api/admin/users/:id
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	userID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adminUC.DeleteUser(c.Request().Context(), caller, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "User deleted successfully", nil)
}

// ListDonations handles GET /api/admin/donations?status=&page=&limit=
func (h *AdminHandler) ListDonations(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	page, err := pageInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := usecase.ListDonationsInput{PageInput: page}
	if raw := strings.TrimSpace(c.QueryParam("status")); raw != "" {
		status := entity.DonationStatus(strings.ToLower(raw))
		input.Status = &status
	}

	donations, err := h.adminUC.ListDonations(c.Request().Context(), caller, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, donations)
}

// ListActivityLogs handles GET /api/admin/logs?page=&limit=
func (h *AdminHandler) ListActivityLogs(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	page, err := pageInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	logs, err := h.adminUC.ListActivityLogs(c.Request().Context(), caller, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, logs)
}
