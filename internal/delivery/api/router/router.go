// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"foodbridge/config"
	"foodbridge/internal/delivery/api/middleware"
	"foodbridge/internal/delivery/api/router/handler"
	"foodbridge/internal/domain/constants"
	"foodbridge/internal/domain/entity"
	"foodbridge/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	DonationHandler     *handler.DonationHandler
	AdminHandler        *handler.AdminHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Metrics             *metrics.Metrics `optional:"true"`
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	donationHandler     *handler.DonationHandler
	adminHandler        *handler.AdminHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
	metrics             *metrics.Metrics
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		donationHandler:     params.DonationHandler,
		adminHandler:        params.AdminHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
		metrics:             params.Metrics,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	if r.metrics != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.metrics.Path(), echo.WrapHandler(r.metrics.Handler()))
	}

	uploadPrefix := constants.DefaultUploadPrefix
	if r.config.Upload != nil && r.config.Upload.PublicPrefix != "" {
		uploadPrefix = r.config.Upload.PublicPrefix
	}
	e.GET(uploadPrefix+"/*", r.donationHandler.Image)

	api := e.Group("/api")
	api.GET("/health", handler.HealthCheck)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/profile", r.authHandler.GetProfile, r.authMiddleware.Authenticate)
		authGroup.PUT("/profile", r.authHandler.UpdateProfile, r.authMiddleware.Authenticate)
	}

	restaurantOnly := r.authMiddleware.RequireRole(entity.RoleRestaurant)
	ngoOnly := r.authMiddleware.RequireRole(entity.RoleNGO)

	donationsGroup := api.Group("/donations")
	donationsGroup.Use(r.authMiddleware.Authenticate)
	{
		donationsGroup.GET("", r.donationHandler.Browse)
		donationsGroup.GET("/stats", r.donationHandler.Stats)
		donationsGroup.POST("", r.donationHandler.Create, restaurantOnly)
		donationsGroup.GET("/my-donations", r.donationHandler.MyDonations, restaurantOnly)
		donationsGroup.DELETE("/:id", r.donationHandler.Cancel, restaurantOnly)
		donationsGroup.GET("/claimed", r.donationHandler.ClaimedDonations, ngoOnly)
		donationsGroup.POST("/:id/claim", r.donationHandler.Claim, ngoOnly)
		donationsGroup.PUT("/:id/complete", r.donationHandler.Complete, ngoOnly)
		donationsGroup.GET("/:id/pickup/qr", r.donationHandler.PickupQRCode,
			r.authMiddleware.RequireRole(entity.RoleRestaurant, entity.RoleNGO))
	}

	notificationsGroup := api.Group("/notifications")
	notificationsGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationsGroup.GET("", r.notificationHandler.List)
	}

	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/dashboard", r.adminHandler.Dashboard)
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.PUT("/users/:id/verify", r.adminHandler.VerifyUser)
		adminGroup.PUT("/users/:id/toggle-status", r.adminHandler.ToggleStatus)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)
		adminGroup.GET("/donations", r.adminHandler.ListDonations)
		adminGroup.GET("/logs", r.adminHandler.ListActivityLogs)
	}
}
