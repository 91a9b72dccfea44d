package handler

import (
	"net/http"
	"time"

	"foodbridge/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthStatus is the body of GET /api/health.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, HealthStatus{
		Status:    "OK",
		Timestamp: time.Now().UTC(),
	})
}
