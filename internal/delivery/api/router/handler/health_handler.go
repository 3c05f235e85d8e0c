// Package handler contains the echo handlers for the API surface.
package handler

import (
	"net/http"

	"vintagecomics/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, "ok", nil)
}
