package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Root serves the API welcome message at /.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to HRMS Lite API",
	})
}

// Health backs the /health probe.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
