package handlers

import (
	"net/http"
	"time"

	"bank-assistant/internal/database"
	"bank-assistant/internal/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the liveness endpoints
type HealthCheckHandler struct {
	ledger   *database.DB
	identity *database.DB
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(ledger, identity *database.DB) *HealthCheckHandler {
	return &HealthCheckHandler{
		ledger:   ledger,
		identity: identity,
	}
}

// HealthCheck reports API and store connectivity status. The ledger store is
// essential: if it is down the service is unhealthy. The identity store only
// degrades the response.
//
// Method: GET /health
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if err := h.ledger.HealthCheck(); err != nil {
		traceID := getTraceID(c)
		errorResponse := errors.NewErrorResponse(
			errors.SystemServiceUnavailable,
			traceID,
			errors.WithDetails("Ledger store connection failed"),
		)
		return c.JSON(http.StatusServiceUnavailable, errorResponse)
	}

	status := "healthy"
	if err := h.identity.HealthCheck(); err != nil {
		status = "degraded"
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": status,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Hello is a static liveness probe that touches no dependency
//
// Method: GET /hello
func (h *HealthCheckHandler) Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "bank-assistant",
	})
}
