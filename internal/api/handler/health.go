package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler handles GET /api/health — liveness probe. The stores are
// in-process memory, so there are no dependencies to probe: 200 means the
// process is serving.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness reports the process as alive.
//
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "Todo API is healthy"})
}
