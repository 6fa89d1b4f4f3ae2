package health

import (
	"demo-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the health endpoint.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealth)
}

// HandleHealth reports liveness.
// @Summary Health Check
// @Description Reports server status, uptime in seconds, version and environment.
// @Tags health
// @Produce json
// @Success 200 {object} health.Status
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	logger.WithRayID(h.logger, c).Debug("Health check")
	return c.JSON(h.service.Check())
}
