package integrity

import (
	"demo-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/integrity", h.HandleIntegrityCheck)
}

// HandleIntegrityCheck runs all deployment checks against the served directory.
// @Summary Run Deployment Checks
// @Description Validates required files, the PWA manifest, the service worker and the JavaScript modules of the served directory.
// @Tags integrity
// @Produce json
// @Success 200 {object} integrity.Report
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Run(c.UserContext())
	if err != nil {
		l.Error("Integrity check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.OK() {
		l.Warn("Integrity check reported failures", zap.Int("failed", report.Summary.Failed))
	}
	return c.JSON(report)
}
