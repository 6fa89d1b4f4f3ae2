package hits

import (
	"fmt"
	"strconv"

	"demo-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for page-hit statistics.
type Handler struct {
	store  *Store
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(store *Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// RegisterRoutes registers the stats routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/stats", h.HandleStats)
}

// StatsResponse is the payload of GET /stats.
type StatsResponse struct {
	Limit int         `json:"limit" example:"10"`
	Paths []PathCount `json:"paths"`
}

// HandleStats returns the most requested paths.
// @Summary Top Requested Paths
// @Description Returns the most requested paths recorded by the page-hit store. Only mounted when a database is configured.
// @Tags stats
// @Produce json
// @Param limit query int false "Number of paths (1-100)" default(10)
// @Success 200 {object} hits.StatsResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	limit, err := parseLimit(c.Query("limit"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	paths, err := h.store.Top(c.UserContext(), limit)
	if err != nil {
		l.Error("Stats query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if paths == nil {
		paths = []PathCount{}
	}

	return c.JSON(StatsResponse{Limit: limit, Paths: paths})
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return DefaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > MaxLimit {
		return 0, fmt.Errorf("limit must be an integer between 1 and %d", MaxLimit)
	}
	return n, nil
}
