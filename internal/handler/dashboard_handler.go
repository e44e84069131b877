package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/atrium-admin-api/internal/service"
	"github.com/noah-isme/atrium-admin-api/internal/utils"
)

// DashboardHandler exposes the aggregated statistics endpoint.
type DashboardHandler struct {
	service service.DashboardService
	logger  zerolog.Logger
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service service.DashboardService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger.With().Str("component", "dashboard_handler").Logger(),
	}
}

// Register attaches dashboard routes to the router group.
func (h *DashboardHandler) Register(router fiber.Router) {
	router.Get("/stats", h.stats)
}

func (h *DashboardHandler) stats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats(c.Context())
	if err != nil {
		if appErr, ok := utils.AsAppError(err); ok {
			requestLogger(h.logger, c).Error().Err(appErr.Err).Int("status", appErr.Status).Msg("dashboard stats request failed")
			return utils.SendAppError(c, appErr)
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("dashboard stats request failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "Unable to fetch dashboard statistics")
	}

	return utils.SendSuccess(c, "Dashboard statistics fetched successfully", stats)
}
