package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/theobroma-digital/geo-api/internal/usecase"
)

// DebugHandler exposes the query-performance monitoring surface. There is
// no authentication in front of these routes yet.
type DebugHandler struct {
	statsUsecase usecase.StatsUsecase
}

func NewDebugHandler(statsUsecase usecase.StatsUsecase) *DebugHandler {
	return &DebugHandler{statsUsecase: statsUsecase}
}

func (h *DebugHandler) Register(app *fiber.App) {
	group := app.Group("/debug")
	group.Get("/query-stats", h.GetQueryStats)
	group.Post("/reset-query-stats", h.ResetQueryStats)
	group.Post("/enable-detailed-logging", h.EnableDetailedLogging)
	group.Post("/disable-detailed-logging", h.DisableDetailedLogging)
}

func (h *DebugHandler) GetQueryStats(c *fiber.Ctx) error {
	return c.JSON(h.statsUsecase.GetQueryStats())
}

func (h *DebugHandler) ResetQueryStats(c *fiber.Ctx) error {
	return c.JSON(h.statsUsecase.ResetQueryStats())
}

func (h *DebugHandler) EnableDetailedLogging(c *fiber.Ctx) error {
	return c.JSON(h.statsUsecase.EnableDetailedLogging())
}

func (h *DebugHandler) DisableDetailedLogging(c *fiber.Ctx) error {
	return c.JSON(h.statsUsecase.DisableDetailedLogging())
}
