package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/theobroma-digital/geo-api/entity"
	"github.com/theobroma-digital/geo-api/internal/repository/postgres"
)

const apiVersion = "1.0.0"

type HealthHandler struct {
	db        *gorm.DB
	startTime time.Time
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		db:        db,
		startTime: time.Now(),
	}
}

func (h *HealthHandler) Register(app *fiber.App) {
	app.Get("/", h.Root)
	app.Get("/health", h.Health)
}

func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(entity.APIInfo{
		Message:     "Theobroma Digital API",
		Version:     apiVersion,
		Description: "Microservice for cocoa plantation monitoring",
		Endpoints: []string{
			"/farms - List available farms",
			"/farms/{farm_id}/lots - Get plantation lots summary",
			"/farms/{farm_id}/security/events - Get security events",
			"/farms/{farm_id}/weather - Get weather data",
			"/farms/{farm_id}/analytics/production - Get production analytics",
			"/health - Health check",
		},
	})
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := entity.HealthResponse{
		Status:        "healthy",
		Timestamp:     time.Now(),
		Version:       apiVersion,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		Database:      "connected",
	}

	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()
	if err := postgres.Ping(ctx, h.db); err != nil {
		resp.Status = "degraded"
		resp.Database = "unreachable"
	}
	return c.JSON(resp)
}
