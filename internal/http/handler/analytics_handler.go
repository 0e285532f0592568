package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/theobroma-digital/geo-api/internal/usecase"
)

type AnalyticsHandler struct {
	farmUsecase      usecase.FarmUsecase
	analyticsUsecase usecase.AnalyticsUsecase
	validate         *validator.Validate
}

func NewAnalyticsHandler(farmUsecase usecase.FarmUsecase, analyticsUsecase usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{
		farmUsecase:      farmUsecase,
		analyticsUsecase: analyticsUsecase,
		validate:         validator.New(),
	}
}

func (h *AnalyticsHandler) Register(app *fiber.App) {
	app.Get("/farms/:farm_id/analytics/production", h.GetProductionAnalytics)
}

type analyticsQuery struct {
	ReadyThreshold float64 `query:"ready_threshold" validate:"gte=0,lte=100"`
}

func (h *AnalyticsHandler) GetProductionAnalytics(c *fiber.Ctx) error {
	q := analyticsQuery{ReadyThreshold: 80.0}
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := h.validate.Struct(&q); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	farm, err := h.farmUsecase.ResolveFarm(c.Context(), c.Params("farm_id"))
	if err != nil {
		return respondUsecaseError(c, err, "Error generating production analytics")
	}

	resp, err := h.analyticsUsecase.GetProductionAnalytics(c.Context(), farm, q.ReadyThreshold)
	if err != nil {
		return respondUsecaseError(c, err, "Error generating production analytics")
	}
	return c.JSON(resp)
}
