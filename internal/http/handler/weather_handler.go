package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/theobroma-digital/geo-api/internal/usecase"
)

type WeatherHandler struct {
	farmUsecase    usecase.FarmUsecase
	weatherUsecase usecase.WeatherUsecase
}

func NewWeatherHandler(farmUsecase usecase.FarmUsecase, weatherUsecase usecase.WeatherUsecase) *WeatherHandler {
	return &WeatherHandler{
		farmUsecase:    farmUsecase,
		weatherUsecase: weatherUsecase,
	}
}

func (h *WeatherHandler) Register(app *fiber.App) {
	app.Get("/farms/:farm_id/weather", h.GetWeatherData)
}

func (h *WeatherHandler) GetWeatherData(c *fiber.Ctx) error {
	lotNumbers, err := parseIntList(c.Query("lot_ids"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid lot_ids")
	}

	farm, err := h.farmUsecase.ResolveFarm(c.Context(), c.Params("farm_id"))
	if err != nil {
		return respondUsecaseError(c, err, "Error fetching weather data")
	}

	resp, err := h.weatherUsecase.GetWeatherData(c.Context(), farm, lotNumbers)
	if err != nil {
		return respondUsecaseError(c, err, "Error fetching weather data")
	}
	return c.JSON(resp)
}

func parseIntList(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
