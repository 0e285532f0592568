package handler

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/theobroma-digital/geo-api/internal/usecase"
)

type FarmHandler struct {
	farmUsecase usecase.FarmUsecase
	lotUsecase  usecase.LotUsecase
	validate    *validator.Validate
}

func NewFarmHandler(farmUsecase usecase.FarmUsecase, lotUsecase usecase.LotUsecase) *FarmHandler {
	return &FarmHandler{
		farmUsecase: farmUsecase,
		lotUsecase:  lotUsecase,
		validate:    validator.New(),
	}
}

func (h *FarmHandler) Register(app *fiber.App) {
	app.Get("/farms", h.ListFarms)
	app.Get("/farms/:farm_id/lots", h.GetLotsSummary)
	app.Get("/farms/:farm_id/lots/:lot_id/trees", h.GetLotTrees)
}

func (h *FarmHandler) ListFarms(c *fiber.Ctx) error {
	resp, err := h.farmUsecase.GetAllFarms(c.Context())
	if err != nil {
		return respondUsecaseError(c, err, "Error fetching farms")
	}
	return c.JSON(resp)
}

type lotsQuery struct {
	Limit       int     `query:"limit" validate:"omitempty,gte=1,lte=100"`
	MinMaturity float64 `query:"min_maturity" validate:"omitempty,gte=0,lte=100"`
}

func (h *FarmHandler) GetLotsSummary(c *fiber.Ctx) error {
	var q lotsQuery
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := h.validate.Struct(&q); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	farm, err := h.farmUsecase.ResolveFarm(c.Context(), c.Params("farm_id"))
	if err != nil {
		return respondUsecaseError(c, err, "Error fetching lots data")
	}

	resp, err := h.lotUsecase.GetLotsSummary(c.Context(), farm, q.Limit, q.MinMaturity)
	if err != nil {
		return respondUsecaseError(c, err, "Error fetching lots data")
	}
	return c.JSON(resp)
}

type treesQuery struct {
	Limit int `query:"limit" validate:"omitempty,gte=1,lte=1000"`
}

func (h *FarmHandler) GetLotTrees(c *fiber.Ctx) error {
	lotNumber, err := strconv.Atoi(c.Params("lot_id"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid lot ID")
	}

	var q treesQuery
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := h.validate.Struct(&q); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	farm, err := h.farmUsecase.ResolveFarm(c.Context(), c.Params("farm_id"))
	if err != nil {
		return respondUsecaseError(c, err, "Error fetching trees data")
	}

	resp, err := h.lotUsecase.GetLotTrees(c.Context(), farm, lotNumber, q.Limit)
	if err != nil {
		return respondUsecaseError(c, err, "Error fetching trees data")
	}
	return c.JSON(resp)
}
