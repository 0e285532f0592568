package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/theobroma-digital/geo-api/entity"
	"github.com/theobroma-digital/geo-api/internal/usecase"
)

type SecurityHandler struct {
	farmUsecase     usecase.FarmUsecase
	securityUsecase usecase.SecurityUsecase
	validate        *validator.Validate
}

func NewSecurityHandler(farmUsecase usecase.FarmUsecase, securityUsecase usecase.SecurityUsecase) *SecurityHandler {
	return &SecurityHandler{
		farmUsecase:     farmUsecase,
		securityUsecase: securityUsecase,
		validate:        validator.New(),
	}
}

func (h *SecurityHandler) Register(app *fiber.App) {
	app.Get("/farms/:farm_id/security/events", h.GetSecurityEvents)
}

type securityQuery struct {
	LotID          int    `query:"lot_id" validate:"omitempty,gte=1"`
	Severity       string `query:"severity"`
	UnresolvedOnly bool   `query:"unresolved_only"`
	Limit          int    `query:"limit" validate:"omitempty,gte=1,lte=500"`
}

func (h *SecurityHandler) GetSecurityEvents(c *fiber.Ctx) error {
	q := securityQuery{Limit: 50}
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := h.validate.Struct(&q); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}
	severity := entity.SecurityLevel(q.Severity)
	if severity != "" && !severity.Valid() {
		return respondError(c, fiber.StatusBadRequest, "Invalid severity level")
	}

	farm, err := h.farmUsecase.ResolveFarm(c.Context(), c.Params("farm_id"))
	if err != nil {
		return respondUsecaseError(c, err, "Error fetching security events")
	}

	resp, err := h.securityUsecase.GetSecurityEvents(c.Context(), farm, q.LotID, severity, q.UnresolvedOnly, q.Limit)
	if err != nil {
		return respondUsecaseError(c, err, "Error fetching security events")
	}
	return c.JSON(resp)
}
