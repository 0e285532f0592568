package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/theobroma-digital/geo-api/entity"
	"github.com/theobroma-digital/geo-api/internal/usecase"
)

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(entity.ErrorResponse{
		Error:   errorTitle(status),
		Message: message,
	})
}

func errorTitle(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "Not Found"
	case fiber.StatusBadRequest:
		return "Bad Request"
	default:
		return "Internal Server Error"
	}
}

// respondUsecaseError maps not-found errors to 404 and everything else to
// 500 with a caller-supplied prefix.
func respondUsecaseError(c *fiber.Ctx, err error, prefix string) error {
	var farmErr *usecase.FarmNotFoundError
	if errors.As(err, &farmErr) {
		return respondError(c, fiber.StatusNotFound, farmErr.Error())
	}
	var lotErr *usecase.LotNotFoundError
	if errors.As(err, &lotErr) {
		return respondError(c, fiber.StatusNotFound, lotErr.Error())
	}
	return respondError(c, fiber.StatusInternalServerError, prefix+": "+err.Error())
}
