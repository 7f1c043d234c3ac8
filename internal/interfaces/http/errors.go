package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/churn-predictor/internal/application/dto"
	"github.com/jhoicas/churn-predictor/internal/domain"
)

// errorStatus traduce un error del caso de uso a código HTTP y código de negocio.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrInference):
		return fiber.StatusBadGateway, "INFERENCE"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

func writeError(c *fiber.Ctx, err error) error {
	status, code := errorStatus(err)
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
