package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/navfer/DamGram-Servidor/internal/apperr"
)

// fail maps the core error taxonomy onto transport statuses. This is the
// only place that knows the mapping.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrMalformedID):
		status = fiber.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		status = fiber.StatusConflict
	case errors.Is(err, apperr.ErrInvalidCredentials),
		errors.Is(err, apperr.ErrInvalidToken):
		status = fiber.StatusUnauthorized
	case errors.Is(err, apperr.ErrInfrastructure):
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
