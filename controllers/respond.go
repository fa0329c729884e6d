package controllers

import (
	"errors"

	"pos-service/apperrors"

	"github.com/gofiber/fiber/v2"
)

// fail translates a service error into the HTTP status of its taxonomy
// class and a {"error": ...} body.
func fail(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		status = fiber.StatusConflict
	case errors.Is(err, apperrors.ErrPeripheral):
		status = fiber.StatusBadGateway
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badBody(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
}

func badParam(ctx *fiber.Ctx, name string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid URL parameter: " + name})
}
