package handlers

import (
	"errors"
	"fmt"

	"sapling/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// statusFromError maps the domain error taxonomy to HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrInvalidAmount):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrInvalidCredentials), errors.Is(err, models.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, models.ErrGatewayUnavailable):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// fail writes the standard error body. Unexpected errors collapse to a
// generic message so storage or gateway internals never leak to clients.
func fail(c *fiber.Ctx, err error) error {
	status := statusFromError(err)
	message := err.Error()
	if status >= fiber.StatusInternalServerError {
		message = "Internal server error"
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}

// failValidation writes the per-field breakdown of a validator error.
func failValidation(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fail(c, fmt.Errorf("%s: %w", err.Error(), models.ErrValidation))
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// currentUserID returns the authenticated account id stored by the auth
// middleware.
func currentUserID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("no authenticated user: %w", models.ErrUnauthorized)
	}
	return userID, nil
}
