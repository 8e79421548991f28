package handlers

import (
	"errors"
	"log"

	"catalog/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the single place that turns failures into HTTP responses.
// Every route hands its errors here, so all failures share the
// {"error": "<message>"} shape. Unclassified errors become a generic 500;
// their detail is logged for operators but never sent to the client.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var notFound *apperrors.NotFoundError
	var validation *apperrors.ValidationError
	var unauthorized *apperrors.UnauthorizedError

	switch {
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": notFound.Error(),
		})
	case errors.As(err, &validation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validation.Error(),
		})
	case errors.As(err, &unauthorized):
		log.Printf("Unauthorized %s %s: %s", c.Method(), c.Path(), unauthorized.Reason)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	// Routing-level failures (404 on unknown paths, 405, body limits) carry
	// their own status code.
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error": fiberErr.Message,
		})
	}

	log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}
