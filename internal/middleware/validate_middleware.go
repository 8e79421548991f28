package middleware

import (
	"encoding/json"
	"errors"

	"catalog/internal/apperrors"
	"catalog/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductRequestKey is the ctx locals key under which ValidateProduct stores
// the validated request body.
const ProductRequestKey = "productRequest"

const (
	msgMissingFields = "Missing required fields: name, description, price, category"
	msgInvalidPrice  = "Price must be a positive number"
	msgInvalidBody   = "Invalid request body"
)

// ValidateProduct is a Fiber middleware that parses and validates a product
// write body. Exactly one message surfaces per request: presence failures
// win over the price range check. On success the validated request is stored
// in ctx locals so downstream handlers never re-check fields.
func ValidateProduct(validate *validator.Validate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ProductRequest
		if err := c.BodyParser(&req); err != nil {
			// A price of the wrong JSON type (e.g. "10") fails decoding
			// before the validator ever sees it.
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) && typeErr.Field == "price" {
				return apperrors.NewValidationError("price", msgInvalidPrice)
			}
			return apperrors.NewValidationError("", msgInvalidBody)
		}

		if err := validate.Struct(&req); err != nil {
			var validationErrors validator.ValidationErrors
			if !errors.As(err, &validationErrors) {
				return apperrors.NewValidationError("", msgInvalidBody)
			}
			for _, e := range validationErrors {
				if e.Tag() == "required" {
					return apperrors.NewValidationError(e.Field(), msgMissingFields)
				}
			}
			return apperrors.NewValidationError("price", msgInvalidPrice)
		}

		c.Locals(ProductRequestKey, &req)
		return c.Next()
	}
}
