package middleware

import (
	"log"
	"strings"

	"catalog/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// TokenVerifier is the opaque credential check behind the auth gate.
type TokenVerifier interface {
	Verify(token string) error
}

// AuthRequired is a Fiber middleware that rejects requests without a valid
// bearer credential. It is registered ahead of body validation on every
// write route, so an unauthorized request is reported as unauthorized even
// when its body is also invalid.
func AuthRequired(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperrors.NewUnauthorizedError("missing Authorization header")
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return apperrors.NewUnauthorizedError("malformed Authorization header")
		}

		if err := verifier.Verify(parts[1]); err != nil {
			log.Printf("Token verification failed: %v", err)
			return apperrors.NewUnauthorizedError(err.Error())
		}

		return c.Next()
	}
}
