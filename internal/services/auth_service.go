package services

import (
	"fmt"

	"github.com/dgrijalva/jwt-go"
)

// AuthService verifies bearer credentials for write access to the catalog.
// Tokens are HMAC-signed JWTs checked against a shared secret; where the
// tokens come from is not this service's concern.
type AuthService struct {
	jwtSecret []byte
}

// NewAuthService creates a new AuthService.
func NewAuthService(jwtSecret string) *AuthService {
	return &AuthService{
		jwtSecret: []byte(jwtSecret),
	}
}

// Verify parses and validates a JWT token. A nil return means the credential
// grants write access.
func (s *AuthService) Verify(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return fmt.Errorf("invalid token")
	}
	return nil
}
