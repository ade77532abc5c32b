package service

import "github.com/golang-jwt/jwt/v5"

// TokenService validates access tokens issued by the external auth system.
// Token issuance (login, refresh) is not part of this service.
type TokenService interface {
	// ValidateToken parses and validates a signed JWT against the given secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
