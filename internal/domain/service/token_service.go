package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	PrincipalID uuid.UUID `json:"sub"`
	Role        string    `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a new access token for a given principal and role.
	Generate(principalID uuid.UUID, role string) (string, error)

	// Validate checks the validity of a token string and returns its claims.
	Validate(tokenString string) (*Claims, error)
}
