package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID   uuid.UUID `json:"uid"`
	Role     string    `json:"role"`
	Verified bool      `json:"verified"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for the user.
	GenerateToken(userID uuid.UUID, role string, verified bool) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenDuration returns the configured lifetime of access tokens.
	TokenDuration() time.Duration
}
