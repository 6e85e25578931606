package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"vitrina/internal/domain/entity"
)

// Claims defines the custom claims carried by the session tokens.
type Claims struct {
	UserID string
	Roles  entity.Roles
	Type   string // "access" or "refresh".
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating the
// session JWTs. Authorization decisions are made from the roles claim,
// never from anything else in the request.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID string, roles entity.Roles) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration

	// HashToken returns the digest under which a refresh token is persisted.
	// The raw token never touches the database.
	HashToken(tokenString string) string
}
