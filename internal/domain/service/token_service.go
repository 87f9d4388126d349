package service

import (
	"time"

	"eventsathi/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the Claims.Type field.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims carried by issued tokens. Access tokens
// carry the full identity plus the session ID; refresh tokens carry only the
// user and session IDs.
type Claims struct {
	UserID    uuid.UUID   `json:"uid"`
	SessionID uuid.UUID   `json:"sid"`
	Email     string      `json:"email,omitempty"`
	Role      entity.Role `json:"role,omitempty"`
	Type      string      `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a
	// session. Both tokens embed the session ID so the middleware can check
	// the session row is still live.
	GenerateTokens(session *entity.Session) (accessToken string, refreshToken string, err error)

	// GenerateAccessToken creates only a new access token for an existing
	// session, used by the refresh flow.
	GenerateAccessToken(session *entity.Session) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// HashToken returns the hex-encoded SHA-256 hash of a raw token, used to
	// store refresh tokens without keeping the raw value.
	HashToken(token string) string

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
