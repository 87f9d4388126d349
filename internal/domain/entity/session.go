// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a server-recognized sign-in. The access token issued to
// the client carries this record's ID; the authorization middleware rejects
// any token whose session row no longer exists, which is how sign-out
// revokes outstanding tokens.
type Session struct {
	ID            uuid.UUID // Referenced by the "sid" claim of access tokens.
	UserID        uuid.UUID
	Email         string
	Role          Role
	TokenHash     string    // SHA-256 hash of the raw refresh token.
	ProviderToken string    // External identity provider session token, invalidated best-effort at sign-out.
	ExpiresAt     time.Time // When the refresh token, and with it the session, expires.
	CreatedAt     time.Time
}

// Expired reports whether the session has passed its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
