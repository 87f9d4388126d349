package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"eventsathi/internal/domain/entity"
)

const (
	// KeyIdentity is the echo.Context key holding the authenticated identity.
	KeyIdentity = "identity"

	// KeySessionID is the echo.Context key holding the session ID from the
	// access token.
	KeySessionID = "session_id"
)

// Identity is the authenticated caller as established by the middleware.
type Identity struct {
	UserID uuid.UUID   `json:"id"`
	Email  string      `json:"email"`
	Role   entity.Role `json:"role"`
}

// SetIdentity stores the authenticated identity on the echo context.
func SetIdentity(c echo.Context, identity *Identity, sessionID uuid.UUID) {
	c.Set(KeyIdentity, identity)
	c.Set(KeySessionID, sessionID)
}

// GetIdentity extracts the authenticated identity from the echo context.
func GetIdentity(c echo.Context) (*Identity, bool) {
	identity, ok := c.Get(KeyIdentity).(*Identity)

	return identity, ok && identity != nil
}

// GetSessionID extracts the session ID from the echo context.
func GetSessionID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(KeySessionID).(uuid.UUID)

	return id, ok
}
