package repository

import (
	"context"

	"eventsathi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSessionNotFound is returned when no session row matches the lookup.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines persistence operations for server-side sessions.
type SessionRepository interface {
	// Create persists a new session row at sign-in.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its ID (the "sid" access-token claim).
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// FindByTokenHash retrieves a session by the SHA-256 hash of its refresh token.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// Delete removes a session row. Deleting an absent row is a no-op so
	// sign-out stays idempotent under races.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUserID removes all sessions belonging to a user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired removes sessions whose expiry has passed and reports how
	// many rows were removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
