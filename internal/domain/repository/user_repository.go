// Package repository defines the persistence interfaces the use cases depend
// on. Concrete implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"eventsathi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Sentinel errors returned by repository implementations so use cases can
// branch without knowing the underlying driver.
var (
	// ErrUserNotFound is returned when no user row matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when an insert violates the users.email
	// unique constraint. The constraint is the final arbiter for concurrent
	// sign-ups with the same email.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines persistence operations for users and their
// role-profile rows.
type UserRepository interface {
	// FindByID retrieves a user by ID, preloading the role-profile row.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by lower-cased email, preloading the
	// role-profile row. Returns ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user together with its role-profile row.
	// Returns ErrDuplicateEmail on a unique-constraint violation.
	Create(ctx context.Context, user *entity.User) error

	// Update saves changes to the user and its role-profile row.
	Update(ctx context.Context, user *entity.User) error

	// List returns all users ordered by creation time, newest first.
	List(ctx context.Context) ([]*entity.User, error)
}
