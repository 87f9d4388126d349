// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"eventsathi/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to provision a new account. Role
// decides which of the role-specific field groups applies.
type SignUpInput struct {
	Email    string
	Password string
	Role     entity.Role

	// Customer fields.
	Name   string
	Gender string

	// Vendor fields.
	VendorName   string
	BusinessName string
	PAN          string
	Aadhaar      string
	GST          string
	Categories   []string
	Address      string

	// Shared.
	Phone string
}

// SignInInput defines the data required to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// Identity is the minimal identity returned to clients. It never carries the
// password hash.
type Identity struct {
	ID    uuid.UUID   `json:"id"`
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
}

// SignUpOutput returns the newly provisioned identity.
type SignUpOutput struct {
	User Identity `json:"user"`
}

// SignInOutput returns the issued tokens after a successful sign-in.
type SignInOutput struct {
	User         Identity `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
}

// RefreshOutput returns a new access token for an existing session.
type RefreshOutput struct {
	AccessToken string `json:"access_token"`
}

// AuthUsecase defines the authentication and provisioning operations the
// delivery layer depends on.
type AuthUsecase interface {
	// SignUp provisions an account in both the credential store and the
	// identity provider, plus the role-profile row, as the ordered sequence
	// described in the service implementation.
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error)

	// SignIn verifies credentials locally, mints an external provider
	// session, and creates the server-side session.
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)

	// SignOut destroys the session identified by sessionID and best-effort
	// invalidates the external provider session. Idempotent: a missing
	// session is treated as already signed out.
	SignOut(ctx context.Context, sessionID uuid.UUID) error

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (*RefreshOutput, error)
}
