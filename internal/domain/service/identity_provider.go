package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProviderSession is the external session minted by the identity provider at
// sign-in. It is stored alongside the local session so sign-out can ask the
// provider to invalidate it.
type ProviderSession struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// IdentityProvider wraps the external authentication service. The provider
// owns the canonical user ID: CreateAccount's return value becomes the local
// User.ID, which is the join key between the two stores. All calls are opaque
// remote operations with bounded timeouts; a timeout is a failure, never a
// success.
type IdentityProvider interface {
	// CreateAccount registers email/password with the provider and returns
	// the provider-assigned user ID. Metadata is attached to the provider's
	// user record and is informational only.
	CreateAccount(ctx context.Context, email, password string, metadata map[string]any) (uuid.UUID, error)

	// VerifyCredentials asks the provider to verify email/password and mint
	// an external session.
	VerifyCredentials(ctx context.Context, email, password string) (*ProviderSession, error)

	// InvalidateSession revokes an external session token. Best-effort at
	// sign-out: local session clearing never depends on this succeeding.
	InvalidateSession(ctx context.Context, accessToken string) error

	// DeleteAccount removes a provider account. Used as the compensating
	// action when local provisioning fails after CreateAccount succeeded.
	DeleteAccount(ctx context.Context, providerUserID uuid.UUID) error
}
