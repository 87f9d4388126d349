// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "eventsathi/internal/delivery/context"
	"eventsathi/internal/domain/entity"
	domainerrors "eventsathi/internal/domain/errors"
	"eventsathi/internal/domain/repository"
	"eventsathi/internal/domain/service"
	"eventsathi/internal/metrics"
	"eventsathi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface. Sign-up and sign-in each
// span two systems, the local credential store and the external identity
// provider, and this service owns the ordering between them.
type authService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	sessionRepo      repository.SessionRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	identityProvider service.IdentityProvider
	recorder         metrics.AuthRecorder
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	SessionRepo      repository.SessionRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	IdentityProvider service.IdentityProvider
	Recorder         metrics.AuthRecorder
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		sessionRepo:      params.SessionRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		identityProvider: params.IdentityProvider,
		recorder:         params.Recorder,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp provisions an account in both the identity provider and the local
// store. The provider account is created first so its user ID can seed the
// local row; if the local write then fails, the provider account is deleted
// again so a retry of the same email can succeed.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	email := normalizeEmail(input.Email)

	srv.log(ctx).Info("Starting sign up", slog.Any("role", input.Role), slog.String("email", email))

	if !input.Role.SelfRegisterable() {
		srv.recorder.RecordSignUpFailure("role")

		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "role is not open for self registration")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.recorder.RecordSignUpFailure("password")
		srv.log(ctx).Warn("Password validation failed during sign up", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordStrength, "password does not meet security requirements")
	}

	// Fast duplicate check before touching the provider. The unique
	// constraint on users.email remains the arbiter under concurrency.
	if _, err := srv.userRepo.FindByEmail(ctx, email); err == nil {
		srv.recorder.RecordSignUpFailure("duplicate_email")
		srv.log(ctx).Warn("Sign up rejected for existing email", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing user")
	}

	providerID, err := srv.createProviderAccount(ctx, email, input)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during sign up", slog.Any("error", err))
		srv.compensateProviderAccount(ctx, providerID, email)

		return nil, errors.Wrap(err, "failed to hash password during sign up")
	}

	newUser := buildUserEntity(providerID, email, hashedPassword, input)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, newUser)
	})
	if err != nil {
		compensated := srv.compensateProviderAccount(ctx, providerID, email)
		srv.recorder.RecordPartialProvisioning(compensated)
		srv.log(ctx).Error("Local provisioning failed after provider account creation",
			slog.String("email", email),
			slog.Any("provider_user_id", providerID),
			slog.Bool("compensated", compensated),
			slog.Any("error", err))

		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.recorder.RecordSignUpFailure("duplicate_email")

			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		}
		srv.recorder.RecordSignUpFailure("local_store")

		return nil, errors.Wrap(domainerrors.ErrPartialProvisioning, "failed to persist user after provider account creation")
	}

	srv.recorder.RecordSignUp(input.Role.String())
	srv.log(ctx).Info("Sign up completed", slog.Any("role", input.Role), slog.Any("user_id", newUser.ID))

	return &usecase.SignUpOutput{
		User: usecase.Identity{ID: newUser.ID, Email: newUser.Email, Role: newUser.Role},
	}, nil
}

// createProviderAccount registers the credentials with the identity provider
// and returns the provider-assigned user ID.
func (srv *authService) createProviderAccount(ctx context.Context, email string, input *usecase.SignUpInput) (uuid.UUID, error) {
	metadata := map[string]any{"role": input.Role.String()}
	if input.Name != "" {
		metadata["name"] = input.Name
	}
	if input.VendorName != "" {
		metadata["vendor_name"] = input.VendorName
	}

	start := time.Now()
	providerID, err := srv.identityProvider.CreateAccount(ctx, email, input.Password, metadata)
	srv.recorder.RecordProviderLatency("create_account", time.Since(start))

	if err != nil {
		srv.recorder.RecordSignUpFailure("provider")
		srv.log(ctx).Error("Identity provider rejected account creation", slog.String("email", email), slog.Any("error", err))

		return uuid.Nil, errors.Wrap(domainerrors.ErrProviderRejected, "identity provider rejected sign up")
	}

	return providerID, nil
}

// compensateProviderAccount deletes the provider account created during a
// sign up whose local half failed. It runs on a detached context so a
// cancelled request does not leave the orphan behind, and reports whether
// the cleanup succeeded.
func (srv *authService) compensateProviderAccount(ctx context.Context, providerID uuid.UUID, email string) bool {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	if err := srv.identityProvider.DeleteAccount(cleanupCtx, providerID); err != nil {
		srv.log(ctx).Error("Failed to delete orphaned provider account, manual cleanup required",
			slog.Any("provider_user_id", providerID),
			slog.String("email", email),
			slog.Any("error", err))

		return false
	}

	return true
}

// SignIn verifies the password against the local store, then mints a
// provider session. Both halves must succeed before any session state is
// written.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	email := normalizeEmail(input.Email)

	srv.log(ctx).Debug("Starting sign in", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.recorder.RecordSignInFailure("invalid_credentials")
			srv.log(ctx).Warn("Sign in attempt for unknown email", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
		}

		return nil, errors.Wrap(err, "failed to look up user for sign in")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.recorder.RecordSignInFailure("invalid_credentials")
		srv.log(ctx).Warn("Sign in password mismatch", slog.Any("user_id", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	start := time.Now()
	providerSession, err := srv.identityProvider.VerifyCredentials(ctx, email, input.Password)
	srv.recorder.RecordProviderLatency("verify_credentials", time.Since(start))

	if err != nil {
		srv.recorder.RecordSignInFailure("provider")
		srv.log(ctx).Error("Identity provider refused sign in despite valid local credentials",
			slog.Any("user_id", user.ID),
			slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrAuthenticationFailed, "identity provider refused sign in")
	}

	session := &entity.Session{
		ID:            uuid.New(),
		UserID:        user.ID,
		Email:         user.Email,
		Role:          user.Role,
		ProviderToken: providerSession.AccessToken,
		ExpiresAt:     time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(session)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens during sign in", slog.Any("user_id", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens during sign in")
	}
	session.TokenHash = srv.tokenService.HashToken(refreshToken)

	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		srv.log(ctx).Error("Failed to persist session during sign in", slog.Any("user_id", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist session during sign in")
	}

	srv.recorder.RecordSignIn()
	srv.log(ctx).Info("Sign in completed", slog.Any("user_id", user.ID), slog.Any("session_id", session.ID))

	return &usecase.SignInOutput{
		User:         usecase.Identity{ID: user.ID, Email: user.Email, Role: user.Role},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// SignOut revokes the session. Signing out an already-revoked session is not
// an error, so repeated calls and stale clients converge on the same state.
func (srv *authService) SignOut(ctx context.Context, sessionID uuid.UUID) error {
	session, err := srv.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			srv.log(ctx).Debug("Sign out for already-revoked session", slog.Any("session_id", sessionID))

			return nil
		}

		return errors.Wrap(err, "failed to load session for sign out")
	}

	if err := srv.sessionRepo.Delete(ctx, sessionID); err != nil {
		srv.log(ctx).Error("Failed to delete session during sign out", slog.Any("session_id", sessionID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete session during sign out")
	}

	// Local revocation is what matters; the provider side is best effort.
	invalidateCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	if err := srv.identityProvider.InvalidateSession(invalidateCtx, session.ProviderToken); err != nil {
		srv.log(ctx).Warn("Failed to invalidate provider session during sign out",
			slog.Any("session_id", sessionID),
			slog.Any("error", err))
	}

	srv.recorder.RecordSignOut()
	srv.log(ctx).Info("Sign out completed", slog.Any("user_id", session.UserID), slog.Any("session_id", sessionID))

	return nil
}

// Refresh exchanges a valid refresh token for a new access token. The token
// must both verify as a JWT and still map to a live session row, so revoked
// sessions cannot refresh.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil || claims.Type != service.TokenTypeRefresh {
		srv.log(ctx).Warn("Refresh rejected for invalid token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token failed validation")
	}

	session, err := srv.sessionRepo.FindByTokenHash(ctx, srv.tokenService.HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			srv.log(ctx).Warn("Refresh rejected for revoked session", slog.Any("user_id", claims.UserID))

			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "session has been revoked")
		}

		return nil, errors.Wrap(err, "failed to load session for refresh")
	}

	if session.Expired(time.Now()) {
		if err := srv.sessionRepo.Delete(ctx, session.ID); err != nil {
			srv.log(ctx).Warn("Failed to delete expired session during refresh", slog.Any("session_id", session.ID), slog.Any("error", err))
		}

		return nil, errors.Wrap(domainerrors.ErrSessionExpired, "refresh token session expired")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(session)
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token during refresh", slog.Any("session_id", session.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token during refresh")
	}

	srv.log(ctx).Debug("Refresh completed", slog.Any("session_id", session.ID))

	return &usecase.RefreshOutput{AccessToken: accessToken}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func buildUserEntity(id uuid.UUID, email, passwordHash string, input *usecase.SignUpInput) *entity.User {
	user := &entity.User{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         input.Role,
	}

	switch input.Role {
	case entity.RoleCustomer:
		user.CustomerProfile = &entity.CustomerProfile{
			UserID: id,
			Name:   input.Name,
			Phone:  input.Phone,
			Gender: input.Gender,
		}
	case entity.RoleVendor:
		user.VendorProfile = &entity.VendorProfile{
			UserID:       id,
			VendorName:   input.VendorName,
			BusinessName: input.BusinessName,
			Phone:        input.Phone,
			PAN:          strings.ToUpper(input.PAN),
			Aadhaar:      input.Aadhaar,
			GST:          input.GST,
			Categories:   dedupeCategories(input.Categories),
			Address:      input.Address,
		}
	}

	return user
}

func dedupeCategories(categories []string) []string {
	seen := make(map[string]struct{}, len(categories))
	out := make([]string, 0, len(categories))

	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	return out
}
