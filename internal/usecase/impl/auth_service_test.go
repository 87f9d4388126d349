package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"eventsathi/internal/domain/entity"
	domainerrors "eventsathi/internal/domain/errors"
	"eventsathi/internal/domain/repository"
	"eventsathi/internal/domain/service"
	"eventsathi/internal/metrics"
	mockRepo "eventsathi/internal/mocks/repository"
	mockSvc "eventsathi/internal/mocks/service"
	"eventsathi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service          usecase.AuthUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	sessionRepo      *mockRepo.MockSessionRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	identityProvider *mockSvc.MockIdentityProvider
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	identityProvider := mockSvc.NewMockIdentityProvider(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		SessionRepo:      sessionRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		IdentityProvider: identityProvider,
		Recorder:         metrics.NewNopRecorder(),
		Logger:           logger,
	})

	return authServiceFixtures{
		service:          service,
		txManager:        txManager,
		userRepo:         userRepo,
		sessionRepo:      sessionRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		identityProvider: identityProvider,
	}
}

func customerSignUpInput() *usecase.SignUpInput {
	return &usecase.SignUpInput{
		Email:    "test@example.com",
		Password: "Password123!",
		Role:     entity.RoleCustomer,
		Name:     "Test Customer",
		Phone:    "9876543210",
	}
}

func TestAuthService_SignUp_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := customerSignUpInput()
	providerID := uuid.New()

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.identityProvider.EXPECT().
		CreateAccount(ctx, input.Email, input.Password, mock.AnythingOfType("map[string]interface {}")).
		Return(providerID, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, providerID, user.ID)
					assert.Equal(t, "hashed_password", user.PasswordHash)
					require.NotNil(t, user.CustomerProfile)
					assert.Equal(t, input.Name, user.CustomerProfile.Name)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.SignUp(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, providerID, output.User.ID)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleCustomer, output.User.Role)
}

func TestAuthService_SignUp_NormalizesEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := customerSignUpInput()
	input.Email = "  Test@Example.COM "
	providerID := uuid.New()

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(nil, repository.ErrUserNotFound)
	fx.identityProvider.EXPECT().
		CreateAccount(ctx, "test@example.com", input.Password, mock.AnythingOfType("map[string]interface {}")).
		Return(providerID, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, "test@example.com", user.Email)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.SignUp(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "test@example.com", output.User.Email)
}

func TestAuthService_SignUp_AdminRoleRejected(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := customerSignUpInput()
	input.Role = entity.RoleAdmin

	output, err := fx.service.SignUp(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_SignUp_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := customerSignUpInput()
	input.Password = "short"

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(errors.New("too short"))

	output, err := fx.service.SignUp(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := customerSignUpInput()

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

	output, err := fx.service.SignUp(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_SignUp_ProviderRejected(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := customerSignUpInput()

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.identityProvider.EXPECT().
		CreateAccount(ctx, input.Email, input.Password, mock.AnythingOfType("map[string]interface {}")).
		Return(uuid.Nil, errors.New("provider unavailable"))

	output, err := fx.service.SignUp(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderRejected))
}

func TestAuthService_SignUp_LocalWriteFailureCompensatesProvider(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := customerSignUpInput()
	providerID := uuid.New()

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.identityProvider.EXPECT().
		CreateAccount(ctx, input.Email, input.Password, mock.AnythingOfType("map[string]interface {}")).
		Return(providerID, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset"))

	// The provider account must be deleted so a retry of the same email works.
	fx.identityProvider.EXPECT().
		DeleteAccount(mock.Anything, providerID).
		Return(nil)

	output, err := fx.service.SignUp(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPartialProvisioning))
}

func TestAuthService_SignUp_ConcurrentDuplicateMapsToAlreadyExists(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := customerSignUpInput()
	providerID := uuid.New()

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.identityProvider.EXPECT().
		CreateAccount(ctx, input.Email, input.Password, mock.AnythingOfType("map[string]interface {}")).
		Return(providerID, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	// A racing sign-up won the unique constraint on users.email.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrDuplicateEmail)

	fx.identityProvider.EXPECT().
		DeleteAccount(mock.Anything, providerID).
		Return(nil)

	output, err := fx.service.SignUp(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_SignUp_CompensationFailureStillFails(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := customerSignUpInput()
	providerID := uuid.New()

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.identityProvider.EXPECT().
		CreateAccount(ctx, input.Email, input.Password, mock.AnythingOfType("map[string]interface {}")).
		Return(providerID, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset"))

	fx.identityProvider.EXPECT().
		DeleteAccount(mock.Anything, providerID).
		Return(errors.New("provider unavailable"))

	output, err := fx.service.SignUp(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPartialProvisioning))
}

func TestAuthService_SignUp_VendorProfileNormalized(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignUpInput{
		Email:        "vendor@example.com",
		Password:     "Password123!",
		Role:         entity.RoleVendor,
		VendorName:   "Royal Caterers",
		BusinessName: "Royal Caterers Pvt Ltd",
		PAN:          "abcde1234f",
		Aadhaar:      "123412341234",
		Categories:   []string{"catering", "catering", "decor", " "},
		Phone:        "9876543210",
	}
	providerID := uuid.New()

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.identityProvider.EXPECT().
		CreateAccount(ctx, input.Email, input.Password, mock.AnythingOfType("map[string]interface {}")).
		Return(providerID, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					require.NotNil(t, user.VendorProfile)
					assert.Equal(t, "ABCDE1234F", user.VendorProfile.PAN)
					assert.Equal(t, []string{"catering", "decor"}, user.VendorProfile.Categories)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.SignUp(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendor, output.User.Role)
}

func TestAuthService_SignIn_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleCustomer,
	}
	input := &usecase.SignInInput{Email: user.Email, Password: "Password123!"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.identityProvider.EXPECT().
		VerifyCredentials(ctx, user.Email, input.Password).
		Return(&service.ProviderSession{AccessToken: "provider_token"}, nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("*entity.Session")).
		Return("access_token", "refresh_token", nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_hash")
	fx.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(ctx context.Context, session *entity.Session) {
			assert.Equal(t, user.ID, session.UserID)
			assert.Equal(t, "provider_token", session.ProviderToken)
			assert.Equal(t, "refresh_hash", session.TokenHash)
		}).
		Return(nil)

	output, err := fx.service.SignIn(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestAuthService_SignIn_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignInInput{Email: "nobody@example.com", Password: "Password123!"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.SignIn(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleCustomer,
	}
	input := &usecase.SignInInput{Email: user.Email, Password: "wrong"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false)

	output, err := fx.service.SignIn(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	// Same error for wrong password and unknown email, so callers cannot
	// tell which accounts exist.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_SignIn_ProviderRefusal(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleCustomer,
	}
	input := &usecase.SignInInput{Email: user.Email, Password: "Password123!"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.identityProvider.EXPECT().
		VerifyCredentials(ctx, user.Email, input.Password).
		Return(nil, errors.New("provider unavailable"))

	output, err := fx.service.SignIn(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	// No session row may exist when the provider half failed.
	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationFailed))
	fx.sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_SignOut_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	session := &entity.Session{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		ProviderToken: "provider_token",
	}

	fx.sessionRepo.EXPECT().FindByID(ctx, session.ID).Return(session, nil)
	fx.sessionRepo.EXPECT().Delete(ctx, session.ID).Return(nil)
	fx.identityProvider.EXPECT().InvalidateSession(mock.Anything, "provider_token").Return(nil)

	err := fx.service.SignOut(ctx, session.ID)

	require.NoError(t, err)
}

func TestAuthService_SignOut_AlreadySignedOut(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	sessionID := uuid.New()

	fx.sessionRepo.EXPECT().FindByID(ctx, sessionID).Return(nil, repository.ErrSessionNotFound)

	err := fx.service.SignOut(ctx, sessionID)

	require.NoError(t, err)
	fx.sessionRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestAuthService_SignOut_ProviderInvalidationFailureIgnored(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	session := &entity.Session{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		ProviderToken: "provider_token",
	}

	fx.sessionRepo.EXPECT().FindByID(ctx, session.ID).Return(session, nil)
	fx.sessionRepo.EXPECT().Delete(ctx, session.ID).Return(nil)
	fx.identityProvider.EXPECT().
		InvalidateSession(mock.Anything, "provider_token").
		Return(errors.New("provider unavailable"))

	err := fx.service.SignOut(ctx, session.ID)

	require.NoError(t, err)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	session := &entity.Session{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.tokenService.EXPECT().
		ValidateToken("refresh_token").
		Return(&service.Claims{UserID: session.UserID, SessionID: session.ID, Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_hash")
	fx.sessionRepo.EXPECT().FindByTokenHash(ctx, "refresh_hash").Return(session, nil)
	fx.tokenService.EXPECT().GenerateAccessToken(session).Return("new_access_token", nil)

	output, err := fx.service.Refresh(ctx, "refresh_token")

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "new_access_token", output.AccessToken)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("garbage").
		Return(nil, errors.New("token is malformed"))

	output, err := fx.service.Refresh(ctx, "garbage")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAuthService_Refresh_AccessTokenRejected(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	// A structurally valid access token must not be usable as a refresh token.
	fx.tokenService.EXPECT().
		ValidateToken("access_token").
		Return(&service.Claims{UserID: uuid.New(), SessionID: uuid.New(), Type: service.TokenTypeAccess}, nil)

	output, err := fx.service.Refresh(ctx, "access_token")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAuthService_Refresh_RevokedSession(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("refresh_token").
		Return(&service.Claims{UserID: uuid.New(), SessionID: uuid.New(), Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_hash")
	fx.sessionRepo.EXPECT().FindByTokenHash(ctx, "refresh_hash").Return(nil, repository.ErrSessionNotFound)

	output, err := fx.service.Refresh(ctx, "refresh_token")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAuthService_Refresh_ExpiredSession(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	session := &entity.Session{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	fx.tokenService.EXPECT().
		ValidateToken("refresh_token").
		Return(&service.Claims{UserID: session.UserID, SessionID: session.ID, Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_hash")
	fx.sessionRepo.EXPECT().FindByTokenHash(ctx, "refresh_hash").Return(session, nil)
	fx.sessionRepo.EXPECT().Delete(ctx, session.ID).Return(nil)

	output, err := fx.service.Refresh(ctx, "refresh_token")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}
