package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "eventsathi/internal/delivery/context"
	"eventsathi/internal/domain/entity"
	"eventsathi/internal/domain/repository"
	"eventsathi/internal/domain/service"
	mockRepo "eventsathi/internal/mocks/repository"
	mockSvc "eventsathi/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authMiddlewareFixtures holds all test dependencies for auth middleware tests.
type authMiddlewareFixtures struct {
	middleware  *AuthMiddleware
	tokenSvc    *mockSvc.MockTokenService
	sessionRepo *mockRepo.MockSessionRepository
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	tokenSvc := mockSvc.NewMockTokenService(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)

	return authMiddlewareFixtures{
		middleware:  NewAuthMiddleware(tokenSvc, sessionRepo),
		tokenSvc:    tokenSvc,
		sessionRepo: sessionRepo,
	}
}

func newEchoContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func liveSession() *entity.Session {
	return &entity.Session{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Email:     "test@example.com",
		Role:      entity.RoleVendor,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	session := liveSession()

	fx.tokenSvc.EXPECT().
		ValidateToken("valid-token").
		Return(&service.Claims{UserID: session.UserID, SessionID: session.ID, Type: service.TokenTypeAccess}, nil)
	fx.sessionRepo.EXPECT().FindByID(mock.Anything, session.ID).Return(session, nil)

	c, rec := newEchoContext(t, "Bearer valid-token")

	var gotIdentity *deliverycontext.Identity
	handler := fx.middleware.Authenticate(func(c echo.Context) error {
		identity, ok := deliverycontext.GetIdentity(c)
		require.True(t, ok)
		gotIdentity = identity

		sessionID, ok := deliverycontext.GetSessionID(c)
		require.True(t, ok)
		assert.Equal(t, session.ID, sessionID)

		return c.NoContent(http.StatusOK)
	})

	err := handler(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotIdentity)
	assert.Equal(t, session.UserID, gotIdentity.UserID)
	assert.Equal(t, entity.RoleVendor, gotIdentity.Role)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c, rec := newEchoContext(t, "")

	err := fx.middleware.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_AUTHENTICATED")
	assert.Contains(t, rec.Body.String(), "Authentication required")
}

func TestAuthMiddleware_Authenticate_MalformedHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	for _, header := range []string{"valid-token", "Bearer ", "Basic dXNlcjpwYXNz"} {
		c, rec := newEchoContext(t, header)

		err := fx.middleware.Authenticate(okHandler)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header: %q", header)
	}
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.EXPECT().ValidateToken("bad-token").Return(nil, errors.New("token is malformed"))

	c, rec := newEchoContext(t, "Bearer bad-token")

	err := fx.middleware.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_RefreshTokenRejected(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	// Refresh tokens never pass the gate, even though they verify.
	fx.tokenSvc.EXPECT().
		ValidateToken("refresh-token").
		Return(&service.Claims{UserID: uuid.New(), SessionID: uuid.New(), Type: service.TokenTypeRefresh}, nil)

	c, rec := newEchoContext(t, "Bearer refresh-token")

	err := fx.middleware.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_RevokedSession(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	sessionID := uuid.New()

	// The token still verifies, but sign-out already deleted the session row.
	fx.tokenSvc.EXPECT().
		ValidateToken("valid-token").
		Return(&service.Claims{UserID: uuid.New(), SessionID: sessionID, Type: service.TokenTypeAccess}, nil)
	fx.sessionRepo.EXPECT().FindByID(mock.Anything, sessionID).Return(nil, repository.ErrSessionNotFound)

	c, rec := newEchoContext(t, "Bearer valid-token")

	err := fx.middleware.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_ExpiredSession(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	session := liveSession()
	session.ExpiresAt = time.Now().Add(-time.Minute)

	fx.tokenSvc.EXPECT().
		ValidateToken("valid-token").
		Return(&service.Claims{UserID: session.UserID, SessionID: session.ID, Type: service.TokenTypeAccess}, nil)
	fx.sessionRepo.EXPECT().FindByID(mock.Anything, session.ID).Return(session, nil)

	c, rec := newEchoContext(t, "Bearer valid-token")

	err := fx.middleware.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_OptionalAuthenticate_NoHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c, rec := newEchoContext(t, "")

	var hadIdentity bool
	err := fx.middleware.OptionalAuthenticate(func(c echo.Context) error {
		_, hadIdentity = deliverycontext.GetIdentity(c)

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, hadIdentity)
}

func TestAuthMiddleware_OptionalAuthenticate_InvalidTokenProceedsAnonymously(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.EXPECT().ValidateToken("bad-token").Return(nil, errors.New("token is malformed"))

	c, rec := newEchoContext(t, "Bearer bad-token")

	var hadIdentity bool
	err := fx.middleware.OptionalAuthenticate(func(c echo.Context) error {
		_, hadIdentity = deliverycontext.GetIdentity(c)

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, hadIdentity)
}

func TestAuthMiddleware_OptionalAuthenticate_ValidTokenSetsIdentity(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	session := liveSession()

	fx.tokenSvc.EXPECT().
		ValidateToken("valid-token").
		Return(&service.Claims{UserID: session.UserID, SessionID: session.ID, Type: service.TokenTypeAccess}, nil)
	fx.sessionRepo.EXPECT().FindByID(mock.Anything, session.ID).Return(session, nil)

	c, rec := newEchoContext(t, "Bearer valid-token")

	var gotIdentity *deliverycontext.Identity
	err := fx.middleware.OptionalAuthenticate(func(c echo.Context) error {
		gotIdentity, _ = deliverycontext.GetIdentity(c)

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotIdentity)
	assert.Equal(t, session.UserID, gotIdentity.UserID)
}

func TestAuthMiddleware_RequireRole_Match(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c, rec := newEchoContext(t, "")
	deliverycontext.SetIdentity(c, &deliverycontext.Identity{
		UserID: uuid.New(),
		Role:   entity.RoleVendor,
	}, uuid.New())

	err := fx.middleware.RequireRole(entity.RoleVendor)(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RequireRole_NoIdentity(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c, rec := newEchoContext(t, "")

	err := fx.middleware.RequireRole(entity.RoleVendor)(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole_FlatRoles(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	cases := []struct {
		name     string
		identity entity.Role
		required entity.Role
		message  string
	}{
		{"customer cannot use vendor routes", entity.RoleCustomer, entity.RoleVendor, "Vendor access required"},
		{"vendor cannot use customer routes", entity.RoleVendor, entity.RoleCustomer, "Customer access required"},
		{"admin does not inherit vendor", entity.RoleAdmin, entity.RoleVendor, "Vendor access required"},
		{"admin does not inherit customer", entity.RoleAdmin, entity.RoleCustomer, "Customer access required"},
		{"vendor cannot use admin routes", entity.RoleVendor, entity.RoleAdmin, "Admin access required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newEchoContext(t, "")
			deliverycontext.SetIdentity(c, &deliverycontext.Identity{
				UserID: uuid.New(),
				Role:   tc.identity,
			}, uuid.New())

			err := fx.middleware.RequireRole(tc.required)(okHandler)(c)

			require.NoError(t, err)
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Contains(t, rec.Body.String(), "ACCESS_DENIED")
			assert.Contains(t, rec.Body.String(), tc.message)
		})
	}
}
