package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventsathi/internal/delivery/http/middleware"
	"eventsathi/internal/delivery/http/validator"
	"eventsathi/internal/domain/entity"
	"eventsathi/internal/domain/repository"
	"eventsathi/internal/domain/service"
	mockRepo "eventsathi/internal/mocks/repository"
	mockSvc "eventsathi/internal/mocks/service"
	mockUsecase "eventsathi/internal/mocks/usecase"
	"eventsathi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authHandlerFixtures holds all test dependencies for auth handler tests.
type authHandlerFixtures struct {
	handler     *AuthHandler
	uc          *mockUsecase.MockAuthUsecase
	tokenSvc    *mockSvc.MockTokenService
	sessionRepo *mockRepo.MockSessionRepository
}

func createTestAuthHandler(t *testing.T) authHandlerFixtures {
	uc := mockUsecase.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return authHandlerFixtures{
		handler:     NewAuthHandler(uc, logger),
		uc:          uc,
		tokenSvc:    mockSvc.NewMockTokenService(t),
		sessionRepo: mockRepo.NewMockSessionRepository(t),
	}
}

// newAuthEcho wires the auth routes the way the router registers them, with
// the request validator installed and sign-out behind OptionalAuthenticate.
func newAuthEcho(fx authHandlerFixtures) *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	authMW := middleware.NewAuthMiddleware(fx.tokenSvc, fx.sessionRepo)
	e.POST("/auth/signup", fx.handler.SignUp)
	e.POST("/auth/signout", fx.handler.SignOut, authMW.OptionalAuthenticate)
	e.GET("/auth/status", fx.handler.Status, authMW.OptionalAuthenticate)

	return e
}

func postJSON(e *echo.Echo, path string, body string, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthHandler_SignUp_CustomerWithoutPhone(t *testing.T) {
	fx := createTestAuthHandler(t)
	e := newAuthEcho(fx)

	userID := uuid.New()
	fx.uc.EXPECT().
		SignUp(mock.Anything, mock.AnythingOfType("*usecase.SignUpInput")).
		RunAndReturn(func(_ context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
			assert.Equal(t, "a@x.com", input.Email)
			assert.Equal(t, entity.RoleCustomer, input.Role)
			assert.Equal(t, "A", input.Name)
			assert.Empty(t, input.Phone)

			return &usecase.SignUpOutput{
				User: usecase.Identity{ID: userID, Email: input.Email, Role: input.Role},
			}, nil
		})

	rec := postJSON(e, "/auth/signup",
		`{"email":"a@x.com","password":"secret1","role":"customer","name":"A"}`, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "User registered successfully")
	assert.Contains(t, rec.Body.String(), userID.String())
}

func TestAuthHandler_SignUp_MalformedPhoneStillRejected(t *testing.T) {
	fx := createTestAuthHandler(t)
	e := newAuthEcho(fx)

	rec := postJSON(e, "/auth/signup",
		`{"email":"a@x.com","password":"secret1","role":"customer","name":"A","phone":"12345"}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	fx.uc.AssertNotCalled(t, "SignUp")
}

func TestAuthHandler_SignOut_TwiceNeverErrors(t *testing.T) {
	fx := createTestAuthHandler(t)
	e := newAuthEcho(fx)

	session := &entity.Session{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Email:     "test@example.com",
		Role:      entity.RoleCustomer,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	claims := &service.Claims{UserID: session.UserID, SessionID: session.ID, Type: service.TokenTypeAccess}

	fx.tokenSvc.EXPECT().ValidateToken("access-token").Return(claims, nil).Twice()
	// The first call still resolves the session; the sign-out deletes it, so
	// the second lookup misses.
	fx.sessionRepo.EXPECT().FindByID(mock.Anything, session.ID).Return(session, nil).Once()
	fx.sessionRepo.EXPECT().FindByID(mock.Anything, session.ID).Return(nil, repository.ErrSessionNotFound).Once()
	fx.uc.EXPECT().SignOut(mock.Anything, session.ID).Return(nil).Once()

	first := postJSON(e, "/auth/signout", "", "access-token")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Contains(t, first.Body.String(), "Signed out successfully")

	second := postJSON(e, "/auth/signout", "", "access-token")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Contains(t, second.Body.String(), "Signed out successfully")
}

func TestAuthHandler_SignOut_NoTokenSucceeds(t *testing.T) {
	fx := createTestAuthHandler(t)
	e := newAuthEcho(fx)

	rec := postJSON(e, "/auth/signout", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Signed out successfully")
	fx.uc.AssertNotCalled(t, "SignOut")
}

func TestAuthHandler_Status_AnonymousUserIsNull(t *testing.T) {
	fx := createTestAuthHandler(t)
	e := newAuthEcho(fx)

	req := httptest.NewRequest(http.MethodGet, "/auth/status", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":false`)
	assert.Contains(t, rec.Body.String(), `"user":null`)
}
