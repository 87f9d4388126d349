// Package middleware contains the HTTP middleware for the delivery layer.
package middleware

import (
	"strings"
	"time"

	deliverycontext "eventsathi/internal/delivery/context"
	"eventsathi/internal/delivery/http/response"
	"eventsathi/internal/domain/entity"
	"eventsathi/internal/domain/repository"
	"eventsathi/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware authenticates requests with access tokens. A token is only
// accepted while its session row still exists, so sign-out immediately
// revokes outstanding access tokens rather than waiting for their expiry.
type AuthMiddleware struct {
	tokenSvc    service.TokenService
	sessionRepo repository.SessionRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, sessionRepo repository.SessionRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, sessionRepo: sessionRepo}
}

// Authenticate validates the bearer token and loads its session.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.Type != service.TokenTypeAccess {
			return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
		}

		session, err := m.sessionRepo.FindByID(c.Request().Context(), claims.SessionID)
		if err != nil {
			// Covers both revoked sessions and lookup failures; neither may
			// leak which one happened.
			return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
		}
		if session.Expired(time.Now()) {
			return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
		}

		deliverycontext.SetIdentity(c, &deliverycontext.Identity{
			UserID: session.UserID,
			Email:  session.Email,
			Role:   session.Role,
		}, session.ID)

		return next(c)
	}
}

// OptionalAuthenticate resolves the identity when a valid bearer token is
// present but lets the request through anonymously when it is not. Used by
// the status probe, which reports rather than requires authentication.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader || tokenString == "" {
			return next(c)
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.Type != service.TokenTypeAccess {
			return next(c)
		}

		session, err := m.sessionRepo.FindByID(c.Request().Context(), claims.SessionID)
		if err != nil || session.Expired(time.Now()) {
			return next(c)
		}

		deliverycontext.SetIdentity(c, &deliverycontext.Identity{
			UserID: session.UserID,
			Email:  session.Email,
			Role:   session.Role,
		}, session.ID)

		return next(c)
	}
}

// RequireRole gates a route to exactly one role. Roles are flat, so an admin
// does not pass a vendor gate.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := deliverycontext.GetIdentity(c)
			if !ok {
				return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
			}

			if identity.Role != requiredRole {
				return response.Forbidden(c, "ACCESS_DENIED", roleDeniedMessage(requiredRole))
			}

			return next(c)
		}
	}
}

func roleDeniedMessage(role entity.Role) string {
	switch role {
	case entity.RoleCustomer:
		return "Customer access required"
	case entity.RoleVendor:
		return "Vendor access required"
	case entity.RoleAdmin:
		return "Admin access required"
	default:
		return "Access denied"
	}
}
