// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "eventsathi/internal/delivery/context"
	"eventsathi/internal/delivery/http/response"
	"eventsathi/internal/domain/entity"
	"eventsathi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

// signUpRequest is the sign-up payload. The role decides which of the
// role-specific blocks must be filled in.
type signUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=customer vendor"`

	// Customer fields.
	Name   string `json:"name" validate:"required_if=Role customer"`
	Gender string `json:"gender" validate:"omitempty,oneof=male female other"`

	// Vendor fields.
	VendorName   string   `json:"vendor_name" validate:"required_if=Role vendor"`
	BusinessName string   `json:"business_name" validate:"required_if=Role vendor"`
	PAN          string   `json:"pan" validate:"required_if=Role vendor,omitempty,pan"`
	Aadhaar      string   `json:"aadhaar" validate:"required_if=Role vendor,omitempty,aadhaar"`
	GST          string   `json:"gst" validate:"omitempty,gstin"`
	Categories   []string `json:"categories" validate:"required_if=Role vendor,omitempty,min=1,max=5,dive,required"`
	Address      string   `json:"address"`

	// Shared. Optional, but must be a valid Indian mobile number when given.
	Phone string `json:"phone" validate:"omitempty,inphone"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// statusResponse always carries the user field; anonymous callers see an
// explicit null rather than a missing key.
type statusResponse struct {
	Authenticated bool                      `json:"authenticated"`
	User          *deliverycontext.Identity `json:"user"`
}

// SignUp handles the account provisioning request.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign up input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Sign up input failed validation")
	}

	output, err := h.uc.SignUp(c.Request().Context(), &usecase.SignUpInput{
		Email:        req.Email,
		Password:     req.Password,
		Role:         entity.Role(req.Role),
		Name:         req.Name,
		Gender:       req.Gender,
		VendorName:   req.VendorName,
		BusinessName: req.BusinessName,
		PAN:          req.PAN,
		Aadhaar:      req.Aadhaar,
		GST:          req.GST,
		Categories:   req.Categories,
		Address:      req.Address,
		Phone:        req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "User registered successfully")
}

// SignIn handles the sign-in request.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign in input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Sign in input failed validation")
	}

	output, err := h.uc.SignIn(c.Request().Context(), &usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Signed in successfully")
}

// SignOut revokes the caller's session. Idempotent: a token that no longer
// resolves to a live session means the caller is already signed out, so a
// second call with the same token succeeds too.
func (h *AuthHandler) SignOut(c echo.Context) error {
	sessionID, ok := deliverycontext.GetSessionID(c)
	if !ok {
		return response.Success(c, http.StatusOK, nil, "Signed out successfully")
	}

	if err := h.uc.SignOut(c.Request().Context(), sessionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Signed out successfully")
}

// Refresh exchanges a refresh token for a new access token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Refresh input failed validation")
	}

	output, err := h.uc.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// Me returns the authenticated caller's identity.
func (h *AuthHandler) Me(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	return response.Success(c, http.StatusOK, identity, "")
}

// Status reports whether the caller is authenticated without requiring it.
func (h *AuthHandler) Status(c echo.Context) error {
	identity, _ := deliverycontext.GetIdentity(c)

	return response.Success(c, http.StatusOK, statusResponse{
		Authenticated: identity != nil,
		User:          identity,
	}, "")
}
