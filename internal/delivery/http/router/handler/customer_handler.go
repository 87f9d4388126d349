package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "eventsathi/internal/delivery/context"
	"eventsathi/internal/delivery/http/response"
	"eventsathi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomerHandler holds dependencies for customer-facing handlers.
type CustomerHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, logger: logger}
}

type updateCustomerProfileRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=100"`
	Phone  *string `json:"phone" validate:"omitempty,inphone"`
	Gender *string `json:"gender" validate:"omitempty,oneof=male female other"`
}

// GetProfile returns the caller's customer profile.
func (h *CustomerHandler) GetProfile(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	profile, err := h.uc.GetCustomerProfile(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// UpdateProfile applies partial changes to the caller's customer profile.
func (h *CustomerHandler) UpdateProfile(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	var req updateCustomerProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Profile input failed validation")
	}

	profile, err := h.uc.UpdateCustomerProfile(c.Request().Context(), identity.UserID, &usecase.UpdateCustomerProfileInput{
		Name:   req.Name,
		Phone:  req.Phone,
		Gender: req.Gender,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated successfully")
}
