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

// VendorHandler holds dependencies for vendor-facing handlers.
type VendorHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler, injected by Fx.
func NewVendorHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *VendorHandler {
	return &VendorHandler{uc: uc, logger: logger}
}

// updateVendorProfileRequest carries the mutable vendor fields. PAN and
// Aadhaar are absent on purpose; identity documents do not change here.
type updateVendorProfileRequest struct {
	VendorName   *string  `json:"vendor_name" validate:"omitempty,min=1,max=100"`
	BusinessName *string  `json:"business_name" validate:"omitempty,min=1,max=150"`
	Phone        *string  `json:"phone" validate:"omitempty,inphone"`
	GST          *string  `json:"gst" validate:"omitempty,gstin"`
	Categories   []string `json:"categories" validate:"omitempty,min=1,max=5,dive,required"`
	Address      *string  `json:"address"`
}

// GetProfile returns the caller's vendor profile.
func (h *VendorHandler) GetProfile(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	profile, err := h.uc.GetVendorProfile(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// UpdateProfile applies partial changes to the caller's vendor profile.
func (h *VendorHandler) UpdateProfile(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	var req updateVendorProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Profile input failed validation")
	}

	profile, err := h.uc.UpdateVendorProfile(c.Request().Context(), identity.UserID, &usecase.UpdateVendorProfileInput{
		VendorName:   req.VendorName,
		BusinessName: req.BusinessName,
		Phone:        req.Phone,
		GST:          req.GST,
		Categories:   req.Categories,
		Address:      req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated successfully")
}
