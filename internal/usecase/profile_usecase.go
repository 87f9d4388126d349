package usecase

import (
	"context"

	"eventsathi/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateCustomerProfileInput carries the mutable customer profile fields.
// Nil pointers mean "leave unchanged".
type UpdateCustomerProfileInput struct {
	Name   *string
	Phone  *string
	Gender *string
}

// UpdateVendorProfileInput carries the mutable vendor profile fields.
// Identity documents (PAN, Aadhaar) are fixed at sign-up and not updatable here.
type UpdateVendorProfileInput struct {
	VendorName   *string
	BusinessName *string
	Phone        *string
	GST          *string
	Categories   []string
	Address      *string
}

// ProfileUsecase defines profile read/update operations for the role-gated
// routes, plus the admin user listing.
type ProfileUsecase interface {
	// GetCustomerProfile returns the customer profile for a user.
	GetCustomerProfile(ctx context.Context, userID uuid.UUID) (*entity.CustomerProfile, error)

	// UpdateCustomerProfile applies the given changes to a customer profile.
	UpdateCustomerProfile(ctx context.Context, userID uuid.UUID, input *UpdateCustomerProfileInput) (*entity.CustomerProfile, error)

	// GetVendorProfile returns the vendor profile for a user.
	GetVendorProfile(ctx context.Context, userID uuid.UUID) (*entity.VendorProfile, error)

	// UpdateVendorProfile applies the given changes to a vendor profile.
	UpdateVendorProfile(ctx context.Context, userID uuid.UUID, input *UpdateVendorProfileInput) (*entity.VendorProfile, error)

	// ListUsers returns all users for the admin console.
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
