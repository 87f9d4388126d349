// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record in the credential store. Its ID is the
// same value as the identity provider's user ID; that shared value is the
// join key between the two stores.
type User struct {
	ID              uuid.UUID        `json:"id"`    // Shared with the identity provider's user record.
	Email           string           `json:"email"` // Login identifier, lower-cased, unique across users.
	PasswordHash    string           `json:"-"`     // bcrypt hash kept locally so sign-in does not depend solely on the provider.
	Role            Role             `json:"role"`  // customer, vendor or admin. Immutable after creation.
	CustomerProfile *CustomerProfile `json:"customer_profile,omitempty"` // Non-nil iff Role == RoleCustomer.
	VendorProfile   *VendorProfile   `json:"vendor_profile,omitempty"`   // Non-nil iff Role == RoleVendor.
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// CustomerProfile holds the attributes specific to the customer role.
// It is created together with its User during sign-up, never independently.
type CustomerProfile struct {
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Gender    string    `json:"gender,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VendorProfile holds the attributes specific to the vendor role.
// Same lifecycle rule as CustomerProfile.
type VendorProfile struct {
	UserID       uuid.UUID `json:"user_id"`
	VendorName   string    `json:"vendor_name"`
	BusinessName string    `json:"business_name"`
	Phone        string    `json:"phone"`
	PAN          string    `json:"pan"`
	Aadhaar      string    `json:"aadhaar"`
	GST          string    `json:"gst,omitempty"`
	Categories   []string  `json:"categories"` // Deduplicated set of 1..5 service categories.
	Address      string    `json:"address,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasProfile reports whether a role-profile row is attached to the user.
// Exactly one of the two is set once sign-up completes.
func (u *User) HasProfile() bool {
	return u.CustomerProfile != nil || u.VendorProfile != nil
}
