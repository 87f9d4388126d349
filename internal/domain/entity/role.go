// Package entity contains the core business objects of the project.
package entity

// Role represents the type of account a user holds in the marketplace.
// Roles are mutually exclusive and immutable after sign-up: a customer never
// becomes a vendor on the same account, and admin does not inherit either.
type Role string

const (
	// RoleCustomer indicates an event customer account.
	RoleCustomer Role = "customer"
	// RoleVendor indicates a service vendor account.
	RoleVendor Role = "vendor"
	// RoleAdmin indicates an operator account. Admins are seeded, never self-registered.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleAdmin:
		return true
	default:
		return false
	}
}

// SelfRegisterable reports whether the role may be chosen at sign-up.
func (r Role) SelfRegisterable() bool {
	return r == RoleCustomer || r == RoleVendor
}
