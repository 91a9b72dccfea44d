// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of account a user holds on the platform.
type Role string

const (
	// RoleRestaurant indicates a food donor.
	RoleRestaurant Role = "restaurant"
	// RoleNGO indicates an organisation that claims and redistributes donations.
	RoleNGO Role = "ngo"
	// RoleAdmin indicates a platform operator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleRestaurant, RoleNGO, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsRegistrable reports whether accounts of this role may sign up themselves.
func (r Role) IsRegistrable() bool {
	return r == RoleRestaurant || r == RoleNGO
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
