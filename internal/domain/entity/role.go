// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the kind of principal an access token was issued for.
type Role string

const (
	// RoleUser indicates an individual buyer account.
	RoleUser Role = "user"
	// RoleCompany indicates a company (institutional buyer) account.
	RoleCompany Role = "company"
	// RoleAdmin indicates a back-office administrator account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleCompany, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
