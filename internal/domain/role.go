package domain

import "slices"

// Role represents a user role within a tenant
type Role string

const (
	// RoleAdmin manages the tenant: pricing, users, billing and maintenance
	RoleAdmin Role = "admin"

	// RoleStaff handles bookings, uploads and vehicle analyses
	RoleStaff Role = "staff"

	// RoleViewer has read-only access to the tenant dashboard
	RoleViewer Role = "viewer"
)

// ValidRoles contains all valid roles in the system
var ValidRoles = []Role{RoleAdmin, RoleStaff, RoleViewer}

// DefaultOwnerRoles are granted to the user who provisions a tenant on first login
var DefaultOwnerRoles = []string{string(RoleAdmin), string(RoleStaff), string(RoleViewer)}

// IsValidRole checks if a given role is valid
func IsValidRole(role string) bool {
	return slices.Contains(ValidRoles, Role(role))
}

// HasRole checks if a slice of roles contains a specific role
func HasRole(roles []string, role Role) bool {
	return slices.Contains(roles, string(role))
}

// HasAnyRole checks if a slice of roles contains any of the specified roles
func HasAnyRole(roles []string, requiredRoles ...Role) bool {
	for _, required := range requiredRoles {
		if HasRole(roles, required) {
			return true
		}
	}
	return false
}
