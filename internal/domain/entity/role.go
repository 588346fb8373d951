// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the normalized role of a marketplace user. It only drives
// which features the UI offers; the backend re-authorizes every request.
type Role string

const (
	// RoleCustomer indicates a shopper browsing storefronts.
	RoleCustomer Role = "customer"
	// RoleStoreOwner indicates a vendor operating at least one store.
	RoleStoreOwner Role = "store_owner"
	// RoleAdmin indicates a marketplace operator.
	RoleAdmin Role = "admin"
)

var storeOwnerAliases = map[string]struct{}{
	"store_owner": {},
	"storeowner":  {},
	"store owner": {},
	"shop_owner":  {},
	"shopowner":   {},
	"seller":      {},
	"merchant":    {},
}

var adminAliases = map[string]struct{}{
	"admin":         {},
	"administrator": {},
	"superuser":     {},
	"super_user":    {},
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleStoreOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

// UserTypeCheck is the flag form of a resolved role. Exactly one flag is set.
type UserTypeCheck struct {
	Role         Role `json:"role"`
	IsCustomer   bool `json:"is_customer"`
	IsStoreOwner bool `json:"is_store_owner"`
	IsAdmin      bool `json:"is_admin"`
}

// NormalizeUserType maps a raw backend user type onto a Role.
// Matching is case-insensitive; unknown and empty values become RoleCustomer.
func NormalizeUserType(raw string) Role {
	key := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := storeOwnerAliases[key]; ok {
		return RoleStoreOwner
	}
	if _, ok := adminAliases[key]; ok {
		return RoleAdmin
	}

	return RoleCustomer
}

// ResolveRole combines the declared user type with store ownership.
// Owning a store promotes a customer to store owner; admins are never demoted.
func ResolveRole(raw string, hasStore bool) Role {
	role := NormalizeUserType(raw)
	if hasStore && role == RoleCustomer {
		return RoleStoreOwner
	}

	return role
}

// CheckUserType resolves the role and expands it into flags.
func CheckUserType(raw string, hasStore bool) UserTypeCheck {
	return NewUserTypeCheck(ResolveRole(raw, hasStore))
}

// NewUserTypeCheck expands an already resolved role into flags.
func NewUserTypeCheck(role Role) UserTypeCheck {
	return UserTypeCheck{
		Role:         role,
		IsCustomer:   role == RoleCustomer,
		IsStoreOwner: role == RoleStoreOwner,
		IsAdmin:      role == RoleAdmin,
	}
}

// CanAccessStoreFeatures reports whether the store dashboard should be offered.
func CanAccessStoreFeatures(raw string, hasStore bool) bool {
	role := ResolveRole(raw, hasStore)

	return role == RoleStoreOwner || role == RoleAdmin
}

// IsAdminUser reports whether the raw user type names an administrator.
func IsAdminUser(raw string) bool {
	return NormalizeUserType(raw) == RoleAdmin
}

// ParseRole parses an already normalized role name, e.g. from a CLI flag or query string.
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))

	return role, role.IsValid()
}
