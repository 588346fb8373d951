package entity

import "slices"

// Permission names a feature surface that can be offered to a role.
type Permission string

const (
	// PermissionBrowseStorefront offers store search and storefront pages.
	PermissionBrowseStorefront Permission = "storefront:browse"
	// PermissionOwnOrders offers the caller's own order history and receipts.
	PermissionOwnOrders Permission = "orders:own"
	// PermissionManageStore offers the store dashboard as a whole.
	PermissionManageStore Permission = "store:manage"
	// PermissionStoreBranding offers logo and banner uploads.
	PermissionStoreBranding Permission = "store:branding"
	// PermissionStoreOrders offers the orders placed with the caller's store.
	PermissionStoreOrders Permission = "store:orders"
	// PermissionManagePartnerships offers producer and processor partnerships.
	PermissionManagePartnerships Permission = "partnerships:manage"
	// PermissionAdminConsole offers the KPI and alert overview.
	PermissionAdminConsole Permission = "admin:console"
	// PermissionAdminActivity offers the activity log.
	PermissionAdminActivity Permission = "admin:activity"
)

// Permissions is a slice of Permission for convenience.
type Permissions []Permission

// Contains checks if the permission set contains a specific permission.
func (ps Permissions) Contains(p Permission) bool {
	return slices.Contains(ps, p)
}

var customerPermissions = Permissions{
	PermissionBrowseStorefront,
	PermissionOwnOrders,
}

var storeOwnerPermissions = append(slices.Clone(customerPermissions),
	PermissionManageStore,
	PermissionStoreBranding,
	PermissionStoreOrders,
	PermissionManagePartnerships,
)

var adminPermissions = append(slices.Clone(storeOwnerPermissions),
	PermissionAdminConsole,
	PermissionAdminActivity,
)

// PermissionsFor returns the feature set offered to a role. The result is a copy.
func PermissionsFor(role Role) Permissions {
	switch role {
	case RoleAdmin:
		return slices.Clone(adminPermissions)
	case RoleStoreOwner:
		return slices.Clone(storeOwnerPermissions)
	default:
		return slices.Clone(customerPermissions)
	}
}

// Can reports whether the role is offered the given permission.
func (r Role) Can(p Permission) bool {
	return PermissionsFor(r).Contains(p)
}
