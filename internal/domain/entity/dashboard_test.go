package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tabKeys(tabs []DashboardTab) []string {
	keys := make([]string, len(tabs))
	for i, tab := range tabs {
		keys[i] = tab.Key
	}

	return keys
}

func TestDashboardTabs_PerRole(t *testing.T) {
	assert.Equal(t, []string{"orders", "profile"}, tabKeys(DashboardTabs(RoleCustomer)))
	assert.Equal(t, []string{"overview", "orders", "branding", "partnerships", "profile"}, tabKeys(DashboardTabs(RoleStoreOwner)))
	assert.Equal(t, []string{"kpis", "alerts", "activity", "stores"}, tabKeys(DashboardTabs(RoleAdmin)))
	assert.Equal(t, tabKeys(DashboardTabs(RoleCustomer)), tabKeys(DashboardTabs(Role("bogus"))))
}

func TestDashboardTabs_ReturnsCopy(t *testing.T) {
	tabs := DashboardTabs(RoleCustomer)
	tabs[0].Label = "changed"

	assert.Equal(t, "My Orders", DashboardTabs(RoleCustomer)[0].Label)
}

func TestTabByKey(t *testing.T) {
	tab, ok := TabByKey(RoleStoreOwner, "branding")
	require.True(t, ok)
	assert.Equal(t, "/dashboard/store/branding", tab.Path)

	tab, ok = TabByKey(RoleCustomer, "branding")
	assert.False(t, ok)
	assert.Equal(t, "orders", tab.Key)

	tab, ok = TabByKey(RoleAdmin, "")
	assert.False(t, ok)
	assert.Equal(t, "kpis", tab.Key)
}

func TestMenuItems_FilteredByPermission(t *testing.T) {
	keys := func(items []MenuItem) []string {
		out := make([]string, len(items))
		for i, item := range items {
			out[i] = item.Key
		}

		return out
	}

	assert.Equal(t, []string{"storefront", "orders"}, keys(MenuItems(RoleCustomer)))
	assert.Equal(t, []string{"storefront", "orders", "store", "partnerships"}, keys(MenuItems(RoleStoreOwner)))
	assert.Equal(t, []string{"storefront", "orders", "store", "partnerships", "admin"}, keys(MenuItems(RoleAdmin)))
}

func TestHomeRoute(t *testing.T) {
	assert.Equal(t, "/storefront", HomeRoute(RoleCustomer))
	assert.Equal(t, "/dashboard/store", HomeRoute(RoleStoreOwner))
	assert.Equal(t, "/admin", HomeRoute(RoleAdmin))
}

func TestRole_Can(t *testing.T) {
	assert.False(t, RoleCustomer.Can(PermissionManageStore))
	assert.True(t, RoleStoreOwner.Can(PermissionStoreBranding))
	assert.False(t, RoleStoreOwner.Can(PermissionAdminConsole))
	assert.True(t, RoleAdmin.Can(PermissionManagePartnerships))
	assert.True(t, RoleAdmin.Can(PermissionAdminActivity))
}

func TestPermissionsFor_ReturnsCopy(t *testing.T) {
	perms := PermissionsFor(RoleCustomer)
	perms[0] = PermissionAdminConsole

	assert.False(t, RoleCustomer.Can(PermissionAdminConsole))
}
