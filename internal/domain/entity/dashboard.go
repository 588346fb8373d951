package entity

// DashboardTab is one tab of a role-specific dashboard.
type DashboardTab struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// MenuItem is one entry of the header menu.
type MenuItem struct {
	Key        string     `json:"key"`
	Label      string     `json:"label"`
	Path       string     `json:"path"`
	Permission Permission `json:"-"`
}

var customerTabs = []DashboardTab{
	{Key: "orders", Label: "My Orders", Path: "/dashboard/orders"},
	{Key: "profile", Label: "Profile", Path: "/dashboard/profile"},
}

var storeOwnerTabs = []DashboardTab{
	{Key: "overview", Label: "Overview", Path: "/dashboard/store"},
	{Key: "orders", Label: "Orders", Path: "/dashboard/store/orders"},
	{Key: "branding", Label: "Branding", Path: "/dashboard/store/branding"},
	{Key: "partnerships", Label: "Partnerships", Path: "/dashboard/store/partnerships"},
	{Key: "profile", Label: "Profile", Path: "/dashboard/profile"},
}

var adminTabs = []DashboardTab{
	{Key: "kpis", Label: "KPIs", Path: "/admin"},
	{Key: "alerts", Label: "Alerts", Path: "/admin/alerts"},
	{Key: "activity", Label: "Activity Logs", Path: "/admin/activity"},
	{Key: "stores", Label: "Stores", Path: "/admin/stores"},
}

// menu is ordered as rendered in the header.
var menu = []MenuItem{
	{Key: "storefront", Label: "Browse Stores", Path: "/storefront", Permission: PermissionBrowseStorefront},
	{Key: "orders", Label: "My Orders", Path: "/dashboard/orders", Permission: PermissionOwnOrders},
	{Key: "store", Label: "My Store", Path: "/dashboard/store", Permission: PermissionManageStore},
	{Key: "partnerships", Label: "Partnerships", Path: "/dashboard/store/partnerships", Permission: PermissionManagePartnerships},
	{Key: "admin", Label: "Admin Console", Path: "/admin", Permission: PermissionAdminConsole},
}

// DashboardTabs returns the ordered tab set for a role.
func DashboardTabs(role Role) []DashboardTab {
	var tabs []DashboardTab
	switch role {
	case RoleAdmin:
		tabs = adminTabs
	case RoleStoreOwner:
		tabs = storeOwnerTabs
	default:
		tabs = customerTabs
	}

	out := make([]DashboardTab, len(tabs))
	copy(out, tabs)

	return out
}

// TabByKey finds the requested tab for a role.
// An unknown or empty key yields the first tab and false.
func TabByKey(role Role, key string) (DashboardTab, bool) {
	tabs := DashboardTabs(role)
	for _, tab := range tabs {
		if tab.Key == key {
			return tab, true
		}
	}

	return tabs[0], false
}

// MenuItems returns the header menu entries offered to a role.
func MenuItems(role Role) []MenuItem {
	perms := PermissionsFor(role)
	items := make([]MenuItem, 0, len(menu))
	for _, item := range menu {
		if perms.Contains(item.Permission) {
			items = append(items, item)
		}
	}

	return items
}

// HomeRoute returns where a freshly logged-in user is redirected.
func HomeRoute(role Role) string {
	switch role {
	case RoleAdmin:
		return "/admin"
	case RoleStoreOwner:
		return "/dashboard/store"
	default:
		return "/storefront"
	}
}
