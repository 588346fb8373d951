// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "bazaar/internal/domain/entity"

// Actor is the caller of a usecase as resolved by the delivery layer.
// Token is forwarded verbatim to the backend, which re-authorizes every call.
type Actor struct {
	UserID    string
	Role      entity.Role
	StoreID   string
	Token     string
	IP        string
	UserAgent string
}

// HasStore reports whether the actor operates a store.
func (a Actor) HasStore() bool {
	return a.StoreID != ""
}

// Viewer is everything the UI needs to render navigation for the signed-in user.
type Viewer struct {
	User        *entity.User          `json:"user"`
	Role        entity.Role           `json:"role"`
	Check       entity.UserTypeCheck  `json:"check"`
	Permissions entity.Permissions    `json:"permissions"`
	Tabs        []entity.DashboardTab `json:"tabs"`
	Menu        []entity.MenuItem     `json:"menu"`
	HomeRoute   string                `json:"home_route"`
}

// NewViewer derives the viewer from a backend profile.
func NewViewer(user *entity.User) *Viewer {
	return newViewer(user, user.Role())
}

// WithRole rebuilds the viewer's navigation for the given role, keeping the profile.
// Routes are gated on the role carried by the access token, so the navigation follows it.
func (v *Viewer) WithRole(role entity.Role) *Viewer {
	if v.Role == role {
		return v
	}

	return newViewer(v.User, role)
}

func newViewer(user *entity.User, role entity.Role) *Viewer {
	return &Viewer{
		User:        user,
		Role:        role,
		Check:       entity.NewUserTypeCheck(role),
		Permissions: entity.PermissionsFor(role),
		Tabs:        entity.DashboardTabs(role),
		Menu:        entity.MenuItems(role),
		HomeRoute:   entity.HomeRoute(role),
	}
}
