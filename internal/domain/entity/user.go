// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User mirrors the backend's account record. The BFF never owns it; it is
// fetched per session and cached for the token's lifetime.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	UserType string `json:"user_type"` // Raw, unnormalized type as the backend reports it.
	HasStore bool   `json:"has_store"`
	StoreID  string `json:"store_id,omitempty"`
}

// Role resolves the user's UI role from the declared type and store ownership.
func (u *User) Role() Role {
	if u == nil {
		return RoleCustomer
	}

	return ResolveRole(u.UserType, u.HasStore)
}

// OwnsStore reports whether the given store belongs to this user.
func (u *User) OwnsStore(storeID string) bool {
	return u != nil && u.StoreID != "" && u.StoreID == storeID
}

// AuthSession is the token pair returned by the backend on login or registration.
type AuthSession struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int    `json:"expires_in,omitempty"`
	User         *User  `json:"user"`
}
