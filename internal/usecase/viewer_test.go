package usecase

import (
	"testing"

	"bazaar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViewer(t *testing.T) {
	tests := []struct {
		name      string
		user      *entity.User
		role      entity.Role
		homeRoute string
		firstTab  string
		menuKeys  []string
	}{
		{
			name:      "customer",
			user:      &entity.User{ID: "u1", UserType: ""},
			role:      entity.RoleCustomer,
			homeRoute: "/storefront",
			firstTab:  "orders",
			menuKeys:  []string{"storefront", "orders"},
		},
		{
			name:      "customer promoted by store",
			user:      &entity.User{ID: "u2", UserType: "customer", HasStore: true, StoreID: "s1"},
			role:      entity.RoleStoreOwner,
			homeRoute: "/dashboard/store",
			firstTab:  "overview",
			menuKeys:  []string{"storefront", "orders", "store", "partnerships"},
		},
		{
			name:      "admin",
			user:      &entity.User{ID: "u3", UserType: "ADMIN"},
			role:      entity.RoleAdmin,
			homeRoute: "/admin",
			firstTab:  "kpis",
			menuKeys:  []string{"storefront", "orders", "store", "partnerships", "admin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viewer := NewViewer(tt.user)

			assert.Equal(t, tt.role, viewer.Role)
			assert.Equal(t, tt.role, viewer.Check.Role)
			assert.Equal(t, tt.homeRoute, viewer.HomeRoute)
			assert.Equal(t, tt.firstTab, viewer.Tabs[0].Key)

			keys := make([]string, 0, len(viewer.Menu))
			for _, item := range viewer.Menu {
				keys = append(keys, item.Key)
			}
			assert.Equal(t, tt.menuKeys, keys)
		})
	}
}

func TestViewer_WithRole(t *testing.T) {
	viewer := NewViewer(&entity.User{ID: "u2", UserType: "Seller", HasStore: true, StoreID: "s1"})
	require.Equal(t, entity.RoleStoreOwner, viewer.Role)

	assert.Same(t, viewer, viewer.WithRole(entity.RoleStoreOwner))

	customer := viewer.WithRole(entity.RoleCustomer)
	assert.Equal(t, entity.RoleCustomer, customer.Role)
	assert.Equal(t, entity.RoleCustomer, customer.Check.Role)
	assert.Equal(t, "/storefront", customer.HomeRoute)
	assert.Equal(t, "orders", customer.Tabs[0].Key)
	assert.False(t, customer.Permissions.Contains(entity.PermissionManageStore))
	assert.Same(t, viewer.User, customer.User)
	assert.Equal(t, entity.RoleStoreOwner, viewer.Role)
}

func TestActor_HasStore(t *testing.T) {
	assert.False(t, Actor{UserID: "u1"}.HasStore())
	assert.True(t, Actor{UserID: "u1", StoreID: "s1"}.HasStore())
}
