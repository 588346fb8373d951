package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"bazaar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestRoleResolve_StoreOwnerWithStore(t *testing.T) {
	out, err := run(t, "role", "resolve", "--type", "Merchant", "--has-store", "--json")
	require.NoError(t, err)

	var check entity.UserTypeCheck
	require.NoError(t, json.Unmarshal([]byte(out), &check))
	assert.Equal(t, entity.CheckUserType("Merchant", true), check)
}

func TestRoleResolve_TextOutput(t *testing.T) {
	out, err := run(t, "role", "resolve", "--type", "admin")
	require.NoError(t, err)

	assert.Contains(t, out, "role:           admin")
	assert.Contains(t, out, "is_admin:       true")
}

func TestDashboard_ListsRoleTabs(t *testing.T) {
	out, err := run(t, "dashboard", "--role", "store_owner", "--json")
	require.NoError(t, err)

	var got dashboardOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, entity.RoleStoreOwner, got.Role)
	assert.Equal(t, entity.DashboardTabs(entity.RoleStoreOwner), got.Tabs)
	assert.Equal(t, entity.HomeRoute(entity.RoleStoreOwner), got.HomeRoute)
}

func TestDashboard_UnknownRole(t *testing.T) {
	_, err := run(t, "dashboard", "--role", "superuser")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown role")
}

func TestHashKey_ProducesBcryptHash(t *testing.T) {
	out, err := run(t, "hash-key", "operator-secret")
	require.NoError(t, err)

	hash := strings.TrimSpace(out)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("operator-secret")))
}
