package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	mockService "bazaar/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthMiddleware(t *testing.T, hash string) (*AuthMiddleware, *mockService.MockTokenService, *mockService.MockSecretHasher) {
	t.Helper()

	tokens := mockService.NewMockTokenService(t)
	hasher := mockService.NewMockSecretHasher(t)
	m := NewAuthMiddleware(AuthMiddlewareParams{
		TokenService: tokens,
		Hasher:       hasher,
		Config:       &config.Config{Admin: &config.AdminConfig{BreakGlassKeyHash: hash}},
		Logger:       discardLogger(),
	})

	return m, tokens, hasher
}

func newContext(token string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_ResolvesStoreOwner(t *testing.T) {
	m, tokens, _ := newAuthMiddleware(t, "")
	tokens.EXPECT().ValidateAccessToken("tok").
		Return(&service.AccessClaims{UserID: "u-1", UserType: "Seller", StoreID: "s-1"}, nil)

	c, _ := newContext("tok")
	var got bool
	err := m.Authenticate(func(c echo.Context) error {
		actor, ok := GetActor(c)
		got = ok
		assert.Equal(t, "u-1", actor.UserID)
		assert.Equal(t, entity.ResolveRole("Seller", true), actor.Role)
		assert.Equal(t, "s-1", actor.StoreID)
		assert.Equal(t, "tok", GetToken(c))

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, got)
}

func TestAuthMiddleware_Authenticate_MissingToken(t *testing.T) {
	m, _, _ := newAuthMiddleware(t, "")

	c, _ := newContext("")
	err := m.Authenticate(okHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthMiddleware_OptionalAuthenticate_Anonymous(t *testing.T) {
	m, _, _ := newAuthMiddleware(t, "")

	c, _ := newContext("")
	err := m.OptionalAuthenticate(func(c echo.Context) error {
		actor, ok := GetActor(c)
		assert.True(t, ok)
		assert.Equal(t, entity.RoleCustomer, actor.Role)
		assert.Empty(t, actor.Token)

		return nil
	})(c)

	require.NoError(t, err)
}

func TestAuthMiddleware_OptionalAuthenticate_RejectsBadToken(t *testing.T) {
	m, tokens, _ := newAuthMiddleware(t, "")
	tokens.EXPECT().ValidateAccessToken("expired").Return(nil, domainerrors.ErrUnauthorized)

	c, _ := newContext("expired")
	err := m.OptionalAuthenticate(okHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthMiddleware_RequireRole_AdminPassesEveryRole(t *testing.T) {
	m, tokens, _ := newAuthMiddleware(t, "")
	tokens.EXPECT().ValidateAccessToken("admin").Return(&service.AccessClaims{UserID: "u-9", UserType: "admin"}, nil)

	c, rec := newContext("admin")
	err := m.Authenticate(m.RequireRole(entity.RoleStoreOwner)(okHandler))(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthMiddleware_RequirePermission_Forbidden(t *testing.T) {
	m, tokens, _ := newAuthMiddleware(t, "")
	tokens.EXPECT().ValidateAccessToken("cust").Return(&service.AccessClaims{UserID: "u-2", UserType: "customer"}, nil)

	c, _ := newContext("cust")
	err := m.Authenticate(m.RequirePermission(entity.PermissionManageStore)(okHandler))(c)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAuthMiddleware_AdminOrBreakGlass_NoHashConfigured(t *testing.T) {
	m, _, _ := newAuthMiddleware(t, "")

	c, _ := newContext("")
	c.Request().Header.Set(HeaderAdminKey, "anything")
	err := m.AdminOrBreakGlass(okHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthMiddleware_AdminOrBreakGlass_ValidKey(t *testing.T) {
	m, _, hasher := newAuthMiddleware(t, "$2a$10$hash")
	hasher.EXPECT().Check("k", "$2a$10$hash").Return(true)

	c, _ := newContext("")
	c.Request().Header.Set(HeaderAdminKey, "k")
	err := m.AdminOrBreakGlass(func(c echo.Context) error {
		actor, _ := GetActor(c)
		assert.Equal(t, BreakGlassActorID, actor.UserID)
		assert.Equal(t, entity.RoleAdmin, actor.Role)

		return nil
	})(c)

	require.NoError(t, err)
}
