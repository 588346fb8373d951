package impl

import (
	"context"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockService "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) (usecase.AuthUsecase, *mockService.MockMarketplaceGateway, *mockRepo.MockSessionCache) {
	t.Helper()

	gateway := mockService.NewMockMarketplaceGateway(t)
	sessions := mockRepo.NewMockSessionCache(t)
	srv := NewAuthService(AuthServiceParams{
		Gateway:  gateway,
		Sessions: sessions,
		Config:   newTestConfig(),
		Logger:   newDiscardLogger(),
	})

	return srv, gateway, sessions
}

func TestAuthService_Login_Success(t *testing.T) {
	srv, gateway, sessions := newTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: "u1", Email: "a@b.test", UserType: "Seller"}

	gateway.EXPECT().
		Login(ctx, service.LoginRequest{Email: "a@b.test", Password: "secret"}).
		Return(&entity.AuthSession{AccessToken: "tok", RefreshToken: "ref", ExpiresIn: 3600, User: user}, nil)
	sessions.EXPECT().Set(ctx, "tok", user, 15*time.Minute).Return(nil)

	out, err := srv.Login(ctx, usecase.LoginInput{Email: " a@b.test ", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "tok", out.AccessToken)
	assert.Equal(t, "ref", out.RefreshToken)
	assert.Equal(t, entity.RoleStoreOwner, out.Viewer.Role)
	assert.True(t, out.Viewer.Check.IsStoreOwner)
	assert.Equal(t, "/dashboard/store", out.Viewer.HomeRoute)
}

func TestAuthService_Login_TTLBoundedByToken(t *testing.T) {
	srv, gateway, sessions := newTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: "u1"}

	gateway.EXPECT().
		Login(ctx, service.LoginRequest{Email: "a@b.test", Password: "pw"}).
		Return(&entity.AuthSession{AccessToken: "tok", ExpiresIn: 60, User: user}, nil)
	sessions.EXPECT().Set(ctx, "tok", user, time.Minute).Return(nil)

	_, err := srv.Login(ctx, usecase.LoginInput{Email: "a@b.test", Password: "pw"})

	require.NoError(t, err)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	srv, gateway, _ := newTestAuthService(t)
	ctx := context.Background()

	gateway.EXPECT().
		Login(ctx, service.LoginRequest{Email: "a@b.test", Password: "bad"}).
		Return(nil, domainerrors.ErrInvalidCredentials)

	out, err := srv.Login(ctx, usecase.LoginInput{Email: "a@b.test", Password: "bad"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_FetchesProfileWhenMissing(t *testing.T) {
	srv, gateway, sessions := newTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: "u1", UserType: "administrator"}

	gateway.EXPECT().
		Login(ctx, service.LoginRequest{Email: "a@b.test", Password: "pw"}).
		Return(&entity.AuthSession{AccessToken: "tok"}, nil)
	gateway.EXPECT().CurrentUser(ctx, "tok").Return(user, nil)
	sessions.EXPECT().Set(ctx, "tok", user, 15*time.Minute).Return(nil)

	out, err := srv.Login(ctx, usecase.LoginInput{Email: "a@b.test", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Viewer.Role)
}

func TestAuthService_Login_CacheFailureIsNotFatal(t *testing.T) {
	srv, gateway, sessions := newTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: "u1"}

	gateway.EXPECT().
		Login(ctx, service.LoginRequest{Email: "a@b.test", Password: "pw"}).
		Return(&entity.AuthSession{AccessToken: "tok", User: user}, nil)
	sessions.EXPECT().Set(ctx, "tok", user, 15*time.Minute).Return(errors.New("redis down"))

	out, err := srv.Login(ctx, usecase.LoginInput{Email: "a@b.test", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, out.Viewer.Role)
}

func TestAuthService_Register_DefaultsToCustomer(t *testing.T) {
	srv, gateway, sessions := newTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: "u1", UserType: "customer"}

	gateway.EXPECT().
		Register(ctx, service.RegisterRequest{Name: "Ann", Email: "a@b.test", Password: "password1", AccountType: "customer"}).
		Return(&entity.AuthSession{AccessToken: "tok", User: user}, nil)
	sessions.EXPECT().Set(ctx, "tok", user, 15*time.Minute).Return(nil)

	out, err := srv.Register(ctx, usecase.RegisterInput{Name: "Ann", Email: "a@b.test", Password: "password1"})

	require.NoError(t, err)
	assert.Equal(t, "/storefront", out.Viewer.HomeRoute)
}

func TestAuthService_Register_StoreOwner(t *testing.T) {
	srv, gateway, sessions := newTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: "u1", UserType: "store_owner"}

	gateway.EXPECT().
		Register(ctx, service.RegisterRequest{Name: "Ann", Email: "a@b.test", Password: "password1", AccountType: "store_owner"}).
		Return(&entity.AuthSession{AccessToken: "tok", User: user}, nil)
	sessions.EXPECT().Set(ctx, "tok", user, 15*time.Minute).Return(nil)

	out, err := srv.Register(ctx, usecase.RegisterInput{Name: "Ann", Email: "a@b.test", Password: "password1", AccountType: "Store_Owner"})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleStoreOwner, out.Viewer.Role)
}

func TestAuthService_Register_RejectsAdmin(t *testing.T) {
	srv, _, _ := newTestAuthService(t)

	out, err := srv.Register(context.Background(), usecase.RegisterInput{
		Name: "Eve", Email: "e@b.test", Password: "password1", AccountType: "admin",
	})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Logout_EvictsSession(t *testing.T) {
	srv, _, sessions := newTestAuthService(t)
	ctx := context.Background()

	sessions.EXPECT().Delete(ctx, "tok").Return(nil)

	require.NoError(t, srv.Logout(ctx, "tok"))
}

func TestAuthService_Logout_EmptyToken(t *testing.T) {
	srv, _, _ := newTestAuthService(t)

	require.NoError(t, srv.Logout(context.Background(), ""))
}

func TestAuthService_CurrentViewer_CacheHit(t *testing.T) {
	srv, _, sessions := newTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: "u1", UserType: "customer", HasStore: true, StoreID: "s1"}

	sessions.EXPECT().Get(ctx, "tok").Return(user, nil)

	viewer, err := srv.CurrentViewer(ctx, "tok")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleStoreOwner, viewer.Role)
	assert.True(t, viewer.Permissions.Contains(entity.PermissionManageStore))
	assert.Len(t, viewer.Tabs, 5)
}

func TestAuthService_CurrentViewer_CacheMissLoadsProfile(t *testing.T) {
	srv, gateway, sessions := newTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: "u1", UserType: "superuser"}

	sessions.EXPECT().Get(ctx, "tok").Return(nil, repository.ErrSessionNotFound)
	gateway.EXPECT().CurrentUser(ctx, "tok").Return(user, nil)
	sessions.EXPECT().Set(ctx, "tok", user, 15*time.Minute).Return(nil)

	viewer, err := srv.CurrentViewer(ctx, "tok")

	require.NoError(t, err)
	assert.True(t, viewer.Check.IsAdmin)
	assert.Equal(t, "/admin", viewer.HomeRoute)
}

func TestAuthService_CurrentViewer_BackendRejectsToken(t *testing.T) {
	srv, gateway, sessions := newTestAuthService(t)
	ctx := context.Background()

	sessions.EXPECT().Get(ctx, "tok").Return(nil, repository.ErrSessionNotFound)
	gateway.EXPECT().CurrentUser(ctx, "tok").Return(nil, domainerrors.ErrUnauthorized)

	viewer, err := srv.CurrentViewer(ctx, "tok")

	assert.Nil(t, viewer)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthService_CurrentViewer_EmptyToken(t *testing.T) {
	srv, _, _ := newTestAuthService(t)

	_, err := srv.CurrentViewer(context.Background(), "")

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
