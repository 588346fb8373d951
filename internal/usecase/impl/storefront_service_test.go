package impl

import (
	"context"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	mockService "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorefrontService(t *testing.T, cfg *config.Config) (usecase.StorefrontUsecase, *mockService.MockMarketplaceGateway, *mockService.MockQRCodeService) {
	t.Helper()

	gateway := mockService.NewMockMarketplaceGateway(t)
	qr := mockService.NewMockQRCodeService(t)
	srv := NewStorefrontService(StorefrontServiceParams{
		Gateway:       gateway,
		QRCodeService: qr,
		Config:        cfg,
		Logger:        newDiscardLogger(),
	})

	return srv, gateway, qr
}

func ptr(v float64) *float64 { return &v }

func TestStorefrontService_Search_PassesThroughWithoutPosition(t *testing.T) {
	srv, gateway, _ := newTestStorefrontService(t, newTestConfig())
	ctx := context.Background()
	page := &entity.StorePage{Items: []*entity.Store{{ID: "a"}, {ID: "b"}}, Total: 2, Page: 1}

	gateway.EXPECT().SearchStores(ctx, "", "bread", 1).Return(page, nil)

	out, err := srv.Search(ctx, usecase.Actor{}, usecase.SearchInput{Query: "bread"})

	require.NoError(t, err)
	assert.Equal(t, "a", out.Items[0].ID)
	assert.Nil(t, out.Items[0].DistanceKm)
}

func TestStorefrontService_Search_SortsByDistance(t *testing.T) {
	srv, gateway, _ := newTestStorefrontService(t, newTestConfig())
	ctx := context.Background()

	// Origin in Taipei; "far" is in Kaohsiung, "near" a few blocks away.
	page := &entity.StorePage{Items: []*entity.Store{
		{ID: "far", Latitude: ptr(22.6273), Longitude: ptr(120.3014)},
		{ID: "nowhere"},
		{ID: "near", Latitude: ptr(25.0340), Longitude: ptr(121.5645)},
		{ID: "nowhere-2"},
	}}
	gateway.EXPECT().SearchStores(ctx, "tok", "", 2).Return(page, nil)

	out, err := srv.Search(ctx, usecase.Actor{Token: "tok"}, usecase.SearchInput{
		Page: 2, Lat: ptr(25.0330), Lng: ptr(121.5654),
	})

	require.NoError(t, err)
	ids := []string{out.Items[0].ID, out.Items[1].ID, out.Items[2].ID, out.Items[3].ID}
	assert.Equal(t, []string{"near", "far", "nowhere", "nowhere-2"}, ids)
	require.NotNil(t, out.Items[0].DistanceKm)
	assert.Less(t, *out.Items[0].DistanceKm, 1.0)
	assert.Greater(t, *out.Items[1].DistanceKm, 250.0)
	assert.Nil(t, out.Items[2].DistanceKm)
}

func TestStorefrontService_Search_RejectsHalfPosition(t *testing.T) {
	srv, _, _ := newTestStorefrontService(t, newTestConfig())

	_, err := srv.Search(context.Background(), usecase.Actor{}, usecase.SearchInput{Lat: ptr(10)})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestStorefrontService_Search_RejectsOutOfRange(t *testing.T) {
	srv, _, _ := newTestStorefrontService(t, newTestConfig())

	_, err := srv.Search(context.Background(), usecase.Actor{}, usecase.SearchInput{Lat: ptr(91), Lng: ptr(0)})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestStorefrontService_GetStorefront_Published(t *testing.T) {
	srv, gateway, _ := newTestStorefrontService(t, newTestConfig())
	ctx := context.Background()

	gateway.EXPECT().GetStore(ctx, "", "s1").Return(&entity.Store{ID: "s1", Published: true}, nil)

	store, err := srv.GetStorefront(ctx, usecase.Actor{}, "s1")

	require.NoError(t, err)
	assert.Equal(t, "s1", store.ID)
}

func TestStorefrontService_GetStorefront_UnpublishedHidden(t *testing.T) {
	srv, gateway, _ := newTestStorefrontService(t, newTestConfig())
	ctx := context.Background()
	actor := usecase.Actor{UserID: "u9", Role: entity.RoleCustomer, Token: "tok"}

	gateway.EXPECT().GetStore(ctx, "tok", "s1").Return(&entity.Store{ID: "s1", OwnerID: "u1"}, nil)

	_, err := srv.GetStorefront(ctx, actor, "s1")

	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestStorefrontService_GetStorefront_UnpublishedVisibleToOwnerAndAdmin(t *testing.T) {
	srv, gateway, _ := newTestStorefrontService(t, newTestConfig())
	ctx := context.Background()
	store := &entity.Store{ID: "store-1", OwnerID: "user-1"}

	gateway.EXPECT().GetStore(ctx, "token-1", "store-1").Return(store, nil)
	gateway.EXPECT().GetStore(ctx, "admin-token", "store-1").Return(store, nil)

	_, err := srv.GetStorefront(ctx, ownerActor(), "store-1")
	require.NoError(t, err)

	_, err = srv.GetStorefront(ctx, usecase.Actor{UserID: "root", Role: entity.RoleAdmin, Token: "admin-token"}, "store-1")
	require.NoError(t, err)
}

func TestStorefrontService_GetStorefront_BackendNotFound(t *testing.T) {
	srv, gateway, _ := newTestStorefrontService(t, newTestConfig())
	ctx := context.Background()

	gateway.EXPECT().GetStore(ctx, "", "missing").Return(nil, domainerrors.ErrNotFound)

	_, err := srv.GetStorefront(ctx, usecase.Actor{}, "missing")

	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestStorefrontService_StorefrontQR_Success(t *testing.T) {
	srv, gateway, qr := newTestStorefrontService(t, newTestConfig())
	ctx := context.Background()

	gateway.EXPECT().GetStore(ctx, "", "s1").Return(&entity.Store{ID: "s1", Slug: "corner-bakery", Published: true}, nil)
	qr.EXPECT().GenerateStorefrontQR("https://bazaar.test/stores/corner-bakery").Return([]byte("png"), nil)

	out, err := srv.StorefrontQR(ctx, usecase.Actor{}, "s1")

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), out.PNG)
	assert.True(t, out.Public)
}

func TestStorefrontService_StorefrontQR_OwnerPreviewIsNotPublic(t *testing.T) {
	srv, gateway, qr := newTestStorefrontService(t, newTestConfig())
	ctx := context.Background()
	owner := usecase.Actor{UserID: "u1", Role: entity.RoleStoreOwner, StoreID: "s1", Token: "tok"}

	gateway.EXPECT().GetStore(ctx, "tok", "s1").Return(&entity.Store{ID: "s1", Published: false}, nil)
	qr.EXPECT().GenerateStorefrontQR("https://bazaar.test/stores/s1").Return([]byte("png"), nil)

	out, err := srv.StorefrontQR(ctx, owner, "s1")

	require.NoError(t, err)
	assert.False(t, out.Public)
}

func TestStorefrontService_StorefrontQR_MissingBaseURL(t *testing.T) {
	cfg := newTestConfig()
	cfg.Storefront.PublicBaseURL = ""
	srv, gateway, _ := newTestStorefrontService(t, cfg)
	ctx := context.Background()

	gateway.EXPECT().GetStore(ctx, "", "s1").Return(&entity.Store{ID: "s1", Published: true}, nil)

	_, err := srv.StorefrontQR(ctx, usecase.Actor{}, "s1")

	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}
