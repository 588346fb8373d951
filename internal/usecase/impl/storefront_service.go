package impl

import (
	"context"
	"log/slog"
	"net/url"
	"slices"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// storefrontService implements the StorefrontUsecase interface.
type storefrontService struct {
	gateway       service.MarketplaceGateway
	qrCodeService service.QRCodeService
	publicBaseURL string
	logger        *slog.Logger
}

// StorefrontServiceParams holds dependencies for StorefrontService, injected by Fx.
type StorefrontServiceParams struct {
	fx.In

	Gateway       service.MarketplaceGateway
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewStorefrontService is the constructor for storefrontService.
func NewStorefrontService(params StorefrontServiceParams) usecase.StorefrontUsecase {
	var baseURL string
	if params.Config != nil && params.Config.Storefront != nil {
		baseURL = params.Config.Storefront.PublicBaseURL
	}

	return &storefrontService{
		gateway:       params.Gateway,
		qrCodeService: params.QRCodeService,
		publicBaseURL: baseURL,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *storefrontService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search proxies the backend search and, given a position, annotates and orders stores by distance.
func (srv *storefrontService) Search(ctx context.Context, actor usecase.Actor, input usecase.SearchInput) (*entity.StorePage, error) {
	origin, hasOrigin, err := searchOrigin(input)
	if err != nil {
		return nil, err
	}

	page := input.Page
	if page < 1 {
		page = 1
	}

	result, err := srv.gateway.SearchStores(ctx, actor.Token, input.Query, page)
	if err != nil {
		srv.log(ctx).Error("Store search failed", slog.String("query", input.Query), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search stores")
	}

	if hasOrigin {
		sortByDistance(result.Items, origin)
	}

	return result, nil
}

func searchOrigin(input usecase.SearchInput) (orb.Point, bool, error) {
	if input.Lat == nil && input.Lng == nil {
		return orb.Point{}, false, nil
	}
	if input.Lat == nil || input.Lng == nil {
		return orb.Point{}, false, domainerrors.ErrValidationFailed.WithDetails("lat and lng must be provided together")
	}

	lat, lng := *input.Lat, *input.Lng
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return orb.Point{}, false, domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
	}

	return orb.Point{lng, lat}, true, nil
}

// sortByDistance fills DistanceKm and stably orders located stores first, nearest first.
// Stores without coordinates keep their backend rank after them.
func sortByDistance(stores []*entity.Store, origin orb.Point) {
	for _, store := range stores {
		if store == nil || !store.HasLocation() {
			continue
		}
		km := geo.Distance(origin, orb.Point{*store.Longitude, *store.Latitude}) / 1000
		store.DistanceKm = &km
	}

	slices.SortStableFunc(stores, func(a, b *entity.Store) int {
		da, db := distanceOf(a), distanceOf(b)
		switch {
		case da == nil && db == nil:
			return 0
		case da == nil:
			return 1
		case db == nil:
			return -1
		case *da < *db:
			return -1
		case *da > *db:
			return 1
		default:
			return 0
		}
	})
}

func distanceOf(store *entity.Store) *float64 {
	if store == nil {
		return nil
	}

	return store.DistanceKm
}

// GetStorefront returns a store. Unpublished stores are only visible to their owner and admins.
func (srv *storefrontService) GetStorefront(ctx context.Context, actor usecase.Actor, storeID string) (*entity.Store, error) {
	store, err := srv.gateway.GetStore(ctx, actor.Token, storeID)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.ErrStoreNotFound.WrapMessage("backend has no such store")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get store")
	}

	if !store.Published && !canPreview(actor, store) {
		srv.log(ctx).Debug("Hiding unpublished store", slog.String("store_id", storeID))

		return nil, domainerrors.ErrStoreNotFound.WrapMessage("store is not published")
	}

	return store, nil
}

func canPreview(actor usecase.Actor, store *entity.Store) bool {
	if actor.Role == entity.RoleAdmin {
		return true
	}

	return (actor.StoreID != "" && actor.StoreID == store.ID) ||
		(actor.UserID != "" && actor.UserID == store.OwnerID)
}

// StorefrontQR encodes the public storefront link of a visible store.
func (srv *storefrontService) StorefrontQR(ctx context.Context, actor usecase.Actor, storeID string) (*usecase.StorefrontQROutput, error) {
	store, err := srv.GetStorefront(ctx, actor, storeID)
	if err != nil {
		return nil, err
	}

	link, err := srv.storefrontURL(store)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateStorefrontQR(link)
	if err != nil {
		srv.log(ctx).Error("Failed to generate storefront QR", slog.String("store_id", storeID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate storefront QR code")
	}

	return &usecase.StorefrontQROutput{PNG: png, Public: store.Published}, nil
}

func (srv *storefrontService) storefrontURL(store *entity.Store) (string, error) {
	if srv.publicBaseURL == "" {
		return "", domainerrors.ErrInternalError.WrapMessage("storefront public base URL is not configured")
	}

	ref := store.Slug
	if ref == "" {
		ref = store.ID
	}

	link, err := url.JoinPath(srv.publicBaseURL, "stores", ref)
	if err != nil {
		return "", errors.Wrap(err, "failed to build storefront URL")
	}

	return link, nil
}
