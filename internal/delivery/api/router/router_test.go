package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/router/handler"
	"bazaar/internal/delivery/api/validator"
	deliverymiddleware "bazaar/internal/delivery/middleware"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockService "bazaar/internal/mocks/service"
	"bazaar/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	ownerToken    = "owner-token"
	customerToken = "customer-token"
	adminToken    = "admin-token"
)

type testDeps struct {
	gateway   *mockService.MockMarketplaceGateway
	sessions  *mockRepo.MockSessionCache
	tokens    *mockService.MockTokenService
	hasher    *mockService.MockSecretHasher
	txManager *mockRepo.MockTransactionManager
	qrCodes   *mockService.MockQRCodeService
	renderer  *mockService.MockReceiptRenderer
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
		Page      *struct {
			Page     int   `json:"page"`
			PageSize int   `json:"page_size"`
			Total    int64 `json:"total"`
		} `json:"page"`
	} `json:"meta"`
}

func newTestServer(t *testing.T) (*echo.Echo, *testDeps) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Session:    &config.SessionConfig{TTL: 15 * time.Minute},
		Storage:    &config.StorageConfig{MaxUploadSize: 1024},
		Storefront: &config.StorefrontConfig{PublicBaseURL: "https://bazaar.test"},
		Admin:      &config.AdminConfig{BreakGlassKeyHash: "$2a$hash"},
	}

	deps := &testDeps{
		gateway:   mockService.NewMockMarketplaceGateway(t),
		sessions:  mockRepo.NewMockSessionCache(t),
		tokens:    mockService.NewMockTokenService(t),
		hasher:    mockService.NewMockSecretHasher(t),
		txManager: mockRepo.NewMockTransactionManager(t),
		qrCodes:   mockService.NewMockQRCodeService(t),
		renderer:  mockService.NewMockReceiptRenderer(t),
	}

	deps.tokens.EXPECT().ValidateAccessToken(mock.AnythingOfType("string")).RunAndReturn(
		func(token string) (*service.AccessClaims, error) {
			switch token {
			case ownerToken:
				return &service.AccessClaims{UserID: "user-1", UserType: "store_owner", HasStore: true, StoreID: "store-1"}, nil
			case customerToken:
				return &service.AccessClaims{UserID: "user-2", UserType: "customer"}, nil
			case adminToken:
				return &service.AccessClaims{UserID: "user-3", UserType: "admin"}, nil
			default:
				return nil, domainerrors.ErrUnauthorized
			}
		}).Maybe()

	metrics, err := middleware.NewMetricsMiddleware(prometheus.NewRegistry())
	require.NoError(t, err)

	params := RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			AuthUC: impl.NewAuthService(impl.AuthServiceParams{Gateway: deps.gateway, Sessions: deps.sessions, Config: cfg, Logger: logger}),
			Logger: logger,
		}),
		MeHandler: handler.NewMeHandler(handler.MeHandlerParams{
			AuthUC: impl.NewAuthService(impl.AuthServiceParams{Gateway: deps.gateway, Sessions: deps.sessions, Config: cfg, Logger: logger}),
		}),
		StorefrontHandler: handler.NewStorefrontHandler(handler.StorefrontHandlerParams{
			StorefrontUC: impl.NewStorefrontService(impl.StorefrontServiceParams{Gateway: deps.gateway, QRCodeService: deps.qrCodes, Config: cfg, Logger: logger}),
		}),
		OrderHandler: handler.NewOrderHandler(handler.OrderHandlerParams{
			OrdersUC: impl.NewOrdersService(impl.OrdersServiceParams{Gateway: deps.gateway, Renderer: deps.renderer, Logger: logger}),
		}),
		StoreHandler: handler.NewStoreHandler(handler.StoreHandlerParams{
			DashboardUC: impl.NewStoreDashboardService(impl.StoreDashboardServiceParams{
				TxManager: deps.txManager,
				Gateway:   deps.gateway,
				Storage:   mockService.NewMockObjectStorage(t),
				Publisher: mockService.NewMockEventPublisher(t),
				Config:    cfg,
				Logger:    logger,
			}),
			Logger: logger,
		}),
		AdminHandler: handler.NewAdminHandler(handler.AdminHandlerParams{
			AdminUC: impl.NewAdminService(impl.AdminServiceParams{TxManager: deps.txManager, Gateway: deps.gateway, Logger: logger}),
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
			TokenService: deps.tokens,
			Hasher:       deps.hasher,
			Config:       cfg,
			Logger:       logger,
		}),
		Metrics: metrics,
	}

	e := echo.New()
	e.Use(deliverymiddleware.NewRequestIDMiddleware(logger).Process)
	e.Use(metrics.Handle)
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()
	NewRouter(params).RegisterRoutes(e)

	return e, deps
}

func doRequest(e *echo.Echo, method, target, token string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestRouter_HealthCheck(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestRouter_Metrics_ExposesRequestCounter(t *testing.T) {
	e, _ := newTestServer(t)

	doRequest(e, http.MethodGet, "/health", "", nil)
	rec := doRequest(e, http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bazaar_api_http_requests_total")
}

func TestRouter_Me_RequiresToken(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/v1/me", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

func TestRouter_Me_RejectsInvalidToken(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/v1/me", "forged", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_Me_ReturnsCachedViewer(t *testing.T) {
	e, deps := newTestServer(t)

	deps.sessions.EXPECT().Get(mock.Anything, ownerToken).
		Return(&entity.User{ID: "user-1", UserType: "store_owner", HasStore: true, StoreID: "store-1"}, nil)

	rec := doRequest(e, http.MethodGet, "/api/v1/me", ownerToken, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var viewer struct {
		Role      string `json:"role"`
		HomeRoute string `json:"home_route"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &viewer))
	assert.Equal(t, "store_owner", viewer.Role)
	assert.NotEmpty(t, viewer.HomeRoute)
}

type dashboardBody struct {
	Role string `json:"role"`
	Tabs []struct {
		Key string `json:"key"`
	} `json:"tabs"`
	Selected struct {
		Key string `json:"key"`
	} `json:"selected"`
	Fallback bool `json:"fallback"`
}

func getDashboard(t *testing.T, e *echo.Echo, target, token string) dashboardBody {
	t.Helper()

	rec := doRequest(e, http.MethodGet, target, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body dashboardBody
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))

	return body
}

func tabKeys(body dashboardBody) []string {
	keys := make([]string, 0, len(body.Tabs))
	for _, tab := range body.Tabs {
		keys = append(keys, tab.Key)
	}

	return keys
}

func expectOwnerProfile(deps *testDeps) {
	deps.sessions.EXPECT().Get(mock.Anything, ownerToken).
		Return(&entity.User{ID: "user-1", UserType: "store_owner", HasStore: true, StoreID: "store-1"}, nil)
}

func TestRouter_Dashboard_SelectsKnownTab(t *testing.T) {
	e, deps := newTestServer(t)
	expectOwnerProfile(deps)

	body := getDashboard(t, e, "/api/v1/me/dashboard?tab=branding", ownerToken)

	assert.Equal(t, "store_owner", body.Role)
	assert.Equal(t, "branding", body.Selected.Key)
	assert.False(t, body.Fallback)
}

func TestRouter_Dashboard_UnknownTabFallsBack(t *testing.T) {
	e, deps := newTestServer(t)
	expectOwnerProfile(deps)

	body := getDashboard(t, e, "/api/v1/me/dashboard?tab=bogus", ownerToken)

	assert.Equal(t, "overview", body.Selected.Key)
	assert.True(t, body.Fallback)
}

func TestRouter_Dashboard_OmittedTabSelectsFirst(t *testing.T) {
	e, deps := newTestServer(t)
	expectOwnerProfile(deps)

	body := getDashboard(t, e, "/api/v1/me/dashboard", ownerToken)

	assert.Equal(t, "overview", body.Selected.Key)
	assert.False(t, body.Fallback)
}

func TestRouter_Dashboard_FollowsTokenRoleOverProfile(t *testing.T) {
	e, deps := newTestServer(t)

	// The profile already reports a store, the token was issued before it existed.
	deps.sessions.EXPECT().Get(mock.Anything, customerToken).
		Return(&entity.User{ID: "user-2", UserType: "Seller", HasStore: true, StoreID: "store-7"}, nil).Twice()

	body := getDashboard(t, e, "/api/v1/me/dashboard?tab=branding", customerToken)

	assert.Equal(t, "customer", body.Role)
	assert.Equal(t, []string{"orders", "profile"}, tabKeys(body))
	assert.Equal(t, "orders", body.Selected.Key)
	assert.True(t, body.Fallback)

	rec := doRequest(e, http.MethodGet, "/api/v1/me", customerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var viewer struct {
		Role string `json:"role"`
		User struct {
			StoreID string `json:"store_id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &viewer))
	assert.Equal(t, "customer", viewer.Role)
	assert.Equal(t, "store-7", viewer.User.StoreID)

	assert.Equal(t, http.StatusForbidden, doRequest(e, http.MethodGet, "/api/v1/store/orders", customerToken, nil).Code)
}

func TestRouter_Register_ValidationFailure(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/auth/register", "",
		strings.NewReader(`{"name":"Ann","email":"not-an-email","password":"short"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Login_StartsSession(t *testing.T) {
	e, deps := newTestServer(t)

	user := &entity.User{ID: "user-2", UserType: "customer"}
	deps.gateway.EXPECT().Login(mock.Anything, service.LoginRequest{Email: "ann@example.com", Password: "secret"}).
		Return(&entity.AuthSession{AccessToken: customerToken, ExpiresIn: 600, User: user}, nil)
	deps.sessions.EXPECT().Set(mock.Anything, customerToken, user, 10*time.Minute).Return(nil)

	rec := doRequest(e, http.MethodPost, "/auth/login", "",
		strings.NewReader(`{"email":"ann@example.com","password":"secret"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), customerToken)
}

func TestRouter_Logout_EvictsSession(t *testing.T) {
	e, deps := newTestServer(t)

	deps.sessions.EXPECT().Delete(mock.Anything, customerToken).Return(nil)

	rec := doRequest(e, http.MethodPost, "/auth/logout", customerToken, nil)

	assert.Less(t, rec.Code, http.StatusMultipleChoices)
}

func TestRouter_StorefrontSearch_Anonymous(t *testing.T) {
	e, deps := newTestServer(t)

	deps.gateway.EXPECT().SearchStores(mock.Anything, "", "tea", 1).
		Return(&entity.StorePage{Items: []*entity.Store{{ID: "store-9", Published: true}}, Total: 1, Page: 1}, nil)

	rec := doRequest(e, http.MethodGet, "/api/v1/storefront/search?q=tea", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Meta.Page)
	assert.Equal(t, int64(1), env.Meta.Page.Total)
}

func TestRouter_StorefrontSearch_RejectsBadLatitude(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/v1/storefront/search?q=tea&lat=123&lng=10", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_StorefrontQR_PublicStoreIsCacheable(t *testing.T) {
	e, deps := newTestServer(t)

	deps.gateway.EXPECT().GetStore(mock.Anything, "", "store-9").
		Return(&entity.Store{ID: "store-9", Slug: "tea-house", Published: true}, nil)
	deps.qrCodes.EXPECT().GenerateStorefrontQR("https://bazaar.test/stores/tea-house").Return([]byte("png"), nil)

	rec := doRequest(e, http.MethodGet, "/api/v1/storefront/stores/store-9/qr", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "public, max-age=3600", rec.Header().Get(echo.HeaderCacheControl))
}

func TestRouter_StorefrontQR_UnpublishedPreviewIsPrivate(t *testing.T) {
	e, deps := newTestServer(t)

	deps.gateway.EXPECT().GetStore(mock.Anything, ownerToken, "store-1").
		Return(&entity.Store{ID: "store-1", Published: false}, nil)
	deps.qrCodes.EXPECT().GenerateStorefrontQR("https://bazaar.test/stores/store-1").Return([]byte("png"), nil)

	rec := doRequest(e, http.MethodGet, "/api/v1/storefront/stores/store-1/qr", ownerToken, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "private, no-store", rec.Header().Get(echo.HeaderCacheControl))
}

func TestRouter_Orders_ReportsEffectivePageSize(t *testing.T) {
	e, deps := newTestServer(t)

	deps.gateway.EXPECT().ListOrders(mock.Anything, customerToken, entity.OrderFilter{Page: 1, PageSize: 20}).
		Return(&entity.OrderPage{Items: []*entity.Order{}, Total: 45, Page: 1}, nil)

	rec := doRequest(e, http.MethodGet, "/api/v1/orders", customerToken, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Meta.Page)
	assert.Equal(t, 20, env.Meta.Page.PageSize)
	assert.Equal(t, int64(45), env.Meta.Page.Total)
}

func TestRouter_StoreBranding_ListsUploads(t *testing.T) {
	e, deps := newTestServer(t)

	imageRepo := mockRepo.NewMockStoreImageRepository(t)
	imageRepo.EXPECT().ListByStore(mock.Anything, "store-1").
		Return([]*entity.StoreImage{{ID: "img-1", StoreID: "store-1", Kind: entity.ImageKindLogo}}, nil)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().StoreImageRepo().Return(imageRepo)
	deps.txManager.EXPECT().Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	rec := doRequest(e, http.MethodGet, "/api/v1/store/branding", ownerToken, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var images []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &images))
	require.Len(t, images, 1)
	assert.Equal(t, "img-1", images[0].ID)
}

func TestRouter_StoreBranding_ForbiddenForCustomer(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/v1/store/branding", customerToken, nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_UnknownAPIPath_NotFound(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/v1/nope", customerToken, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_StoreGroup_ForbiddenForCustomer(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/v1/store/orders", customerToken, nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_StoreOrders_ScopedToOwnStore(t *testing.T) {
	e, deps := newTestServer(t)

	deps.gateway.EXPECT().ListOrders(mock.Anything, ownerToken, mock.MatchedBy(func(f entity.OrderFilter) bool {
		return f.StoreID == "store-1" && f.Status == entity.OrderStatusPending
	})).Return(&entity.OrderPage{Items: []*entity.Order{}, Total: 0, Page: 1}, nil)

	rec := doRequest(e, http.MethodGet, "/api/v1/store/orders?status=pending", ownerToken, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_AdminOverview_ForbiddenForStoreOwner(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/v1/admin/overview", ownerToken, nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_AdminActivity_BreakGlassKey(t *testing.T) {
	e, deps := newTestServer(t)

	deps.hasher.EXPECT().Check("operator-key", "$2a$hash").Return(true)
	activityRepo := mockRepo.NewMockActivityRepository(t)
	activityRepo.EXPECT().List(mock.Anything, entity.ActivityFilter{Action: "order.status_changed", Page: 1, PageSize: 20}).
		Return([]*entity.ActivityLog{{ID: "a-1", Action: "order.status_changed"}}, int64(1), nil)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ActivityRepo().Return(activityRepo)
	deps.txManager.EXPECT().Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/activity?action=order.status_changed", nil)
	req.Header.Set(middleware.HeaderAdminKey, "operator-key")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Meta.Page)
	assert.Equal(t, int64(1), env.Meta.Page.Total)
}

func TestRouter_AdminActivity_WrongKey(t *testing.T) {
	e, deps := newTestServer(t)

	deps.hasher.EXPECT().Check("guess", "$2a$hash").Return(false)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/activity", nil)
	req.Header.Set(middleware.HeaderAdminKey, "guess")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_AdminActivity_WithoutKeyNeedsAdminToken(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/v1/admin/activity", customerToken, nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
