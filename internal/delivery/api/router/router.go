// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/router/handler"
	"bazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	MeHandler         *handler.MeHandler
	StorefrontHandler *handler.StorefrontHandler
	OrderHandler      *handler.OrderHandler
	StoreHandler      *handler.StoreHandler
	AdminHandler      *handler.AdminHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Metrics           *middleware.MetricsMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	meHandler         *handler.MeHandler
	storefrontHandler *handler.StorefrontHandler
	orderHandler      *handler.OrderHandler
	storeHandler      *handler.StoreHandler
	adminHandler      *handler.AdminHandler
	authMiddleware    *middleware.AuthMiddleware
	metrics           *middleware.MetricsMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		meHandler:         params.MeHandler,
		storefrontHandler: params.StorefrontHandler,
		orderHandler:      params.OrderHandler,
		storeHandler:      params.StoreHandler,
		adminHandler:      params.AdminHandler,
		authMiddleware:    params.AuthMiddleware,
		metrics:           params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", r.metrics.Handler())

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.OptionalAuthenticate)
	}

	apiV1 := e.Group("/api/v1")

	// Storefront browsing works anonymously; a token only widens visibility.
	storefrontGroup := apiV1.Group("/storefront", r.authMiddleware.OptionalAuthenticate)
	{
		storefrontGroup.GET("/search", r.storefrontHandler.Search)
		storefrontGroup.GET("/stores/:id", r.storefrontHandler.GetStore)
		storefrontGroup.GET("/stores/:id/qr", r.storefrontHandler.GetStoreQR)
	}

	// Break-glass operators have no bearer token, so this route sits outside the authenticated groups.
	apiV1.GET("/admin/activity", r.adminHandler.ListActivity, r.authMiddleware.AdminOrBreakGlass)

	authed := apiV1.Group("", r.authMiddleware.Authenticate)

	meGroup := authed.Group("/me")
	{
		meGroup.GET("", r.meHandler.GetViewer)
		meGroup.GET("/dashboard", r.meHandler.GetDashboard)
	}

	ordersGroup := authed.Group("/orders", r.authMiddleware.RequirePermission(entity.PermissionOwnOrders))
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.GET("/:id/receipt", r.orderHandler.GetReceipt)
	}

	storeGroup := authed.Group("/store", r.authMiddleware.RequirePermission(entity.PermissionManageStore))
	{
		branding := r.authMiddleware.RequirePermission(entity.PermissionStoreBranding)
		storeGroup.POST("/branding", r.storeHandler.UploadBranding, branding)
		storeGroup.GET("/branding", r.storeHandler.ListBranding, branding)
		storeGroup.GET("/orders", r.storeHandler.ListOrders)
		storeGroup.PATCH("/orders/:id/status", r.storeHandler.UpdateOrderStatus)
		storeGroup.GET("/partnerships", r.storeHandler.ListPartnerships)
		storeGroup.POST("/partnerships", r.storeHandler.RequestPartnership)
		storeGroup.PATCH("/partnerships/:id", r.storeHandler.RespondPartnership)
	}

	adminGroup := authed.Group("/admin", r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/overview", r.adminHandler.GetOverview)
	}
}
