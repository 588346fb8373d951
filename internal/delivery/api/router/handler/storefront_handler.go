package handler

import (
	"net/http"
	"strconv"

	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StorefrontHandlerParams holds dependencies for StorefrontHandler, injected by Fx.
type StorefrontHandlerParams struct {
	fx.In

	StorefrontUC usecase.StorefrontUsecase
}

// StorefrontHandler serves customer browsing
type StorefrontHandler struct {
	storefrontUC usecase.StorefrontUsecase
}

// NewStorefrontHandler is the constructor for StorefrontHandler
func NewStorefrontHandler(params StorefrontHandlerParams) *StorefrontHandler {
	return &StorefrontHandler{storefrontUC: params.StorefrontUC}
}

// SearchRequest represents the storefront search query
type SearchRequest struct {
	Query string `query:"q" validate:"max=200"`
	Page  int    `query:"page" validate:"gte=0"`
	Lat   string `query:"lat" validate:"omitempty,latitude"`
	Lng   string `query:"lng" validate:"omitempty,longitude"`
}

func parseCoordinate(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}

	return &v
}

// Search handles store search
func (h *StorefrontHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	actor, _ := middleware.GetActor(c)
	page, err := h.storefrontUC.Search(c.Request().Context(), actor, usecase.SearchInput{
		Query: req.Query,
		Page:  req.Page,
		Lat:   parseCoordinate(req.Lat),
		Lng:   parseCoordinate(req.Lng),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, page.Items, response.PageInfo{Page: page.Page, Total: int64(page.Total)})
}

// GetStore returns a single storefront
func (h *StorefrontHandler) GetStore(c echo.Context) error {
	actor, _ := middleware.GetActor(c)

	store, err := h.storefrontUC.GetStorefront(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store)
}

// GetStoreQR returns the storefront QR code as PNG
func (h *StorefrontHandler) GetStoreQR(c echo.Context) error {
	actor, _ := middleware.GetActor(c)

	qr, err := h.storefrontUC.StorefrontQR(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	// Previews of unpublished stores must not land in shared caches.
	cacheControl := "private, no-store"
	if qr.Public {
		cacheControl = "public, max-age=3600"
	}
	c.Response().Header().Set(echo.HeaderCacheControl, cacheControl)

	return c.Blob(http.StatusOK, "image/png", qr.PNG)
}
