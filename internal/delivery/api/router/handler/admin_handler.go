package handler

import (
	"net/http"

	"bazaar/internal/delivery/api/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
}

// AdminHandler serves the admin console
type AdminHandler struct {
	adminUC usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{adminUC: params.AdminUC}
}

// ListActivityRequest represents an activity log query
type ListActivityRequest struct {
	ActorID  string `query:"actor_id" validate:"max=64"`
	Action   string `query:"action" validate:"max=64"`
	Page     int    `query:"page" validate:"gte=0"`
	PageSize int    `query:"page_size" validate:"gte=0,lte=100"`
}

// GetOverview returns KPIs, alerts and the recent activity count
func (h *AdminHandler) GetOverview(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	overview, err := h.adminUC.Overview(c.Request().Context(), actor.Token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, overview)
}

// ListActivity returns one page of the audit trail
func (h *AdminHandler) ListActivity(c echo.Context) error {
	var req ListActivityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	page, err := h.adminUC.ListActivity(c.Request().Context(), entity.ActivityFilter{
		ActorID:  req.ActorID,
		Action:   req.Action,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, page.Items, response.PageInfo{Page: page.Page, PageSize: page.PageSize, Total: page.Total})
}
