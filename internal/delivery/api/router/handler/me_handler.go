package handler

import (
	"net/http"

	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MeHandlerParams holds dependencies for MeHandler, injected by Fx.
type MeHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
}

// MeHandler serves the signed-in user's navigation data
type MeHandler struct {
	authUC usecase.AuthUsecase
}

// NewMeHandler is the constructor for MeHandler
func NewMeHandler(params MeHandlerParams) *MeHandler {
	return &MeHandler{authUC: params.AuthUC}
}

// DashboardResponse is the dashboard configuration for the selected tab.
type DashboardResponse struct {
	Role     entity.Role           `json:"role"`
	Tabs     []entity.DashboardTab `json:"tabs"`
	Selected entity.DashboardTab   `json:"selected"`

	// Fallback is true when the requested tab was unknown and the first tab was chosen instead.
	Fallback bool `json:"fallback"`
}

// GetViewer returns the resolved viewer.
func (h *MeHandler) GetViewer(c echo.Context) error {
	viewer, err := h.currentViewer(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, viewer)
}

// GetDashboard resolves the tab set of the viewer and the ?tab= selection.
func (h *MeHandler) GetDashboard(c echo.Context) error {
	viewer, err := h.currentViewer(c)
	if err != nil {
		return err
	}

	requested := c.QueryParam("tab")
	selected, ok := entity.TabByKey(viewer.Role, requested)

	return response.Success(c, http.StatusOK, DashboardResponse{
		Role:     viewer.Role,
		Tabs:     viewer.Tabs,
		Selected: selected,
		Fallback: requested != "" && !ok,
	})
}

// currentViewer loads the profile and aligns its navigation with the role the route gates resolved
// from the token, so every offered tab is reachable.
func (h *MeHandler) currentViewer(c echo.Context) (*usecase.Viewer, error) {
	viewer, err := h.authUC.CurrentViewer(c.Request().Context(), middleware.GetToken(c))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		return viewer, nil
	}

	return viewer.WithRole(actor.Role), nil
}
