package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/api/response"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	DashboardUC usecase.StoreDashboardUsecase
	Logger      *slog.Logger
}

// StoreHandler serves the store-owner dashboard
type StoreHandler struct {
	dashboardUC usecase.StoreDashboardUsecase
	logger      *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		dashboardUC: params.DashboardUC,
		logger:      params.Logger,
	}
}

// UpdateOrderStatusRequest represents the body of a status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed shipped delivered cancelled"`
}

// RequestPartnershipRequest represents a new partnership proposal
type RequestPartnershipRequest struct {
	ProcessorStoreID string `json:"processor_store_id" validate:"required"`
	Note             string `json:"note" validate:"max=500"`
}

// RespondPartnershipRequest represents an answer to a partnership proposal
type RespondPartnershipRequest struct {
	Decision string `json:"decision" validate:"required,oneof=accept reject terminate"`
}

// UploadBranding handles a multipart branding image upload
func (h *StoreHandler) UploadBranding(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("file is required")
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Debug("Branding upload received",
		slog.String("filename", fileHeader.Filename),
		slog.Int64("size", fileHeader.Size),
	)

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open upload")
	}
	defer file.Close()

	output, err := h.dashboardUC.UploadBranding(c.Request().Context(), usecase.UploadBrandingInput{
		Actor:    actor,
		Kind:     entity.ImageKind(c.FormValue("kind")),
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Body:     file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// ListBranding lists the branding uploads of the caller's store
func (h *StoreHandler) ListBranding(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	images, err := h.dashboardUC.ListBranding(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, images)
}

// ListOrders lists the orders of the caller's store
func (h *StoreHandler) ListOrders(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var req ListOrdersRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	page, err := h.dashboardUC.ListStoreOrders(c.Request().Context(), actor, req.filter())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, page.Items, response.PageInfo{Page: page.Page, PageSize: page.PageSize, Total: int64(page.Total)})
}

// UpdateOrderStatus moves an order to a new status
func (h *StoreHandler) UpdateOrderStatus(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var req UpdateOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.dashboardUC.UpdateOrderStatus(c.Request().Context(), usecase.UpdateOrderStatusInput{
		Actor:   actor,
		OrderID: c.Param("id"),
		Status:  entity.OrderStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ListPartnerships lists partnerships of the caller's store
func (h *StoreHandler) ListPartnerships(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	partnerships, err := h.dashboardUC.ListPartnerships(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, partnerships)
}

// RequestPartnership proposes a new partnership
func (h *StoreHandler) RequestPartnership(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var req RequestPartnershipRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	partnership, err := h.dashboardUC.RequestPartnership(c.Request().Context(), usecase.RequestPartnershipInput{
		Actor:            actor,
		ProcessorStoreID: req.ProcessorStoreID,
		Note:             req.Note,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, partnership)
}

// RespondPartnership answers a partnership proposal
func (h *StoreHandler) RespondPartnership(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var req RespondPartnershipRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	partnership, err := h.dashboardUC.RespondPartnership(c.Request().Context(), usecase.RespondPartnershipInput{
		Actor:         actor,
		PartnershipID: c.Param("id"),
		Decision:      entity.PartnershipDecision(req.Decision),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, partnership)
}
