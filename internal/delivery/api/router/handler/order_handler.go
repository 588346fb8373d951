package handler

import (
	"fmt"
	"net/http"

	"bazaar/internal/delivery/api/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrdersUC usecase.OrdersUsecase
}

// OrderHandler serves the customer's orders
type OrderHandler struct {
	ordersUC usecase.OrdersUsecase
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{ordersUC: params.OrdersUC}
}

// ListOrdersRequest represents an order listing query
type ListOrdersRequest struct {
	Status   string `query:"status" validate:"omitempty,oneof=pending confirmed shipped delivered cancelled"`
	Page     int    `query:"page" validate:"gte=0"`
	PageSize int    `query:"page_size" validate:"gte=0,lte=100"`
}

func (r ListOrdersRequest) filter() entity.OrderFilter {
	return entity.OrderFilter{
		Status:   entity.OrderStatus(r.Status),
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}

// ListOrders lists the caller's orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var req ListOrdersRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	page, err := h.ordersUC.ListMyOrders(c.Request().Context(), actor.Token, req.filter())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, page.Items, response.PageInfo{Page: page.Page, PageSize: page.PageSize, Total: int64(page.Total)})
}

// GetOrder returns one order
func (h *OrderHandler) GetOrder(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	order, err := h.ordersUC.GetOrder(c.Request().Context(), actor.Token, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}

// GetReceipt streams the order receipt as PDF
func (h *OrderHandler) GetReceipt(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	orderID := c.Param("id")
	pdf, err := h.ordersUC.Receipt(c.Request().Context(), actor.Token, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", "receipt-"+orderID+".pdf"))

	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
