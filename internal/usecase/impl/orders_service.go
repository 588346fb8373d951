package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultOrderPageSize = 20
	maxOrderPageSize     = 100
)

// ordersService implements the OrdersUsecase interface.
type ordersService struct {
	gateway  service.MarketplaceGateway
	renderer service.ReceiptRenderer
	logger   *slog.Logger
}

// OrdersServiceParams holds dependencies for OrdersService, injected by Fx.
type OrdersServiceParams struct {
	fx.In

	Gateway  service.MarketplaceGateway
	Renderer service.ReceiptRenderer
	Logger   *slog.Logger
}

// NewOrdersService is the constructor for ordersService.
func NewOrdersService(params OrdersServiceParams) usecase.OrdersUsecase {
	return &ordersService{
		gateway:  params.Gateway,
		renderer: params.Renderer,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *ordersService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListMyOrders lists the caller's own orders. Any store filter is dropped.
func (srv *ordersService) ListMyOrders(ctx context.Context, token string, filter entity.OrderFilter) (*entity.OrderPage, error) {
	filter.StoreID = ""
	filter, err := normalizeOrderFilter(filter)
	if err != nil {
		return nil, err
	}

	page, err := srv.gateway.ListOrders(ctx, token, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return withPageSize(page, filter), nil
}

// GetOrder returns a single order.
func (srv *ordersService) GetOrder(ctx context.Context, token, orderID string) (*entity.Order, error) {
	order, err := srv.gateway.GetOrder(ctx, token, orderID)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.ErrOrderNotFound.WrapMessage("backend has no such order")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// Receipt renders the order as a printable PDF.
func (srv *ordersService) Receipt(ctx context.Context, token, orderID string) ([]byte, error) {
	order, err := srv.GetOrder(ctx, token, orderID)
	if err != nil {
		return nil, err
	}

	pdf, err := srv.renderer.RenderReceipt(order)
	if err != nil {
		srv.log(ctx).Error("Failed to render receipt", slog.String("order_id", orderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render receipt")
	}

	return pdf, nil
}

// withPageSize reports the page size that was requested when the backend leaves it out.
func withPageSize(page *entity.OrderPage, filter entity.OrderFilter) *entity.OrderPage {
	if page != nil && page.PageSize == 0 {
		page.PageSize = filter.PageSize
	}

	return page
}

// normalizeOrderFilter applies paging defaults and rejects unknown statuses.
func normalizeOrderFilter(filter entity.OrderFilter) (entity.OrderFilter, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return filter, domainerrors.ErrValidationFailed.WithDetails("unknown order status " + string(filter.Status))
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = defaultOrderPageSize
	}
	if filter.PageSize > maxOrderPageSize {
		filter.PageSize = maxOrderPageSize
	}

	return filter, nil
}
