package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	mockService "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrdersService(t *testing.T) (usecase.OrdersUsecase, *mockService.MockMarketplaceGateway, *mockService.MockReceiptRenderer) {
	t.Helper()

	gateway := mockService.NewMockMarketplaceGateway(t)
	renderer := mockService.NewMockReceiptRenderer(t)
	srv := NewOrdersService(OrdersServiceParams{
		Gateway:  gateway,
		Renderer: renderer,
		Logger:   newDiscardLogger(),
	})

	return srv, gateway, renderer
}

func TestOrdersService_ListMyOrders_AppliesDefaults(t *testing.T) {
	srv, gateway, _ := newTestOrdersService(t)
	ctx := context.Background()
	page := &entity.OrderPage{Items: []*entity.Order{{ID: "o1"}}, Total: 1, Page: 1}

	gateway.EXPECT().
		ListOrders(ctx, "tok", entity.OrderFilter{Page: 1, PageSize: 20}).
		Return(page, nil)

	out, err := srv.ListMyOrders(ctx, "tok", entity.OrderFilter{StoreID: "someone-else"})

	require.NoError(t, err)
	assert.Equal(t, page, out)
	assert.Equal(t, 20, out.PageSize)
}

func TestOrdersService_ListMyOrders_CapsPageSize(t *testing.T) {
	srv, gateway, _ := newTestOrdersService(t)
	ctx := context.Background()

	gateway.EXPECT().
		ListOrders(ctx, "tok", entity.OrderFilter{Status: entity.OrderStatusShipped, Page: 3, PageSize: 100}).
		Return(&entity.OrderPage{}, nil)

	_, err := srv.ListMyOrders(ctx, "tok", entity.OrderFilter{Status: entity.OrderStatusShipped, Page: 3, PageSize: 500})

	require.NoError(t, err)
}

func TestOrdersService_ListMyOrders_InvalidStatus(t *testing.T) {
	srv, _, _ := newTestOrdersService(t)

	_, err := srv.ListMyOrders(context.Background(), "tok", entity.OrderFilter{Status: "lost"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrdersService_GetOrder_NotFound(t *testing.T) {
	srv, gateway, _ := newTestOrdersService(t)
	ctx := context.Background()

	gateway.EXPECT().GetOrder(ctx, "tok", "o1").Return(nil, domainerrors.ErrNotFound)

	_, err := srv.GetOrder(ctx, "tok", "o1")

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrdersService_Receipt_Success(t *testing.T) {
	srv, gateway, renderer := newTestOrdersService(t)
	ctx := context.Background()
	order := &entity.Order{ID: "o1", Number: "A-1"}

	gateway.EXPECT().GetOrder(ctx, "tok", "o1").Return(order, nil)
	renderer.EXPECT().RenderReceipt(order).Return([]byte("%PDF-1.3"), nil)

	pdf, err := srv.Receipt(ctx, "tok", "o1")

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), pdf)
}

func TestOrdersService_Receipt_RenderFailure(t *testing.T) {
	srv, gateway, renderer := newTestOrdersService(t)
	ctx := context.Background()
	order := &entity.Order{ID: "o1"}

	gateway.EXPECT().GetOrder(ctx, "tok", "o1").Return(order, nil)
	renderer.EXPECT().RenderReceipt(order).Return(nil, errors.New("font missing"))

	pdf, err := srv.Receipt(ctx, "tok", "o1")

	assert.Nil(t, pdf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "font missing")
}

func TestOrdersService_Receipt_BackendDown(t *testing.T) {
	srv, gateway, _ := newTestOrdersService(t)
	ctx := context.Background()

	gateway.EXPECT().GetOrder(ctx, "tok", "o1").Return(nil, domainerrors.ErrBackendUnavailable)

	_, err := srv.Receipt(ctx, "tok", "o1")

	assert.ErrorIs(t, err, domainerrors.ErrBackendUnavailable)
}
