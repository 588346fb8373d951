package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	recentActivityWindow    = 24 * time.Hour
	defaultActivityPageSize = 20
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager repository.TransactionManager
	gateway   service.MarketplaceGateway
	now       func() time.Time
	logger    *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Gateway   service.MarketplaceGateway
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager: params.TxManager,
		gateway:   params.Gateway,
		now:       time.Now,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Overview gathers backend KPIs and alerts together with the local activity count.
func (srv *adminService) Overview(ctx context.Context, token string) (*usecase.OverviewOutput, error) {
	out := &usecase.OverviewOutput{}
	since := srv.now().Add(-recentActivityWindow)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		kpis, err := srv.gateway.AdminKPIs(groupCtx, token)
		if err != nil {
			return errors.Wrap(err, "failed to load KPIs")
		}
		out.KPIs = kpis

		return nil
	})
	group.Go(func() error {
		alerts, err := srv.gateway.AdminAlerts(groupCtx, token)
		if err != nil {
			return errors.Wrap(err, "failed to load alerts")
		}
		out.Alerts = alerts

		return nil
	})
	group.Go(func() error {
		return srv.txManager.Execute(groupCtx, func(repoFactory repository.RepositoryFactory) error {
			count, err := repoFactory.ActivityRepo().CountSince(groupCtx, since)
			if err != nil {
				return errors.Wrap(err, "failed to count recent activity")
			}
			out.RecentActivity = count

			return nil
		})
	})

	if err := group.Wait(); err != nil {
		srv.log(ctx).Error("Failed to build admin overview", slog.Any("error", err))

		return nil, err
	}

	if out.KPIs == nil {
		out.KPIs = []entity.KPI{}
	}
	if out.Alerts == nil {
		out.Alerts = []entity.Alert{}
	}

	return out, nil
}

// ListActivity returns one page of the audit trail.
func (srv *adminService) ListActivity(ctx context.Context, filter entity.ActivityFilter) (*usecase.ActivityPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = defaultActivityPageSize
	}
	if filter.PageSize > usecase.MaxActivityPageSize {
		filter.PageSize = usecase.MaxActivityPageSize
	}

	page := &usecase.ActivityPage{Page: filter.Page, PageSize: filter.PageSize}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		items, total, err := repoFactory.ActivityRepo().List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list activity")
		}
		page.Items = items
		page.Total = total

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list activity", slog.Any("error", err))

		return nil, err
	}

	if page.Items == nil {
		page.Items = []*entity.ActivityLog{}
	}

	return page, nil
}
