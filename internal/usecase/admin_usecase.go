package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// MaxActivityPageSize caps a single activity listing.
const MaxActivityPageSize = 100

// OverviewOutput is the admin console landing data.
type OverviewOutput struct {
	KPIs           []entity.KPI   `json:"kpis"`
	Alerts         []entity.Alert `json:"alerts"`
	RecentActivity int64          `json:"recent_activity"` // Records in the last 24 hours.
}

// ActivityPage is one page of the audit trail.
type ActivityPage struct {
	Items    []*entity.ActivityLog `json:"items"`
	Total    int64                 `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

// AdminUsecase defines admin console operations.
type AdminUsecase interface {
	Overview(ctx context.Context, token string) (*OverviewOutput, error)
	ListActivity(ctx context.Context, filter entity.ActivityFilter) (*ActivityPage, error)
}
