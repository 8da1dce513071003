package repository

import (
	"context"
	"time"

	"github.com/sangkips/solarpower/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// YearlyProjectResult represents installation projects aggregated by completion year
type YearlyProjectResult struct {
	Year          int
	TotalProjects int64
	TotalProfit   decimal.Decimal
	AvgSystemSize float64
	TotalRevenue  decimal.Decimal
}

// ServiceDistributionResult represents installation projects aggregated by owning service
type ServiceDistributionResult struct {
	ServiceTitle string
	Count        int64
	TotalProfit  decimal.Decimal
}

// ClientTypeDistributionResult represents case studies counted per client type
type ClientTypeDistributionResult struct {
	ClientType enum.ClientType
	Count      int64
}

// ProjectTotalsResult represents totals over a set of installation projects
type ProjectTotalsResult struct {
	Count   int64
	Revenue decimal.Decimal
	Profit  decimal.Decimal
}

// AnalyticsRepository defines interface for analytics/aggregation queries
type AnalyticsRepository interface {
	// GetProjectsByYear returns project aggregates per completion year, oldest first
	GetProjectsByYear(ctx context.Context) ([]YearlyProjectResult, error)

	// GetProjectsByService returns project count and profit per service title, largest count first
	GetProjectsByService(ctx context.Context) ([]ServiceDistributionResult, error)

	// GetCaseStudiesByClientType returns case study counts per client type, largest first
	GetCaseStudiesByClientType(ctx context.Context) ([]ClientTypeDistributionResult, error)

	// GetProjectTotals returns totals over all projects
	GetProjectTotals(ctx context.Context) (*ProjectTotalsResult, error)

	// GetProjectTotalsBetween returns totals over projects with from <= completion_date < to
	GetProjectTotalsBetween(ctx context.Context, from, to time.Time) (*ProjectTotalsResult, error)
}
