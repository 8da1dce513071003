package service

import (
	"context"
	"errors"
	"time"

	"github.com/sangkips/solarpower/internal/domain/entity"
	"github.com/sangkips/solarpower/internal/domain/enum"
	"github.com/sangkips/solarpower/internal/domain/repository"
	"github.com/sangkips/solarpower/pkg/apperror"
	"github.com/shopspring/decimal"
)

// DuplicateMonthMessage is reported when a metric already exists for the month
const DuplicateMonthMessage = "Monthly metric with this Month already exists."

// MetricService handles monthly business metrics
type MetricService struct {
	metricRepo repository.MonthlyMetricRepository
	transactor repository.Transactor
	audit      *AuditService
}

// NewMetricService creates a new metric service
func NewMetricService(
	metricRepo repository.MonthlyMetricRepository,
	transactor repository.Transactor,
	audit *AuditService,
) *MetricService {
	return &MetricService{
		metricRepo: metricRepo,
		transactor: transactor,
		audit:      audit,
	}
}

// MetricRow is a metric annotated with its profit margin
type MetricRow struct {
	entity.MonthlyMetric
	Profit       decimal.Decimal
	ProfitMargin float64
}

// MetricOverview is the content of the metrics list screen
type MetricOverview struct {
	Metrics       []MetricRow
	TotalRevenue  decimal.Decimal
	TotalProfit   decimal.Decimal
	TotalClients  int64
	RevenueGrowth float64
	ProfitGrowth  float64
	ClientsGrowth float64
}

// ListMetrics returns every metric newest first, with totals and the growth
// of the latest month over the one before it
func (s *MetricService) ListMetrics(ctx context.Context) (*MetricOverview, error) {
	metrics, err := s.metricRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	overview := &MetricOverview{
		Metrics:      make([]MetricRow, 0, len(metrics)),
		TotalRevenue: decimal.Zero,
		TotalProfit:  decimal.Zero,
	}
	for _, m := range metrics {
		overview.Metrics = append(overview.Metrics, MetricRow{
			MonthlyMetric: m,
			Profit:        m.Profit(),
			ProfitMargin:  m.ProfitMargin(),
		})
		overview.TotalRevenue = overview.TotalRevenue.Add(m.Revenue)
		overview.TotalProfit = overview.TotalProfit.Add(m.Profit())
		overview.TotalClients += int64(m.NewClients)
	}

	if len(metrics) > 0 {
		latest := metrics[0]
		var previous entity.MonthlyMetric
		if len(metrics) > 1 {
			previous = metrics[1]
		}
		overview.RevenueGrowth = decimalGrowth(latest.Revenue, previous.Revenue)
		overview.ProfitGrowth = decimalGrowth(latest.Profit(), previous.Profit())
		overview.ClientsGrowth = countGrowth(int64(latest.NewClients), int64(previous.NewClients))
	}

	return overview, nil
}

// CreateMetricInput represents the add metric form
type CreateMetricInput struct {
	Actor      Actor
	Month      time.Time
	NewClients int
	Revenue    decimal.Decimal
	Expenses   decimal.Decimal
}

// CreateMetric records the metrics of one month. Month is normalised to the
// first day of its month and must not already have a metric.
func (s *MetricService) CreateMetric(ctx context.Context, input *CreateMetricInput) (*entity.MonthlyMetric, error) {
	metric := &entity.MonthlyMetric{
		Month:      entity.FirstOfMonth(input.Month),
		NewClients: input.NewClients,
		Revenue:    input.Revenue,
		Expenses:   input.Expenses,
	}

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.metricRepo.GetByMonth(ctx, metric.Month)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperror.NewFieldError("month", DuplicateMonthMessage)
		}

		if err := s.metricRepo.Create(ctx, metric); err != nil {
			return err
		}
		return s.audit.Record(ctx, input.Actor, enum.AdminActionEdit, "Added monthly metric for "+metric.Month.Format("January 2006"))
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperror.NewFieldError("month", DuplicateMonthMessage)
		}
		return nil, err
	}

	return metric, nil
}
