package service

import (
	"context"
	"strconv"

	"github.com/sangkips/solarpower/internal/domain/repository"
)

const monthlySeriesLength = 12

// AnalyticsService builds the business analytics chart data
type AnalyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	metricRepo    repository.MonthlyMetricRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	analyticsRepo repository.AnalyticsRepository,
	metricRepo repository.MonthlyMetricRepository,
) *AnalyticsService {
	return &AnalyticsService{
		analyticsRepo: analyticsRepo,
		metricRepo:    metricRepo,
	}
}

// AnalyticsReport holds the chart series as parallel arrays
type AnalyticsReport struct {
	YearlyLabels        []string  `json:"yearly_labels"`
	YearlyProfitData    []float64 `json:"yearly_profit_data"`
	YearlyClientsData   []int64   `json:"yearly_clients_data"`
	YearlyRevenueData   []float64 `json:"yearly_revenue_data"`
	YearlySystemSize    []float64 `json:"yearly_system_size_data"`
	MonthlyLabels       []string  `json:"monthly_labels"`
	MonthlyRevenueData  []float64 `json:"monthly_revenue_data"`
	MonthlyExpensesData []float64 `json:"monthly_expenses_data"`
	MonthlyProfitData   []float64 `json:"monthly_profit_data"`
	MonthlyClientsData  []int     `json:"monthly_clients_data"`
	ServiceLabels       []string  `json:"service_labels"`
	ServiceData         []int64   `json:"service_data"`
	ServiceProfitData   []float64 `json:"service_profit_data"`
	ClientTypeLabels    []string  `json:"client_type_labels"`
	ClientTypeData      []int64   `json:"client_type_data"`
}

// GetReport aggregates projects, monthly metrics and case studies into chart series
func (s *AnalyticsService) GetReport(ctx context.Context) (*AnalyticsReport, error) {
	report := &AnalyticsReport{}

	// Yearly projects, oldest first
	yearly, err := s.analyticsRepo.GetProjectsByYear(ctx)
	if err != nil {
		return nil, err
	}
	report.YearlyLabels = make([]string, 0, len(yearly))
	report.YearlyProfitData = make([]float64, 0, len(yearly))
	report.YearlyClientsData = make([]int64, 0, len(yearly))
	report.YearlyRevenueData = make([]float64, 0, len(yearly))
	report.YearlySystemSize = make([]float64, 0, len(yearly))
	for _, y := range yearly {
		report.YearlyLabels = append(report.YearlyLabels, strconv.Itoa(y.Year))
		report.YearlyProfitData = append(report.YearlyProfitData, y.TotalProfit.InexactFloat64())
		report.YearlyClientsData = append(report.YearlyClientsData, y.TotalProjects)
		report.YearlyRevenueData = append(report.YearlyRevenueData, y.TotalRevenue.InexactFloat64())
		report.YearlySystemSize = append(report.YearlySystemSize, y.AvgSystemSize)
	}

	// Last twelve months, in chronological order
	metrics, err := s.metricRepo.ListLatest(ctx, monthlySeriesLength)
	if err != nil {
		return nil, err
	}
	report.MonthlyLabels = make([]string, 0, len(metrics))
	report.MonthlyRevenueData = make([]float64, 0, len(metrics))
	report.MonthlyExpensesData = make([]float64, 0, len(metrics))
	report.MonthlyProfitData = make([]float64, 0, len(metrics))
	report.MonthlyClientsData = make([]int, 0, len(metrics))
	for i := len(metrics) - 1; i >= 0; i-- {
		m := metrics[i]
		report.MonthlyLabels = append(report.MonthlyLabels, m.Month.Format("Jan 2006"))
		report.MonthlyRevenueData = append(report.MonthlyRevenueData, m.Revenue.InexactFloat64())
		report.MonthlyExpensesData = append(report.MonthlyExpensesData, m.Expenses.InexactFloat64())
		report.MonthlyProfitData = append(report.MonthlyProfitData, m.Profit().InexactFloat64())
		report.MonthlyClientsData = append(report.MonthlyClientsData, m.NewClients)
	}

	// Projects per service
	byService, err := s.analyticsRepo.GetProjectsByService(ctx)
	if err != nil {
		return nil, err
	}
	report.ServiceLabels = make([]string, 0, len(byService))
	report.ServiceData = make([]int64, 0, len(byService))
	report.ServiceProfitData = make([]float64, 0, len(byService))
	for _, d := range byService {
		report.ServiceLabels = append(report.ServiceLabels, d.ServiceTitle)
		report.ServiceData = append(report.ServiceData, d.Count)
		report.ServiceProfitData = append(report.ServiceProfitData, d.TotalProfit.InexactFloat64())
	}

	// Case studies per client type
	byClientType, err := s.analyticsRepo.GetCaseStudiesByClientType(ctx)
	if err != nil {
		return nil, err
	}
	report.ClientTypeLabels = make([]string, 0, len(byClientType))
	report.ClientTypeData = make([]int64, 0, len(byClientType))
	for _, d := range byClientType {
		report.ClientTypeLabels = append(report.ClientTypeLabels, d.ClientType.Label())
		report.ClientTypeData = append(report.ClientTypeData, d.Count)
	}

	return report, nil
}
