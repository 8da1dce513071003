package service

import (
	"context"
	"math"
	"time"

	"github.com/sangkips/solarpower/internal/domain/entity"
	"github.com/sangkips/solarpower/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const (
	recentRequestLimit = 5
	recentLogLimit     = 10
)

// DashboardService provides dashboard statistics
type DashboardService struct {
	requestRepo   repository.ServiceRequestRepository
	serviceRepo   repository.ServiceRepository
	caseStudyRepo repository.CaseStudyRepository
	projectRepo   repository.InstallationProjectRepository
	analyticsRepo repository.AnalyticsRepository
	audit         *AuditService
	now           func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	requestRepo repository.ServiceRequestRepository,
	serviceRepo repository.ServiceRepository,
	caseStudyRepo repository.CaseStudyRepository,
	projectRepo repository.InstallationProjectRepository,
	analyticsRepo repository.AnalyticsRepository,
	audit *AuditService,
) *DashboardService {
	return &DashboardService{
		requestRepo:   requestRepo,
		serviceRepo:   serviceRepo,
		caseStudyRepo: caseStudyRepo,
		projectRepo:   projectRepo,
		analyticsRepo: analyticsRepo,
		audit:         audit,
		now:           time.Now,
	}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TotalRequests              int64                   `json:"total_requests"`
	PendingRequests            int64                   `json:"pending_requests"`
	TotalServices              int64                   `json:"total_services"`
	TotalCaseStudies           int64                   `json:"total_case_studies"`
	TotalProjects              int64                   `json:"total_projects"`
	RecentRequests             []entity.ServiceRequest `json:"recent_requests"`
	RecentLogs                 []entity.AdminLog       `json:"recent_logs"`
	ServicesGrowth             float64                 `json:"services_growth"`
	CaseStudiesGrowth          float64                 `json:"case_studies_growth"`
	NewProjectsThisWeek        int64                   `json:"new_projects_this_week"`
	CompletedRequestsThisMonth int64                   `json:"completed_requests_this_month"`
	CurrentYearRevenue         decimal.Decimal         `json:"current_year_revenue"`
	CurrentYearProfit          decimal.Decimal         `json:"current_year_profit"`
	AvgProjectDuration         int                     `json:"avg_project_duration"`
	CurrentMonth               string                  `json:"current_month"`
	LastMonth                  string                  `json:"last_month"`
}

// GetDashboardStats returns dashboard statistics
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error

	now := s.now().UTC()
	startOfMonth := entity.FirstOfMonth(now)
	startOfLastMonth := startOfMonth.AddDate(0, -1, 0)
	startOfNextMonth := startOfMonth.AddDate(0, 1, 0)
	startOfYear := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)

	stats.CurrentMonth = startOfMonth.Format("January")
	stats.LastMonth = startOfLastMonth.Format("January")

	// Counts
	if stats.TotalRequests, err = s.requestRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingRequests, err = s.requestRepo.CountPending(ctx); err != nil {
		return nil, err
	}
	if stats.TotalServices, err = s.serviceRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalCaseStudies, err = s.caseStudyRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalProjects, err = s.projectRepo.Count(ctx); err != nil {
		return nil, err
	}

	// Recent activity
	if stats.RecentRequests, err = s.requestRepo.ListRecent(ctx, recentRequestLimit); err != nil {
		return nil, err
	}
	if stats.RecentLogs, err = s.audit.Recent(ctx, recentLogLimit); err != nil {
		return nil, err
	}

	// Month over month growth
	servicesThisMonth, err := s.serviceRepo.CountCreatedBetween(ctx, startOfMonth, startOfNextMonth)
	if err != nil {
		return nil, err
	}
	servicesLastMonth, err := s.serviceRepo.CountCreatedBetween(ctx, startOfLastMonth, startOfMonth)
	if err != nil {
		return nil, err
	}
	stats.ServicesGrowth = countGrowth(servicesThisMonth, servicesLastMonth)

	caseStudiesThisMonth, err := s.caseStudyRepo.CountInstalledBetween(ctx, startOfMonth, startOfNextMonth)
	if err != nil {
		return nil, err
	}
	caseStudiesLastMonth, err := s.caseStudyRepo.CountInstalledBetween(ctx, startOfLastMonth, startOfMonth)
	if err != nil {
		return nil, err
	}
	stats.CaseStudiesGrowth = countGrowth(caseStudiesThisMonth, caseStudiesLastMonth)

	if stats.NewProjectsThisWeek, err = s.projectRepo.CountCompletedSince(ctx, now.AddDate(0, 0, -7)); err != nil {
		return nil, err
	}
	if stats.CompletedRequestsThisMonth, err = s.requestRepo.CountCompletedSubmittedBetween(ctx, startOfMonth, startOfNextMonth); err != nil {
		return nil, err
	}

	// Current year financials
	yearTotals, err := s.analyticsRepo.GetProjectTotalsBetween(ctx, startOfYear, startOfYear.AddDate(1, 0, 0))
	if err != nil {
		return nil, err
	}
	stats.CurrentYearRevenue = yearTotals.Revenue
	stats.CurrentYearProfit = yearTotals.Profit

	yearProjects, err := s.projectRepo.ListCompletedBetween(ctx, startOfYear, startOfYear.AddDate(1, 0, 0))
	if err != nil {
		return nil, err
	}
	stats.AvgProjectDuration = AverageDurationDays(yearProjects)

	return stats, nil
}

// AverageDurationDays returns the mean time from record creation to completion
// in whole days, floored. It is 0 for an empty slice.
func AverageDurationDays(projects []entity.InstallationProject) int {
	if len(projects) == 0 {
		return 0
	}

	var total time.Duration
	for _, p := range projects {
		total += p.CompletionDate.Sub(p.CreatedAt)
	}
	avg := total / time.Duration(len(projects))

	return int(math.Floor(avg.Hours() / 24))
}
