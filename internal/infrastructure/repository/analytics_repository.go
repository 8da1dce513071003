package repository

import (
	"context"
	"time"

	domainRepo "github.com/sangkips/solarpower/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// yearOf returns a SQL expression extracting the year of column as an integer
func (r *analyticsRepository) yearOf(column string) string {
	if r.db.Dialector.Name() == "sqlite" {
		return "CAST(strftime('%Y', " + column + ") AS INTEGER)"
	}
	return "CAST(EXTRACT(YEAR FROM " + column + ") AS INTEGER)"
}

func (r *analyticsRepository) GetProjectsByYear(ctx context.Context) ([]domainRepo.YearlyProjectResult, error) {
	var results []domainRepo.YearlyProjectResult

	year := r.yearOf("completion_date")
	err := conn(ctx, r.db).Raw(`
		SELECT
			` + year + ` as year,
			COUNT(id) as total_projects,
			COALESCE(SUM(profit), 0) as total_profit,
			COALESCE(AVG(system_size_kw), 0) as avg_system_size,
			COALESCE(SUM(total_cost), 0) as total_revenue
		FROM installation_projects
		GROUP BY ` + year + `
		ORDER BY year ASC
	`).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetProjectsByService(ctx context.Context) ([]domainRepo.ServiceDistributionResult, error) {
	var results []domainRepo.ServiceDistributionResult

	err := conn(ctx, r.db).Raw(`
		SELECT
			s.title as service_title,
			COUNT(p.id) as count,
			COALESCE(SUM(p.profit), 0) as total_profit
		FROM installation_projects p
		JOIN services s ON s.id = p.service_id
		GROUP BY s.title
		ORDER BY count DESC, s.title ASC
	`).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetCaseStudiesByClientType(ctx context.Context) ([]domainRepo.ClientTypeDistributionResult, error) {
	var results []domainRepo.ClientTypeDistributionResult

	err := conn(ctx, r.db).Raw(`
		SELECT
			client_type,
			COUNT(id) as count
		FROM case_studies
		GROUP BY client_type
		ORDER BY count DESC, client_type ASC
	`).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetProjectTotals(ctx context.Context) (*domainRepo.ProjectTotalsResult, error) {
	var result domainRepo.ProjectTotalsResult

	err := conn(ctx, r.db).Raw(`
		SELECT
			COUNT(id) as count,
			COALESCE(SUM(total_cost), 0) as revenue,
			COALESCE(SUM(profit), 0) as profit
		FROM installation_projects
	`).Scan(&result).Error

	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *analyticsRepository) GetProjectTotalsBetween(ctx context.Context, from, to time.Time) (*domainRepo.ProjectTotalsResult, error) {
	var result domainRepo.ProjectTotalsResult

	err := conn(ctx, r.db).Raw(`
		SELECT
			COUNT(id) as count,
			COALESCE(SUM(total_cost), 0) as revenue,
			COALESCE(SUM(profit), 0) as profit
		FROM installation_projects
		WHERE completion_date >= ? AND completion_date < ?
	`, from, to).Scan(&result).Error

	if err != nil {
		return nil, err
	}

	return &result, nil
}
