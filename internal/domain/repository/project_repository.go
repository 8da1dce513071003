package repository

import (
	"context"
	"time"

	"github.com/sangkips/solarpower/internal/domain/entity"
)

// InstallationProjectRepository defines the interface for installation project data operations
type InstallationProjectRepository interface {
	Create(ctx context.Context, project *entity.InstallationProject) error
	GetByID(ctx context.Context, id uint) (*entity.InstallationProject, error)
	Update(ctx context.Context, project *entity.InstallationProject) error
	// List returns all projects with their service, newest completion first
	List(ctx context.Context) ([]entity.InstallationProject, error)
	Count(ctx context.Context) (int64, error)
	CountByService(ctx context.Context, serviceID uint) (int64, error)
	CountCompletedSince(ctx context.Context, since time.Time) (int64, error)
	// ListCompletedBetween returns projects with from <= completion_date < to
	ListCompletedBetween(ctx context.Context, from, to time.Time) ([]entity.InstallationProject, error)
}

// MonthlyMetricRepository defines the interface for monthly metric data operations
type MonthlyMetricRepository interface {
	Create(ctx context.Context, metric *entity.MonthlyMetric) error
	GetByMonth(ctx context.Context, month time.Time) (*entity.MonthlyMetric, error)
	// List returns all metrics, newest month first
	List(ctx context.Context) ([]entity.MonthlyMetric, error)
	// ListLatest returns up to limit metrics, newest month first
	ListLatest(ctx context.Context, limit int) ([]entity.MonthlyMetric, error)
}
