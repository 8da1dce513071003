package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sangkips/solarpower/internal/domain/entity"
	domainRepo "github.com/sangkips/solarpower/internal/domain/repository"
	"gorm.io/gorm"
)

type installationProjectRepository struct {
	db *gorm.DB
}

// NewInstallationProjectRepository creates a new installation project repository
func NewInstallationProjectRepository(db *gorm.DB) domainRepo.InstallationProjectRepository {
	return &installationProjectRepository{db: db}
}

func (r *installationProjectRepository) Create(ctx context.Context, project *entity.InstallationProject) error {
	return translateError(conn(ctx, r.db).Omit("Service").Create(project).Error)
}

func (r *installationProjectRepository) GetByID(ctx context.Context, id uint) (*entity.InstallationProject, error) {
	var project entity.InstallationProject
	err := conn(ctx, r.db).Preload("Service").First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &project, err
}

func (r *installationProjectRepository) Update(ctx context.Context, project *entity.InstallationProject) error {
	return translateError(conn(ctx, r.db).Omit("Service").Save(project).Error)
}

func (r *installationProjectRepository) List(ctx context.Context) ([]entity.InstallationProject, error) {
	var projects []entity.InstallationProject
	err := conn(ctx, r.db).Preload("Service").
		Order("completion_date DESC, id DESC").
		Find(&projects).Error
	return projects, err
}

func (r *installationProjectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.InstallationProject{}).Count(&count).Error
	return count, err
}

func (r *installationProjectRepository) CountByService(ctx context.Context, serviceID uint) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.InstallationProject{}).
		Where("service_id = ?", serviceID).
		Count(&count).Error
	return count, err
}

func (r *installationProjectRepository) CountCompletedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.InstallationProject{}).
		Where("completion_date >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *installationProjectRepository) ListCompletedBetween(ctx context.Context, from, to time.Time) ([]entity.InstallationProject, error) {
	var projects []entity.InstallationProject
	err := conn(ctx, r.db).
		Where("completion_date >= ? AND completion_date < ?", from, to).
		Order("completion_date ASC, id ASC").
		Find(&projects).Error
	return projects, err
}

type monthlyMetricRepository struct {
	db *gorm.DB
}

// NewMonthlyMetricRepository creates a new monthly metric repository
func NewMonthlyMetricRepository(db *gorm.DB) domainRepo.MonthlyMetricRepository {
	return &monthlyMetricRepository{db: db}
}

func (r *monthlyMetricRepository) Create(ctx context.Context, metric *entity.MonthlyMetric) error {
	return translateError(conn(ctx, r.db).Create(metric).Error)
}

func (r *monthlyMetricRepository) GetByMonth(ctx context.Context, month time.Time) (*entity.MonthlyMetric, error) {
	var metric entity.MonthlyMetric
	err := conn(ctx, r.db).First(&metric, "month = ?", entity.FirstOfMonth(month)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &metric, err
}

func (r *monthlyMetricRepository) List(ctx context.Context) ([]entity.MonthlyMetric, error) {
	var metrics []entity.MonthlyMetric
	err := conn(ctx, r.db).Order("month DESC").Find(&metrics).Error
	return metrics, err
}

func (r *monthlyMetricRepository) ListLatest(ctx context.Context, limit int) ([]entity.MonthlyMetric, error) {
	var metrics []entity.MonthlyMetric
	err := conn(ctx, r.db).Order("month DESC").Limit(limit).Find(&metrics).Error
	return metrics, err
}
