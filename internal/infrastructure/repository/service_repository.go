package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sangkips/solarpower/internal/domain/entity"
	"github.com/sangkips/solarpower/internal/domain/enum"
	domainRepo "github.com/sangkips/solarpower/internal/domain/repository"
	"gorm.io/gorm"
)

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *gorm.DB) domainRepo.ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	return translateError(conn(ctx, r.db).Create(service).Error)
}

func (r *serviceRepository) GetByID(ctx context.Context, id uint) (*entity.Service, error) {
	var service entity.Service
	err := conn(ctx, r.db).First(&service, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &service, err
}

func (r *serviceRepository) GetBySlug(ctx context.Context, slug string) (*entity.Service, error) {
	var service entity.Service
	err := conn(ctx, r.db).First(&service, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &service, err
}

func (r *serviceRepository) GetByType(ctx context.Context, serviceType enum.ServiceType) (*entity.Service, error) {
	var service entity.Service
	err := conn(ctx, r.db).First(&service, "service_type = ?", serviceType).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &service, err
}

func (r *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	return translateError(conn(ctx, r.db).Save(service).Error)
}

func (r *serviceRepository) Delete(ctx context.Context, id uint) error {
	return translateError(conn(ctx, r.db).Delete(&entity.Service{}, "id = ?", id).Error)
}

func (r *serviceRepository) List(ctx context.Context) ([]entity.Service, error) {
	var services []entity.Service
	err := conn(ctx, r.db).Order("display_order ASC, id ASC").Find(&services).Error
	return services, err
}

func (r *serviceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.Service{}).Count(&count).Error
	return count, err
}

func (r *serviceRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.Service{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	return count, err
}

type caseStudyRepository struct {
	db *gorm.DB
}

// NewCaseStudyRepository creates a new case study repository
func NewCaseStudyRepository(db *gorm.DB) domainRepo.CaseStudyRepository {
	return &caseStudyRepository{db: db}
}

func (r *caseStudyRepository) Create(ctx context.Context, caseStudy *entity.CaseStudy) error {
	return translateError(conn(ctx, r.db).Omit("Service").Create(caseStudy).Error)
}

func (r *caseStudyRepository) GetByID(ctx context.Context, id uint) (*entity.CaseStudy, error) {
	var caseStudy entity.CaseStudy
	err := conn(ctx, r.db).Preload("Service").First(&caseStudy, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &caseStudy, err
}

func (r *caseStudyRepository) Update(ctx context.Context, caseStudy *entity.CaseStudy) error {
	return translateError(conn(ctx, r.db).Omit("Service").Save(caseStudy).Error)
}

func (r *caseStudyRepository) Delete(ctx context.Context, id uint) error {
	return conn(ctx, r.db).Delete(&entity.CaseStudy{}, "id = ?", id).Error
}

func (r *caseStudyRepository) DeleteByService(ctx context.Context, serviceID uint) (int64, error) {
	result := conn(ctx, r.db).Where("service_id = ?", serviceID).Delete(&entity.CaseStudy{})
	return result.RowsAffected, result.Error
}

func (r *caseStudyRepository) List(ctx context.Context) ([]entity.CaseStudy, error) {
	var caseStudies []entity.CaseStudy
	err := conn(ctx, r.db).Preload("Service").Order("id ASC").Find(&caseStudies).Error
	return caseStudies, err
}

func (r *caseStudyRepository) ListFeatured(ctx context.Context, limit int) ([]entity.CaseStudy, error) {
	var caseStudies []entity.CaseStudy
	err := conn(ctx, r.db).
		Where("featured_image IS NOT NULL AND featured_image <> ''").
		Order("id ASC").
		Limit(limit).
		Find(&caseStudies).Error
	return caseStudies, err
}

func (r *caseStudyRepository) ListRecent(ctx context.Context, limit int) ([]entity.CaseStudy, error) {
	var caseStudies []entity.CaseStudy
	err := conn(ctx, r.db).
		Order("installation_date DESC, id DESC").
		Limit(limit).
		Find(&caseStudies).Error
	return caseStudies, err
}

func (r *caseStudyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.CaseStudy{}).Count(&count).Error
	return count, err
}

func (r *caseStudyRepository) CountInstalledBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.CaseStudy{}).
		Where("installation_date >= ? AND installation_date < ?", from, to).
		Count(&count).Error
	return count, err
}
