package repository

import (
	"context"
	"time"

	"github.com/sangkips/solarpower/internal/domain/entity"
	"github.com/sangkips/solarpower/internal/domain/enum"
)

// ServiceRepository defines the interface for service data operations
type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, id uint) (*entity.Service, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Service, error)
	GetByType(ctx context.Context, serviceType enum.ServiceType) (*entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id uint) error
	// List returns all services ordered by display order
	List(ctx context.Context) ([]entity.Service, error)
	Count(ctx context.Context) (int64, error)
	// CountCreatedBetween counts services with from <= created_at < to
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}

// CaseStudyRepository defines the interface for case study data operations
type CaseStudyRepository interface {
	Create(ctx context.Context, caseStudy *entity.CaseStudy) error
	// GetByID returns the case study with its service loaded
	GetByID(ctx context.Context, id uint) (*entity.CaseStudy, error)
	Update(ctx context.Context, caseStudy *entity.CaseStudy) error
	Delete(ctx context.Context, id uint) error
	DeleteByService(ctx context.Context, serviceID uint) (int64, error)
	List(ctx context.Context) ([]entity.CaseStudy, error)
	// ListFeatured returns case studies that have a featured image
	ListFeatured(ctx context.Context, limit int) ([]entity.CaseStudy, error)
	// ListRecent returns the most recently installed case studies
	ListRecent(ctx context.Context, limit int) ([]entity.CaseStudy, error)
	Count(ctx context.Context) (int64, error)
	CountInstalledBetween(ctx context.Context, from, to time.Time) (int64, error)
}
