package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sangkips/solarpower/internal/domain/entity"
	"github.com/sangkips/solarpower/internal/domain/enum"
	"github.com/sangkips/solarpower/internal/domain/repository"
	"github.com/sangkips/solarpower/pkg/apperror"
)

// CatalogService manages the service catalog
type CatalogService struct {
	serviceRepo   repository.ServiceRepository
	caseStudyRepo repository.CaseStudyRepository
	projectRepo   repository.InstallationProjectRepository
	transactor    repository.Transactor
	audit         *AuditService
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	serviceRepo repository.ServiceRepository,
	caseStudyRepo repository.CaseStudyRepository,
	projectRepo repository.InstallationProjectRepository,
	transactor repository.Transactor,
	audit *AuditService,
) *CatalogService {
	return &CatalogService{
		serviceRepo:   serviceRepo,
		caseStudyRepo: caseStudyRepo,
		projectRepo:   projectRepo,
		transactor:    transactor,
		audit:         audit,
	}
}

// ListServices returns all services in display order
func (s *CatalogService) ListServices(ctx context.Context) ([]entity.Service, error) {
	return s.serviceRepo.List(ctx)
}

// GetService retrieves a service by slug
func (s *CatalogService) GetService(ctx context.Context, slug string) (*entity.Service, error) {
	service, err := s.serviceRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, apperror.NewNotFoundError("Service")
	}
	return service, nil
}

// UpdateServiceInput represents the service edit form
type UpdateServiceInput struct {
	Actor            Actor
	CurrentSlug      string
	Slug             string
	ServiceType      enum.ServiceType
	Title            string
	Description      string
	ValueProposition string
	// Image replaces the stored image path when non-nil
	Image        *string
	IconClass    string
	DisplayOrder int
}

// UpdateService applies the edit form to the service identified by CurrentSlug
func (s *CatalogService) UpdateService(ctx context.Context, input *UpdateServiceInput) (*entity.Service, error) {
	service, err := s.GetService(ctx, input.CurrentSlug)
	if err != nil {
		return nil, err
	}

	if err := s.checkUnique(ctx, service.ID, input.Slug, input.ServiceType); err != nil {
		return nil, err
	}

	service.Slug = input.Slug
	service.ServiceType = input.ServiceType
	service.Title = input.Title
	service.Description = input.Description
	service.ValueProposition = input.ValueProposition
	service.IconClass = input.IconClass
	if service.IconClass == "" {
		service.IconClass = entity.DefaultIconClass
	}
	service.DisplayOrder = input.DisplayOrder
	if input.Image != nil {
		service.Image = *input.Image
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.serviceRepo.Update(ctx, service); err != nil {
			return err
		}
		return s.audit.Record(ctx, input.Actor, enum.AdminActionEdit, "Edited service: "+service.Title)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperror.NewFieldError("__all__", "Service with this Slug or Service type already exists.")
		}
		return nil, err
	}

	return service, nil
}

func (s *CatalogService) checkUnique(ctx context.Context, id uint, slug string, serviceType enum.ServiceType) error {
	var fieldErrors []apperror.FieldError

	bySlug, err := s.serviceRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if bySlug != nil && bySlug.ID != id {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "slug", Message: "Service with this Slug already exists."})
	}

	byType, err := s.serviceRepo.GetByType(ctx, serviceType)
	if err != nil {
		return err
	}
	if byType != nil && byType.ID != id {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "service_type", Message: "Service with this Service type already exists."})
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// DeleteServiceOutput reports what a service deletion removed
type DeleteServiceOutput struct {
	Service            *entity.Service
	CaseStudiesRemoved int64
}

// DeleteService removes a service together with its case studies. It is
// refused while installation projects still reference the service.
func (s *CatalogService) DeleteService(ctx context.Context, actor Actor, slug string) (*DeleteServiceOutput, error) {
	out := &DeleteServiceOutput{}

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		service, err := s.GetService(ctx, slug)
		if err != nil {
			return err
		}
		out.Service = service

		projects, err := s.projectRepo.CountByService(ctx, service.ID)
		if err != nil {
			return err
		}
		if projects > 0 {
			return apperror.NewConflictError(fmt.Sprintf(
				"Cannot delete service %q: it is referenced by %d installation project(s)", service.Title, projects))
		}

		out.CaseStudiesRemoved, err = s.caseStudyRepo.DeleteByService(ctx, service.ID)
		if err != nil {
			return err
		}

		if err := s.serviceRepo.Delete(ctx, service.ID); err != nil {
			return err
		}

		return s.audit.Record(ctx, actor, enum.AdminActionDelete, "Deleted service: "+service.Title)
	})
	if err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, apperror.NewConflictError("Cannot delete service: it is referenced by installation projects")
		}
		return nil, err
	}

	return out, nil
}
