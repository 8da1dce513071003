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

const invalidServiceChoice = "Select a valid choice. That choice is not one of the available choices."

// CaseStudyService handles back-office case study management
type CaseStudyService struct {
	caseStudyRepo repository.CaseStudyRepository
	serviceRepo   repository.ServiceRepository
	transactor    repository.Transactor
	audit         *AuditService
}

// NewCaseStudyService creates a new case study service
func NewCaseStudyService(
	caseStudyRepo repository.CaseStudyRepository,
	serviceRepo repository.ServiceRepository,
	transactor repository.Transactor,
	audit *AuditService,
) *CaseStudyService {
	return &CaseStudyService{
		caseStudyRepo: caseStudyRepo,
		serviceRepo:   serviceRepo,
		transactor:    transactor,
		audit:         audit,
	}
}

// CaseStudyInput represents the add and edit case study form
type CaseStudyInput struct {
	Actor               Actor
	Title               string
	ClientName          string
	ClientType          enum.ClientType
	Location            string
	InstallationDate    time.Time
	SystemCapacity      decimal.Decimal
	ProjectCost         decimal.Decimal
	PreviousConsumption *int
	CurrentConsumption  *int
	Testimonial         string
	// FeaturedImage replaces the stored image path when non-nil
	FeaturedImage *string
	ServiceID     uint
}

func (in *CaseStudyInput) apply(c *entity.CaseStudy) {
	c.Title = in.Title
	c.ClientName = in.ClientName
	c.ClientType = in.ClientType
	c.Location = in.Location
	c.InstallationDate = in.InstallationDate
	c.SystemCapacity = in.SystemCapacity
	c.ProjectCost = in.ProjectCost
	c.PreviousConsumption = in.PreviousConsumption
	c.CurrentConsumption = in.CurrentConsumption
	c.Testimonial = in.Testimonial
	c.ServiceID = in.ServiceID
	c.Service = nil
	if in.FeaturedImage != nil {
		c.FeaturedImage = *in.FeaturedImage
	}
}

// ListCaseStudies returns all case studies with their service
func (s *CaseStudyService) ListCaseStudies(ctx context.Context) ([]entity.CaseStudy, error) {
	return s.caseStudyRepo.List(ctx)
}

// GetCaseStudy retrieves a case study by ID
func (s *CaseStudyService) GetCaseStudy(ctx context.Context, id uint) (*entity.CaseStudy, error) {
	caseStudy, err := s.caseStudyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if caseStudy == nil {
		return nil, apperror.NewNotFoundError("Case study")
	}
	return caseStudy, nil
}

// CreateCaseStudy adds a case study
func (s *CaseStudyService) CreateCaseStudy(ctx context.Context, input *CaseStudyInput) (*entity.CaseStudy, error) {
	if err := s.checkService(ctx, input.ServiceID); err != nil {
		return nil, err
	}

	caseStudy := &entity.CaseStudy{}
	input.apply(caseStudy)

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.caseStudyRepo.Create(ctx, caseStudy); err != nil {
			return err
		}
		return s.audit.Record(ctx, input.Actor, enum.AdminActionEdit, "Added case study: "+caseStudy.Title)
	})
	if err != nil {
		return nil, serviceReferenceError(err)
	}

	return caseStudy, nil
}

// UpdateCaseStudy applies the edit form to an existing case study
func (s *CaseStudyService) UpdateCaseStudy(ctx context.Context, id uint, input *CaseStudyInput) (*entity.CaseStudy, error) {
	caseStudy, err := s.GetCaseStudy(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkService(ctx, input.ServiceID); err != nil {
		return nil, err
	}

	input.apply(caseStudy)

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.caseStudyRepo.Update(ctx, caseStudy); err != nil {
			return err
		}
		return s.audit.Record(ctx, input.Actor, enum.AdminActionEdit, "Edited case study: "+caseStudy.Title)
	})
	if err != nil {
		return nil, serviceReferenceError(err)
	}

	return caseStudy, nil
}

// DeleteCaseStudy removes a case study
func (s *CaseStudyService) DeleteCaseStudy(ctx context.Context, actor Actor, id uint) error {
	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		caseStudy, err := s.GetCaseStudy(ctx, id)
		if err != nil {
			return err
		}

		if err := s.caseStudyRepo.Delete(ctx, caseStudy.ID); err != nil {
			return err
		}
		return s.audit.Record(ctx, actor, enum.AdminActionDelete, "Deleted case study: "+caseStudy.Title)
	})
}

func (s *CaseStudyService) checkService(ctx context.Context, serviceID uint) error {
	service, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return err
	}
	if service == nil {
		return apperror.NewFieldError("service", invalidServiceChoice)
	}
	return nil
}

// serviceReferenceError turns a foreign key violation on service_id into a form error
func serviceReferenceError(err error) error {
	if errors.Is(err, repository.ErrForeignKey) {
		return apperror.NewFieldError("service", invalidServiceChoice)
	}
	return err
}
