package service

import (
	"context"

	"github.com/sangkips/solarpower/internal/domain/entity"
	"github.com/sangkips/solarpower/internal/domain/repository"
	"github.com/sangkips/solarpower/pkg/apperror"
)

const (
	featuredCaseStudyLimit = 3
	recentCaseStudyLimit   = 4
)

// SiteService assembles the read-only public pages
type SiteService struct {
	serviceRepo   repository.ServiceRepository
	caseStudyRepo repository.CaseStudyRepository
}

// NewSiteService creates a new site service
func NewSiteService(
	serviceRepo repository.ServiceRepository,
	caseStudyRepo repository.CaseStudyRepository,
) *SiteService {
	return &SiteService{
		serviceRepo:   serviceRepo,
		caseStudyRepo: caseStudyRepo,
	}
}

// HomePage is the content of the landing page
type HomePage struct {
	Services    []entity.Service
	CaseStudies []entity.CaseStudy
}

// ServicesPage is the content of the service catalog page
type ServicesPage struct {
	Services    []entity.Service
	CaseStudies []entity.CaseStudy
}

// GetHomePage returns all services and up to three featured case studies
func (s *SiteService) GetHomePage(ctx context.Context) (*HomePage, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	featured, err := s.caseStudyRepo.ListFeatured(ctx, featuredCaseStudyLimit)
	if err != nil {
		return nil, err
	}

	return &HomePage{Services: services, CaseStudies: featured}, nil
}

// GetServicesPage returns all services and the most recently installed case studies
func (s *SiteService) GetServicesPage(ctx context.Context) (*ServicesPage, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.caseStudyRepo.ListRecent(ctx, recentCaseStudyLimit)
	if err != nil {
		return nil, err
	}

	return &ServicesPage{Services: services, CaseStudies: recent}, nil
}

// GetCaseStudy retrieves a case study with its service
func (s *SiteService) GetCaseStudy(ctx context.Context, id uint) (*entity.CaseStudy, error) {
	caseStudy, err := s.caseStudyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if caseStudy == nil {
		return nil, apperror.NewNotFoundError("Case study")
	}
	return caseStudy, nil
}
