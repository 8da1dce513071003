package service

import (
	"context"
	"time"

	"github.com/sangkips/solarpower/internal/domain/entity"
	"github.com/sangkips/solarpower/internal/domain/enum"
	"github.com/sangkips/solarpower/internal/domain/repository"
	"github.com/sangkips/solarpower/pkg/apperror"
	"github.com/shopspring/decimal"
)

// ProjectStatusCompleted is the status shown for every recorded project
const ProjectStatusCompleted = "completed"

// ProjectService handles installation project records
type ProjectService struct {
	projectRepo   repository.InstallationProjectRepository
	serviceRepo   repository.ServiceRepository
	analyticsRepo repository.AnalyticsRepository
	transactor    repository.Transactor
	audit         *AuditService
	now           func() time.Time
}

// NewProjectService creates a new project service
func NewProjectService(
	projectRepo repository.InstallationProjectRepository,
	serviceRepo repository.ServiceRepository,
	analyticsRepo repository.AnalyticsRepository,
	transactor repository.Transactor,
	audit *AuditService,
) *ProjectService {
	return &ProjectService{
		projectRepo:   projectRepo,
		serviceRepo:   serviceRepo,
		analyticsRepo: analyticsRepo,
		transactor:    transactor,
		audit:         audit,
		now:           time.Now,
	}
}

// ProjectRow is a project annotated for the list screen
type ProjectRow struct {
	entity.InstallationProject
	Status     string
	IsFeatured bool
}

// ProjectOverview is the content of the project list screen
type ProjectOverview struct {
	Projects      []ProjectRow
	TotalProjects int64
	TotalRevenue  decimal.Decimal
	TotalProfit   decimal.Decimal
	ProjectGrowth float64
	RevenueGrowth float64
	ProfitGrowth  float64
}

// ListProjects returns all projects with overall totals and year over year growth
func (s *ProjectService) ListProjects(ctx context.Context) (*ProjectOverview, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	overview := &ProjectOverview{Projects: make([]ProjectRow, 0, len(projects))}
	for _, p := range projects {
		overview.Projects = append(overview.Projects, ProjectRow{
			InstallationProject: p,
			Status:              ProjectStatusCompleted,
			IsFeatured:          false,
		})
	}

	totals, err := s.analyticsRepo.GetProjectTotals(ctx)
	if err != nil {
		return nil, err
	}
	overview.TotalProjects = totals.Count
	overview.TotalRevenue = totals.Revenue
	overview.TotalProfit = totals.Profit

	year := s.now().UTC().Year()
	thisYear := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	lastYear := thisYear.AddDate(-1, 0, 0)
	nextYear := thisYear.AddDate(1, 0, 0)

	current, err := s.analyticsRepo.GetProjectTotalsBetween(ctx, thisYear, nextYear)
	if err != nil {
		return nil, err
	}
	previous, err := s.analyticsRepo.GetProjectTotalsBetween(ctx, lastYear, thisYear)
	if err != nil {
		return nil, err
	}

	overview.ProjectGrowth = countGrowth(current.Count, previous.Count)
	overview.RevenueGrowth = decimalGrowth(current.Revenue, previous.Revenue)
	overview.ProfitGrowth = decimalGrowth(current.Profit, previous.Profit)

	return overview, nil
}

// GetProject retrieves a project by ID
func (s *ProjectService) GetProject(ctx context.Context, id uint) (*entity.InstallationProject, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.NewNotFoundError("Installation project")
	}
	return project, nil
}

// ProjectInput represents the add and edit project form
type ProjectInput struct {
	Actor          Actor
	ClientName     string
	CompletionDate time.Time
	SystemSizeKW   decimal.Decimal
	TotalCost      decimal.Decimal
	Profit         decimal.Decimal
	ServiceID      uint
}

func (in *ProjectInput) apply(p *entity.InstallationProject) {
	p.ClientName = in.ClientName
	p.CompletionDate = in.CompletionDate
	p.SystemSizeKW = in.SystemSizeKW
	p.TotalCost = in.TotalCost
	p.Profit = in.Profit
	p.ServiceID = in.ServiceID
	p.Service = nil
}

// CreateProject records a completed installation
func (s *ProjectService) CreateProject(ctx context.Context, input *ProjectInput) (*entity.InstallationProject, error) {
	if err := s.checkService(ctx, input.ServiceID); err != nil {
		return nil, err
	}

	project := &entity.InstallationProject{}
	input.apply(project)

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.projectRepo.Create(ctx, project); err != nil {
			return err
		}
		return s.audit.Record(ctx, input.Actor, enum.AdminActionEdit, "Added project: "+project.ClientName)
	})
	if err != nil {
		return nil, serviceReferenceError(err)
	}

	return project, nil
}

// UpdateProject applies the edit form to an existing project
func (s *ProjectService) UpdateProject(ctx context.Context, id uint, input *ProjectInput) (*entity.InstallationProject, error) {
	project, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkService(ctx, input.ServiceID); err != nil {
		return nil, err
	}

	input.apply(project)

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.projectRepo.Update(ctx, project); err != nil {
			return err
		}
		return s.audit.Record(ctx, input.Actor, enum.AdminActionEdit, "Edited project: "+project.ClientName)
	})
	if err != nil {
		return nil, serviceReferenceError(err)
	}

	return project, nil
}

func (s *ProjectService) checkService(ctx context.Context, serviceID uint) error {
	service, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return err
	}
	if service == nil {
		return apperror.NewFieldError("service", invalidServiceChoice)
	}
	return nil
}
