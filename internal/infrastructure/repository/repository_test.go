package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sangkips/solarpower/internal/domain/entity"
	"github.com/sangkips/solarpower/internal/domain/enum"
	domainRepo "github.com/sangkips/solarpower/internal/domain/repository"
	"github.com/sangkips/solarpower/internal/infrastructure/repository"
	"github.com/sangkips/solarpower/internal/testutil"
	"github.com/sangkips/solarpower/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceRepositoryListsInDisplayOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	second := testutil.CreateService(t, db, "custom-plan", enum.ServiceTypeCustomPlan)
	first := testutil.CreateService(t, db, "assessment", enum.ServiceTypeAssessment)
	require.NoError(t, db.Model(second).Update("display_order", 2).Error)
	require.NoError(t, db.Model(first).Update("display_order", 1).Error)

	services, err := repository.NewServiceRepository(db).List(ctx)

	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "assessment", services[0].Slug)
	assert.Equal(t, "custom-plan", services[1].Slug)
}

func TestServiceRepositoryReturnsNilWhenMissing(t *testing.T) {
	db := testutil.NewTestDB(t)

	service, err := repository.NewServiceRepository(db).GetBySlug(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, service)
}

func TestServiceRepositoryTranslatesDuplicateSlug(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.CreateService(t, db, "assessment", enum.ServiceTypeAssessment)

	err := repository.NewServiceRepository(db).Create(context.Background(), &entity.Service{
		Slug:        "assessment",
		ServiceType: enum.ServiceTypeCustomPlan,
		Title:       "Duplicate",
		IconClass:   entity.DefaultIconClass,
	})

	assert.True(t, errors.Is(err, domainRepo.ErrDuplicateKey), err)
}

func TestCaseStudyRepositoryFeaturedAndRecent(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	service := testutil.CreateService(t, db, "installation", enum.ServiceTypeInstallation)

	var ids []uint
	for i := 1; i <= 5; i++ {
		cs := testutil.CreateCaseStudy(t, db, service.ID, "Project", enum.ClientTypeResidential, testutil.Date(2024, time.Month(i), 1))
		ids = append(ids, cs.ID)
	}
	// Only the first, third, fourth and fifth carry an image.
	require.NoError(t, db.Model(&entity.CaseStudy{}).Where("id <> ?", ids[1]).Update("featured_image", "case_studies/a.jpg").Error)

	repo := repository.NewCaseStudyRepository(db)

	featured, err := repo.ListFeatured(ctx, 3)
	require.NoError(t, err)
	require.Len(t, featured, 3)
	assert.Equal(t, []uint{ids[0], ids[2], ids[3]}, []uint{featured[0].ID, featured[1].ID, featured[2].ID})

	recent, err := repo.ListRecent(ctx, 4)
	require.NoError(t, err)
	require.Len(t, recent, 4)
	assert.Equal(t, ids[4], recent[0].ID)
	assert.Equal(t, ids[1], recent[3].ID)
}

func TestServiceRequestMarkCompletedOnlyChangesOnce(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := repository.NewServiceRequestRepository(db)

	request := &entity.ServiceRequest{
		Name:        "Jane",
		Email:       "jane@example.com",
		Phone:       "0712345678",
		Service:     enum.RequestServiceOther,
		Message:     "Hello there",
		SubmittedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, request))

	changed, err := repo.MarkCompleted(ctx, request.ID)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repo.MarkCompleted(ctx, request.ID)
	require.NoError(t, err)
	assert.False(t, changed)

	pending, err := repo.CountPending(ctx)
	require.NoError(t, err)
	assert.Zero(t, pending)
}

func TestProjectForeignKeyIsProtected(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	service := testutil.CreateService(t, db, "installation", enum.ServiceTypeInstallation)
	testutil.CreateProject(t, db, service.ID, "Acme Ltd", testutil.Date(2024, time.June, 1), "1000000.00", "250000.00")

	err := repository.NewServiceRepository(db).Delete(ctx, service.ID)

	assert.True(t, errors.Is(err, domainRepo.ErrForeignKey), err)
}

func TestDeletingServiceCascadesCaseStudies(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	service := testutil.CreateService(t, db, "assessment", enum.ServiceTypeAssessment)
	testutil.CreateCaseStudy(t, db, service.ID, "Home audit", enum.ClientTypeResidential, testutil.Date(2024, time.May, 2))

	require.NoError(t, repository.NewServiceRepository(db).Delete(ctx, service.ID))

	count, err := repository.NewCaseStudyRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMonthlyMetricUniqueMonth(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := repository.NewMonthlyMetricRepository(db)
	testutil.CreateMetric(t, db, testutil.Date(2024, time.March, 1), 3, "100.00", "50.00")

	found, err := repo.GetByMonth(ctx, testutil.Date(2024, time.March, 1))
	require.NoError(t, err)
	require.NotNil(t, found)

	err = repo.Create(ctx, &entity.MonthlyMetric{Month: testutil.Date(2024, time.March, 1)})
	assert.True(t, errors.Is(err, domainRepo.ErrDuplicateKey), err)
}

func TestTransactorRollsBackOnError(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	logs := repository.NewAdminLogRepository(db)
	boom := errors.New("boom")

	err := repository.NewTransactor(db).WithinTransaction(ctx, func(ctx context.Context) error {
		require.NoError(t, logs.Create(ctx, &entity.AdminLog{AdminUser: "admin", Action: enum.AdminActionEdit, Details: "x"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	recent, err := logs.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestAdminLogPagination(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	logs := repository.NewAdminLogRepository(db)

	base := time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 30; i++ {
		require.NoError(t, logs.Create(ctx, &entity.AdminLog{
			AdminUser: "admin",
			Action:    enum.AdminActionEdit,
			Details:   "entry",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	page, total, err := logs.List(ctx, &pagination.PaginationParams{Page: 2, PerPage: 25})

	require.NoError(t, err)
	assert.EqualValues(t, 30, total)
	require.Len(t, page, 5)
	assert.Equal(t, base.Add(4*time.Minute), page[0].Timestamp.UTC())
}
