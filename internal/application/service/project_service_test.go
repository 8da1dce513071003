package service

import (
	"context"
	"testing"
	"time"

	"github.com/sangkips/solarpower/internal/domain/enum"
	"github.com/sangkips/solarpower/internal/testutil"
	"github.com/sangkips/solarpower/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_ListProjects(t *testing.T) {
	f := newFixture(t)
	f.project.now = func() time.Time { return time.Date(2024, 8, 15, 12, 0, 0, 0, time.UTC) }

	svc := testutil.CreateService(t, f.db, "installation", enum.ServiceTypeInstallation)
	testutil.CreateProject(t, f.db, svc.ID, "Last year", testutil.Date(2023, 5, 1), "1000000.00", "200000.00")
	testutil.CreateProject(t, f.db, svc.ID, "Spring", testutil.Date(2024, 3, 1), "1200000.00", "250000.00")
	testutil.CreateProject(t, f.db, svc.ID, "Summer", testutil.Date(2024, 7, 1), "800000.00", "150000.00")

	overview, err := f.project.ListProjects(context.Background())
	require.NoError(t, err)

	require.Len(t, overview.Projects, 3)
	assert.Equal(t, "Summer", overview.Projects[0].ClientName)
	assert.Equal(t, ProjectStatusCompleted, overview.Projects[0].Status)
	assert.False(t, overview.Projects[0].IsFeatured)

	assert.Equal(t, int64(3), overview.TotalProjects)
	assert.True(t, decimal.RequireFromString("3000000").Equal(overview.TotalRevenue))
	assert.True(t, decimal.RequireFromString("600000").Equal(overview.TotalProfit))

	assert.Equal(t, 100.0, overview.ProjectGrowth)
	assert.Equal(t, 100.0, overview.RevenueGrowth)
	assert.Equal(t, 100.0, overview.ProfitGrowth)
}

func TestProjectService_ListProjectsWithoutPreviousYear(t *testing.T) {
	f := newFixture(t)
	f.project.now = func() time.Time { return time.Date(2024, 8, 15, 12, 0, 0, 0, time.UTC) }

	svc := testutil.CreateService(t, f.db, "installation", enum.ServiceTypeInstallation)
	testutil.CreateProject(t, f.db, svc.ID, "Spring", testutil.Date(2024, 3, 1), "1200000.00", "250000.00")

	overview, err := f.project.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Zero(t, overview.ProjectGrowth)
	assert.Zero(t, overview.RevenueGrowth)
}

func TestProjectService_CreateAndUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	svc := testutil.CreateService(t, f.db, "installation", enum.ServiceTypeInstallation)

	input := &ProjectInput{
		Actor:          testActor,
		ClientName:     "Baraka School",
		CompletionDate: testutil.Date(2024, 4, 30),
		SystemSizeKW:   decimal.RequireFromString("30.00"),
		TotalCost:      decimal.RequireFromString("3500000.00"),
		Profit:         decimal.RequireFromString("700000.00"),
		ServiceID:      svc.ID,
	}
	project, err := f.project.CreateProject(ctx, input)
	require.NoError(t, err)
	assert.NotZero(t, project.ID)

	input.ClientName = "Baraka Academy"
	updated, err := f.project.UpdateProject(ctx, project.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Baraka Academy", updated.ClientName)

	logs := f.auditLog(t)
	require.Len(t, logs, 2)
	assert.Equal(t, "Added project: Baraka School", logs[0].Details)
	assert.Equal(t, "Edited project: Baraka Academy", logs[1].Details)

	t.Run("unknown service", func(t *testing.T) {
		input.ServiceID = svc.ID + 10
		_, err := f.project.UpdateProject(ctx, project.ID, input)
		require.True(t, apperror.IsValidation(err))
		assert.Contains(t, apperror.GetAppError(err).FieldMessages(), "service")
	})

	t.Run("unknown project", func(t *testing.T) {
		_, err := f.project.UpdateProject(ctx, project.ID+10, input)
		assert.True(t, apperror.IsNotFound(err))
	})
}
