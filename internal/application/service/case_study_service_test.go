package service

import (
	"context"
	"testing"

	"github.com/sangkips/solarpower/internal/domain/entity"
	"github.com/sangkips/solarpower/internal/domain/enum"
	"github.com/sangkips/solarpower/internal/testutil"
	"github.com/sangkips/solarpower/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func caseStudyInput(serviceID uint, title string) *CaseStudyInput {
	return &CaseStudyInput{
		Actor:               testActor,
		Title:               title,
		ClientName:          "Green Farm Ltd",
		ClientType:          enum.ClientTypeIndustrial,
		Location:            "Nakuru",
		InstallationDate:    testutil.Date(2024, 2, 10),
		SystemCapacity:      decimal.RequireFromString("25.00"),
		ProjectCost:         decimal.RequireFromString("2500000.00"),
		PreviousConsumption: testutil.IntPtr(4000),
		CurrentConsumption:  testutil.IntPtr(1000),
		Testimonial:         "Our bills dropped by three quarters.",
		ServiceID:           serviceID,
	}
}

func TestCaseStudyService_Lifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	svc := testutil.CreateService(t, f.db, "installation", enum.ServiceTypeInstallation)

	created, err := f.caseStudy.CreateCaseStudy(ctx, caseStudyInput(svc.ID, "Farm cold room"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := f.caseStudy.GetCaseStudy(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Farm cold room", got.Title)
	assert.Equal(t, 75.0, got.SavingsPercentage())

	input := caseStudyInput(svc.ID, "Farm cold room and offices")
	input.CurrentConsumption = nil
	updated, err := f.caseStudy.UpdateCaseStudy(ctx, created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Farm cold room and offices", updated.Title)
	assert.Nil(t, updated.CurrentConsumption)

	require.NoError(t, f.caseStudy.DeleteCaseStudy(ctx, testActor, created.ID))
	_, err = f.caseStudy.GetCaseStudy(ctx, created.ID)
	assert.True(t, apperror.IsNotFound(err))

	logs := f.auditLog(t)
	require.Len(t, logs, 3)
	assert.Equal(t, "Added case study: Farm cold room", logs[0].Details)
	assert.Equal(t, "Edited case study: Farm cold room and offices", logs[1].Details)
	assert.Equal(t, enum.AdminActionDelete, logs[2].Action)
	assert.Equal(t, "Deleted case study: Farm cold room and offices", logs[2].Details)
}

func TestCaseStudyService_RejectsUnknownService(t *testing.T) {
	f := newFixture(t)

	_, err := f.caseStudy.CreateCaseStudy(context.Background(), caseStudyInput(999, "Orphan"))
	require.Error(t, err)
	require.True(t, apperror.IsValidation(err))
	assert.Contains(t, apperror.GetAppError(err).FieldMessages(), "service")

	var count int64
	f.db.Model(&entity.CaseStudy{}).Count(&count)
	assert.Zero(t, count)
	assert.Empty(t, f.auditLog(t))
}

func TestCaseStudyService_DeleteMissing(t *testing.T) {
	f := newFixture(t)

	err := f.caseStudy.DeleteCaseStudy(context.Background(), testActor, 42)
	assert.True(t, apperror.IsNotFound(err))
	assert.Empty(t, f.auditLog(t))
}
