package service

import (
	"context"
	"testing"

	"github.com/sangkips/solarpower/internal/domain/enum"
	"github.com/sangkips/solarpower/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsService_GetReport(t *testing.T) {
	f := newFixture(t)

	install := testutil.CreateService(t, f.db, "installation", enum.ServiceTypeInstallation)
	assess := testutil.CreateService(t, f.db, "assessment", enum.ServiceTypeAssessment)

	testutil.CreateProject(t, f.db, install.ID, "A", testutil.Date(2023, 4, 1), "1000000.00", "200000.00")
	testutil.CreateProject(t, f.db, install.ID, "B", testutil.Date(2024, 2, 1), "2000000.00", "500000.00")
	testutil.CreateProject(t, f.db, assess.ID, "C", testutil.Date(2024, 6, 1), "100000.00", "40000.00")

	testutil.CreateCaseStudy(t, f.db, install.ID, "Home", enum.ClientTypeResidential, testutil.Date(2024, 1, 1))
	testutil.CreateCaseStudy(t, f.db, install.ID, "Shop", enum.ClientTypeCommercial, testutil.Date(2024, 2, 1))
	testutil.CreateCaseStudy(t, f.db, assess.ID, "Flat", enum.ClientTypeResidential, testutil.Date(2024, 3, 1))

	// fourteen months, only the last twelve are charted
	month := testutil.Date(2023, 1, 1)
	for i := 0; i < 14; i++ {
		testutil.CreateMetric(t, f.db, month.AddDate(0, i, 0), i, "100000.00", "60000.00")
	}

	report, err := f.analytics.GetReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"2023", "2024"}, report.YearlyLabels)
	assert.Equal(t, []int64{1, 2}, report.YearlyClientsData)
	assert.Equal(t, []float64{200000, 540000}, report.YearlyProfitData)
	assert.Equal(t, []float64{1000000, 2100000}, report.YearlyRevenueData)
	assert.Equal(t, []float64{10, 10}, report.YearlySystemSize)

	require.Len(t, report.MonthlyLabels, 12)
	assert.Equal(t, "Mar 2023", report.MonthlyLabels[0])
	assert.Equal(t, "Feb 2024", report.MonthlyLabels[11])
	assert.Equal(t, 2, report.MonthlyClientsData[0])
	assert.Equal(t, 13, report.MonthlyClientsData[11])
	assert.Equal(t, 40000.0, report.MonthlyProfitData[0])
	assert.Equal(t, 60000.0, report.MonthlyExpensesData[11])

	assert.Equal(t, []string{install.Title, assess.Title}, report.ServiceLabels)
	assert.Equal(t, []int64{2, 1}, report.ServiceData)
	assert.Equal(t, []float64{700000, 40000}, report.ServiceProfitData)

	assert.Equal(t, []string{"Residential", "Commercial"}, report.ClientTypeLabels)
	assert.Equal(t, []int64{2, 1}, report.ClientTypeData)
}

func TestAnalyticsService_GetReportEmpty(t *testing.T) {
	f := newFixture(t)

	report, err := f.analytics.GetReport(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, report.YearlyLabels)
	assert.Empty(t, report.YearlyLabels)
	assert.Empty(t, report.MonthlyLabels)
	assert.Empty(t, report.ServiceLabels)
	assert.Empty(t, report.ClientTypeLabels)
}
