package service

import (
	"context"
	"testing"
	"time"

	"github.com/sangkips/solarpower/internal/testutil"
	"github.com/sangkips/solarpower/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricService_CreateMetric(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	input := &CreateMetricInput{
		Actor:      testActor,
		Month:      time.Date(2024, 3, 17, 9, 30, 0, 0, time.UTC),
		NewClients: 4,
		Revenue:    decimal.RequireFromString("500000.00"),
		Expenses:   decimal.RequireFromString("300000.00"),
	}

	metric, err := f.metric.CreateMetric(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, testutil.Date(2024, 3, 1), metric.Month)

	logs := f.auditLog(t)
	require.Len(t, logs, 1)
	assert.Equal(t, "Added monthly metric for March 2024", logs[0].Details)

	t.Run("same month again", func(t *testing.T) {
		dup := *input
		dup.Month = testutil.Date(2024, 3, 31)

		_, err := f.metric.CreateMetric(ctx, &dup)
		require.True(t, apperror.IsValidation(err))
		assert.Equal(t, []string{DuplicateMonthMessage}, apperror.GetAppError(err).FieldMessages()["month"])
		assert.Len(t, f.auditLog(t), 1)
	})
}

func TestMetricService_ListMetrics(t *testing.T) {
	f := newFixture(t)

	testutil.CreateMetric(t, f.db, testutil.Date(2024, 1, 1), 2, "400000.00", "300000.00")
	testutil.CreateMetric(t, f.db, testutil.Date(2024, 3, 1), 6, "600000.00", "350000.00")
	testutil.CreateMetric(t, f.db, testutil.Date(2024, 2, 1), 4, "500000.00", "300000.00")

	overview, err := f.metric.ListMetrics(context.Background())
	require.NoError(t, err)

	require.Len(t, overview.Metrics, 3)
	assert.Equal(t, testutil.Date(2024, 3, 1), overview.Metrics[0].Month.UTC())
	assert.True(t, decimal.RequireFromString("250000").Equal(overview.Metrics[0].Profit))
	assert.InDelta(t, 41.67, overview.Metrics[0].ProfitMargin, 0.01)

	assert.True(t, decimal.RequireFromString("1500000").Equal(overview.TotalRevenue))
	assert.True(t, decimal.RequireFromString("550000").Equal(overview.TotalProfit))
	assert.Equal(t, int64(12), overview.TotalClients)

	// March over February
	assert.Equal(t, 20.0, overview.RevenueGrowth)
	assert.Equal(t, 25.0, overview.ProfitGrowth)
	assert.Equal(t, 50.0, overview.ClientsGrowth)
}

func TestMetricService_ListMetricsEmpty(t *testing.T) {
	f := newFixture(t)

	overview, err := f.metric.ListMetrics(context.Background())
	require.NoError(t, err)
	assert.Empty(t, overview.Metrics)
	assert.True(t, overview.TotalRevenue.IsZero())
	assert.Zero(t, overview.RevenueGrowth)
}
