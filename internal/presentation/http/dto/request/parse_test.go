package request

import (
	"testing"
	"time"

	"github.com/sangkips/solarpower/internal/application/service"
	"github.com/sangkips/solarpower/pkg/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr string
	}{
		{"1234.5", "1234.5", ""},
		{" 9999.99 ", "9999.99", ""},
		{"10000", "", "Ensure that there are no more than 4 digits before the decimal point."},
		{"1.234", "", "Ensure that there are no more than 2 decimal places."},
		{"abc", "", "Enter a number."},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var errs fieldErrors
			got := errs.parseDecimal("system_capacity", tt.raw, 6, 2)
			if tt.wantErr != "" {
				require.Len(t, errs, 1)
				assert.Equal(t, tt.wantErr, errs[0].Message)
				return
			}
			assert.Empty(t, errs)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), got.String())
		})
	}
}

func TestParseOptionalInt(t *testing.T) {
	var errs fieldErrors

	assert.Nil(t, errs.parseOptionalInt("previous_consumption", "  "))
	assert.Equal(t, 850, *errs.parseOptionalInt("previous_consumption", "850"))
	assert.Nil(t, errs.parseOptionalInt("current_consumption", "-1"))
	assert.True(t, errs.has("current_consumption"))
}

func TestMetricFormMonthFormats(t *testing.T) {
	v := validation.New()
	want := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	for _, month := range []string{"2024-02", "2024-02-01", "2024-02-29"} {
		form := MetricForm{Month: month, NewClients: "4", Revenue: "120000", Expenses: "80000.50"}
		input, err := form.Parse(v, service.Actor{Username: "admin"})
		require.NoError(t, err, month)
		assert.Equal(t, want, input.Month, month)
	}

	form := MetricForm{Month: "Feb 2024", NewClients: "4", Revenue: "1", Expenses: "1"}
	_, err := form.Parse(v, service.Actor{})
	assert.Contains(t, fieldMessages(t, err), "month")
}

func TestCaseStudyFormRejectsNegativeCostAndBadService(t *testing.T) {
	form := CaseStudyForm{
		Title:            "Rooftop array",
		ClientType:       "RES",
		Location:         "Nairobi",
		InstallationDate: "2024-05-10",
		SystemCapacity:   "5.50",
		ProjectCost:      "-1",
		ServiceID:        "abc",
	}

	_, err := form.Parse(validation.New(), service.Actor{})

	errs := fieldMessages(t, err)
	assert.Equal(t, []string{"Ensure this value is greater than or equal to 0."}, errs["project_cost"])
	assert.Equal(t, []string{"Select a valid choice. That choice is not one of the available choices."}, errs["service"])
}

func TestSafeNext(t *testing.T) {
	assert.Equal(t, "/adm/projects/", (&LoginForm{Next: "/adm/projects/"}).SafeNext("/adm/dashboard/"))
	assert.Equal(t, "/adm/dashboard/", (&LoginForm{Next: "https://evil.example/adm/"}).SafeNext("/adm/dashboard/"))
	assert.Equal(t, "/adm/dashboard/", (&LoginForm{Next: "//evil.example/adm/"}).SafeNext("/adm/dashboard/"))
	assert.Equal(t, "/adm/dashboard/", (&LoginForm{}).SafeNext("/adm/dashboard/"))
}
