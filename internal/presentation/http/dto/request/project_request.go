package request

import (
	"strconv"
	"strings"
	"time"

	"github.com/sangkips/solarpower/internal/application/service"
	"github.com/sangkips/solarpower/internal/domain/entity"
	"github.com/sangkips/solarpower/pkg/validation"
)

// ProjectForm represents the installation project form
type ProjectForm struct {
	ClientName     string `form:"client_name" validate:"required,max=100"`
	CompletionDate string `form:"completion_date" validate:"required"`
	SystemSizeKW   string `form:"system_size_kw" validate:"required"`
	TotalCost      string `form:"total_cost" validate:"required"`
	Profit         string `form:"profit" validate:"required"`
	ServiceID      string `form:"service" validate:"required"`
}

// NewProjectForm fills the form from a stored project
func NewProjectForm(p *entity.InstallationProject) *ProjectForm {
	return &ProjectForm{
		ClientName:     p.ClientName,
		CompletionDate: p.CompletionDate.Format(dateLayout),
		SystemSizeKW:   p.SystemSizeKW.StringFixed(2),
		TotalCost:      p.TotalCost.StringFixed(2),
		Profit:         p.Profit.StringFixed(2),
		ServiceID:      utoa(p.ServiceID),
	}
}

// Parse validates the form and returns the service input
func (f *ProjectForm) Parse(v *validation.Validator, actor service.Actor) (*service.ProjectInput, error) {
	f.ClientName = strings.TrimSpace(f.ClientName)

	var errs fieldErrors = v.Struct(f)
	input := &service.ProjectInput{
		Actor:          actor,
		ClientName:     f.ClientName,
		CompletionDate: errs.parseDate("completion_date", f.CompletionDate),
		SystemSizeKW:   errs.parseDecimal("system_size_kw", f.SystemSizeKW, 6, 2),
		TotalCost:      errs.parseDecimal("total_cost", f.TotalCost, 10, 2),
		Profit:         errs.parseDecimal("profit", f.Profit, 10, 2),
		ServiceID:      errs.parseID("service", f.ServiceID),
	}
	if err := errs.err(); err != nil {
		return nil, err
	}
	return input, nil
}

// MetricForm represents the monthly metric form
type MetricForm struct {
	Month      string `form:"month" validate:"required"`
	NewClients string `form:"new_clients" validate:"required"`
	Revenue    string `form:"revenue" validate:"required"`
	Expenses   string `form:"expenses" validate:"required"`
}

// Parse validates the form and returns the service input.
// Month accepts YYYY-MM or YYYY-MM-DD.
func (f *MetricForm) Parse(v *validation.Validator, actor service.Actor) (*service.CreateMetricInput, error) {
	var errs fieldErrors = v.Struct(f)
	input := &service.CreateMetricInput{
		Actor:      actor,
		Month:      errs.parseMonth("month", f.Month),
		NewClients: errs.parseInt("new_clients", f.NewClients),
		Revenue:    errs.parseDecimal("revenue", f.Revenue, 12, 2),
		Expenses:   errs.parseDecimal("expenses", f.Expenses, 12, 2),
	}
	if err := errs.err(); err != nil {
		return nil, err
	}
	return input, nil
}

func (fe *fieldErrors) parseMonth(field, raw string) time.Time {
	if fe.has(field) {
		return time.Time{}
	}
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse("2006-01", raw); err == nil {
		return entity.FirstOfMonth(t)
	}
	return entity.FirstOfMonth(fe.parseDate(field, raw))
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func utoa(n uint) string {
	return strconv.FormatUint(uint64(n), 10)
}
