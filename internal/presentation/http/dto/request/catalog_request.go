package request

import (
	"strings"

	"github.com/sangkips/solarpower/internal/application/service"
	"github.com/sangkips/solarpower/internal/domain/entity"
	"github.com/sangkips/solarpower/internal/domain/enum"
	"github.com/sangkips/solarpower/pkg/validation"
)

// ServiceForm represents the back-office service edit form
type ServiceForm struct {
	Title            string           `form:"title" validate:"required,max=100"`
	Slug             string           `form:"slug" validate:"required,max=50,slug"`
	ServiceType      enum.ServiceType `form:"service_type" validate:"required,choice"`
	Description      string           `form:"description" validate:"required"`
	ValueProposition string           `form:"value_proposition" validate:"required"`
	IconClass        string           `form:"icon_class" validate:"max=30"`
	DisplayOrder     string           `form:"display_order"`
}

// NewServiceForm fills the form from a stored service
func NewServiceForm(s *entity.Service) *ServiceForm {
	return &ServiceForm{
		Title:            s.Title,
		Slug:             s.Slug,
		ServiceType:      s.ServiceType,
		Description:      s.Description,
		ValueProposition: s.ValueProposition,
		IconClass:        s.IconClass,
		DisplayOrder:     itoa(s.DisplayOrder),
	}
}

// Parse validates the form. The image, if any, is attached by the handler.
func (f *ServiceForm) Parse(v *validation.Validator, actor service.Actor, currentSlug string) (*service.UpdateServiceInput, error) {
	f.Title = strings.TrimSpace(f.Title)
	f.Slug = strings.TrimSpace(f.Slug)
	f.IconClass = strings.TrimSpace(f.IconClass)
	if strings.TrimSpace(f.DisplayOrder) == "" {
		f.DisplayOrder = "0"
	}

	var errs fieldErrors = v.Struct(f)
	displayOrder := errs.parseInt("display_order", f.DisplayOrder)
	if err := errs.err(); err != nil {
		return nil, err
	}

	iconClass := f.IconClass
	if iconClass == "" {
		iconClass = entity.DefaultIconClass
	}

	return &service.UpdateServiceInput{
		Actor:            actor,
		CurrentSlug:      currentSlug,
		Slug:             f.Slug,
		ServiceType:      f.ServiceType,
		Title:            f.Title,
		Description:      f.Description,
		ValueProposition: f.ValueProposition,
		IconClass:        iconClass,
		DisplayOrder:     displayOrder,
	}, nil
}

// CaseStudyForm represents the back-office case study form
type CaseStudyForm struct {
	Title               string          `form:"title" validate:"required,max=200"`
	ClientName          string          `form:"client_name" validate:"max=100"`
	ClientType          enum.ClientType `form:"client_type" validate:"required,choice"`
	Location            string          `form:"location" validate:"required,max=100"`
	InstallationDate    string          `form:"installation_date" validate:"required"`
	SystemCapacity      string          `form:"system_capacity" validate:"required"`
	ProjectCost         string          `form:"project_cost" validate:"required"`
	PreviousConsumption string          `form:"previous_consumption"`
	CurrentConsumption  string          `form:"current_consumption"`
	Testimonial         string          `form:"testimonial"`
	ServiceID           string          `form:"service" validate:"required"`
}

// NewCaseStudyForm fills the form from a stored case study
func NewCaseStudyForm(c *entity.CaseStudy) *CaseStudyForm {
	f := &CaseStudyForm{
		Title:            c.Title,
		ClientName:       c.ClientName,
		ClientType:       c.ClientType,
		Location:         c.Location,
		InstallationDate: c.InstallationDate.Format(dateLayout),
		SystemCapacity:   c.SystemCapacity.StringFixed(2),
		ProjectCost:      c.ProjectCost.StringFixed(2),
		Testimonial:      c.Testimonial,
		ServiceID:        utoa(c.ServiceID),
	}
	if c.PreviousConsumption != nil {
		f.PreviousConsumption = itoa(*c.PreviousConsumption)
	}
	if c.CurrentConsumption != nil {
		f.CurrentConsumption = itoa(*c.CurrentConsumption)
	}
	return f
}

// Parse validates the form. The featured image, if any, is attached by the handler.
func (f *CaseStudyForm) Parse(v *validation.Validator, actor service.Actor) (*service.CaseStudyInput, error) {
	f.Title = strings.TrimSpace(f.Title)
	f.ClientName = strings.TrimSpace(f.ClientName)
	f.Location = strings.TrimSpace(f.Location)

	var errs fieldErrors = v.Struct(f)
	input := &service.CaseStudyInput{
		Actor:               actor,
		Title:               f.Title,
		ClientName:          f.ClientName,
		ClientType:          f.ClientType,
		Location:            f.Location,
		InstallationDate:    errs.parseDate("installation_date", f.InstallationDate),
		SystemCapacity:      errs.parseDecimal("system_capacity", f.SystemCapacity, 6, 2),
		ProjectCost:         errs.parseDecimal("project_cost", f.ProjectCost, 10, 2),
		PreviousConsumption: errs.parseOptionalInt("previous_consumption", f.PreviousConsumption),
		CurrentConsumption:  errs.parseOptionalInt("current_consumption", f.CurrentConsumption),
		Testimonial:         f.Testimonial,
		ServiceID:           errs.parseID("service", f.ServiceID),
	}
	if !errs.has("project_cost") && input.ProjectCost.IsNegative() {
		errs.add("project_cost", "Ensure this value is greater than or equal to 0.")
	}
	if err := errs.err(); err != nil {
		return nil, err
	}
	return input, nil
}
