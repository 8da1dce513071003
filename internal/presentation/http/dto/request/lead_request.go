package request

import (
	"strings"

	"github.com/sangkips/solarpower/internal/application/service"
	"github.com/sangkips/solarpower/internal/domain/enum"
	"github.com/sangkips/solarpower/pkg/validation"
)

// LeadForm represents the public service request form
type LeadForm struct {
	Name    string              `form:"name" validate:"required,min=2,max=100"`
	Email   string              `form:"email" validate:"required,email,max=254"`
	Phone   string              `form:"phone" validate:"required,max=20,kephone"`
	Service enum.RequestService `form:"service" validate:"required,choice"`
	Message string              `form:"message" validate:"required,min=5"`
}

// ValidationMessages replaces the generic length messages for name and message
func (f *LeadForm) ValidationMessages() map[string]string {
	return map[string]string{
		"name.required":    "This field is required.",
		"name.min":         "Name must be at least 2 characters long",
		"message.required": "This field is required.",
		"message.min":      "Please provide more details in your message",
	}
}

// Normalize trims surrounding whitespace before validation
func (f *LeadForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Message = strings.TrimSpace(f.Message)
}

// Parse validates the form and returns the service input
func (f *LeadForm) Parse(v *validation.Validator) (*service.SubmitLeadInput, error) {
	f.Normalize()

	var errs fieldErrors = v.Struct(f)
	if err := errs.err(); err != nil {
		return nil, err
	}

	return &service.SubmitLeadInput{
		Name:    f.Name,
		Email:   f.Email,
		Phone:   f.Phone,
		Service: f.Service,
		Message: f.Message,
	}, nil
}
