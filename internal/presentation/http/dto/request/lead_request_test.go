package request

import (
	"strings"
	"testing"

	"github.com/sangkips/solarpower/internal/domain/enum"
	"github.com/sangkips/solarpower/pkg/apperror"
	"github.com/sangkips/solarpower/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLead() LeadForm {
	return LeadForm{
		Name:    "Jane Wanjiku",
		Email:   "jane@example.com",
		Phone:   "0712345678",
		Service: enum.RequestService(enum.ServiceTypeInstallation),
		Message: "Need a quote for a 5kW rooftop system.",
	}
}

func fieldMessages(t *testing.T, err error) map[string][]string {
	t.Helper()
	require.Error(t, err)
	require.True(t, apperror.IsValidation(err))
	return apperror.GetAppError(err).FieldMessages()
}

func TestLeadFormAcceptsValidInput(t *testing.T) {
	form := validLead()
	form.Name = "  Jane Wanjiku  "

	input, err := form.Parse(validation.New())

	require.NoError(t, err)
	assert.Equal(t, "Jane Wanjiku", input.Name)
	assert.Equal(t, enum.RequestService(enum.ServiceTypeInstallation), input.Service)
}

func TestLeadFormLengthBoundaries(t *testing.T) {
	v := validation.New()

	form := validLead()
	form.Name = "Jo"
	form.Message = "Hello"
	_, err := form.Parse(v)
	assert.NoError(t, err, "two character name and five character message are accepted")

	form = validLead()
	form.Name = " J "
	form.Message = "Hi  "
	errs := fieldMessages(t, func() error { _, err := form.Parse(v); return err }())
	assert.Equal(t, []string{"Name must be at least 2 characters long"}, errs["name"])
	assert.Equal(t, []string{"Please provide more details in your message"}, errs["message"])

	form = validLead()
	form.Name = strings.Repeat("a", 101)
	errs = fieldMessages(t, func() error { _, err := form.Parse(v); return err }())
	assert.Contains(t, errs, "name")
}

func TestLeadFormRejectsBadContactDetails(t *testing.T) {
	form := validLead()
	form.Email = "not-an-email"
	form.Phone = "0812345678"
	form.Service = "XYZ"

	_, err := form.Parse(validation.New())

	errs := fieldMessages(t, err)
	assert.Equal(t, []string{"Enter a valid email address."}, errs["email"])
	assert.Equal(t, []string{validation.KenyanPhoneMessage}, errs["phone"])
	assert.Contains(t, errs, "service")
}

func TestLeadFormRequiresEveryField(t *testing.T) {
	form := LeadForm{}

	_, err := form.Parse(validation.New())

	errs := fieldMessages(t, err)
	for _, field := range []string{"name", "email", "phone", "service", "message"} {
		assert.Equal(t, []string{"This field is required."}, errs[field], field)
	}
}

func TestLeadFormAcceptsOtherService(t *testing.T) {
	form := validLead()
	form.Service = enum.RequestServiceOther
	form.Phone = "+254712345678"

	_, err := form.Parse(validation.New())

	assert.NoError(t, err)
}
