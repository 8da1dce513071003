package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sangkips/solarpower/pkg/apperror"
	"github.com/sangkips/solarpower/pkg/utils"
)

// KenyanPhonePattern accepts 07XXXXXXXX, 01XXXXXXXX and +254XXXXXXXXX
var KenyanPhonePattern = regexp.MustCompile(`^(07\d{8}|01\d{8}|\+254\d{9})$`)

// KenyanPhoneMessage is reported when a phone number does not match KenyanPhonePattern
const KenyanPhoneMessage = "Enter a valid Kenyan phone number (e.g. 07XXXXXXXX, 01XXXXXXXX, or +254XXXXXXXXX)"

// Choice is implemented by the closed string enums accepted by the "choice" tag
type Choice interface {
	Valid() bool
}

// MessageOverrider lets a form replace the default message for a field and tag.
// Keys have the form "<field>.<tag>", using the form field name.
type MessageOverrider interface {
	ValidationMessages() map[string]string
}

// Validator wraps validator/v10 with the custom tags used by the site forms
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with the kephone, slug and choice tags registered
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	_ = v.RegisterValidation("kephone", func(fl validator.FieldLevel) bool {
		return IsKenyanPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return utils.IsSlug(fl.Field().String())
	})
	_ = v.RegisterValidation("choice", func(fl validator.FieldLevel) bool {
		choice, ok := fl.Field().Interface().(Choice)
		return ok && choice.Valid()
	})

	return &Validator{validate: v}
}

// IsKenyanPhone reports whether phone is in one of the accepted Kenyan formats
func IsKenyanPhone(phone string) bool {
	return KenyanPhonePattern.MatchString(phone)
}

// Struct validates s and returns one FieldError per failing field, in field order
func (v *Validator) Struct(s interface{}) []apperror.FieldError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []apperror.FieldError{{Field: "__all__", Message: err.Error()}}
	}

	var overrides map[string]string
	if o, ok := s.(MessageOverrider); ok {
		overrides = o.ValidationMessages()
	}

	fieldErrors := make([]apperror.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		message, ok := overrides[fe.Field()+"."+fe.Tag()]
		if !ok {
			message = defaultMessage(fe)
		}
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: fe.Field(), Message: message})
	}
	return fieldErrors
}

func defaultMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "kephone":
		return KenyanPhoneMessage
	case "slug":
		return "Enter a valid slug consisting of letters, numbers, underscores or hyphens."
	case "choice", "oneof":
		return fmt.Sprintf("Select a valid choice. %v is not one of the available choices.", fe.Value())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this value has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	}
	return "Enter a valid value."
}
