package request

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sangkips/solarpower/pkg/apperror"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// fieldErrors collects per-field messages while a form is parsed
type fieldErrors []apperror.FieldError

func (fe *fieldErrors) add(field, message string) {
	*fe = append(*fe, apperror.FieldError{Field: field, Message: message})
}

func (fe fieldErrors) has(field string) bool {
	for _, e := range fe {
		if e.Field == field {
			return true
		}
	}
	return false
}

func (fe fieldErrors) err() error {
	if len(fe) == 0 {
		return nil
	}
	return apperror.NewValidationError(fe)
}

// parseDecimal parses a numeric(digits, places) value
func (fe *fieldErrors) parseDecimal(field, raw string, digits, places int32) decimal.Decimal {
	if fe.has(field) {
		return decimal.Zero
	}
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		fe.add(field, "Enter a number.")
		return decimal.Zero
	}
	if !value.Equal(value.Truncate(places)) {
		fe.add(field, fmt.Sprintf("Ensure that there are no more than %d decimal places.", places))
		return decimal.Zero
	}
	limit := decimal.New(1, digits-places)
	if value.Abs().GreaterThanOrEqual(limit) {
		fe.add(field, fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", digits-places))
		return decimal.Zero
	}
	return value.Round(places)
}

func (fe *fieldErrors) parseDate(field, raw string) time.Time {
	if fe.has(field) {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		fe.add(field, "Enter a valid date.")
		return time.Time{}
	}
	return t
}

func (fe *fieldErrors) parseInt(field, raw string) int {
	if fe.has(field) {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		fe.add(field, "Enter a whole number.")
		return 0
	}
	if n < 0 {
		fe.add(field, "Ensure this value is greater than or equal to 0.")
		return 0
	}
	return n
}

// parseOptionalInt returns nil for a blank value
func (fe *fieldErrors) parseOptionalInt(field, raw string) *int {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	n := fe.parseInt(field, raw)
	if fe.has(field) {
		return nil
	}
	return &n
}

func (fe *fieldErrors) parseID(field, raw string) uint {
	if fe.has(field) {
		return 0
	}
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		fe.add(field, "Select a valid choice. That choice is not one of the available choices.")
		return 0
	}
	return uint(id)
}
