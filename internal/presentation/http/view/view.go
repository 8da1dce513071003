package view

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sangkips/solarpower/internal/domain/enum"
	"github.com/sangkips/solarpower/web"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Funcs returns the helpers available to every template
func Funcs() template.FuncMap {
	return template.FuncMap{
		"money":           formatMoney,
		"number":          formatNumber,
		"percent":         func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
		"date":            func(t time.Time) string { return t.Format("Jan 2, 2006") },
		"datetime":        func(t time.Time) string { return t.Format("Jan 2, 2006 15:04") },
		"monthYear":       func(t time.Time) string { return t.Format("January 2006") },
		"ago":             humanize.Time,
		"json":            toJSON,
		"join":            strings.Join,
		"add":             func(a, b int) int { return a + b },
		"requestServices": enum.RequestServices,
		"serviceTypes":    enum.ServiceTypes,
		"clientTypes":     enum.ClientTypes,
		"reading":         formatReading,
		"errorsFor":       errorsFor,
		"str":             cast.ToString,
		"year":            func() int { return time.Now().Year() },
	}
}

// Load parses the embedded templates
func Load() (*template.Template, error) {
	t, err := template.New("").Funcs(Funcs()).ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return t, nil
}

func formatMoney(val interface{}) string {
	var amount float64
	switch v := val.(type) {
	case decimal.Decimal:
		amount = v.InexactFloat64()
	case *decimal.Decimal:
		if v != nil {
			amount = v.InexactFloat64()
		}
	default:
		amount = cast.ToFloat64(val)
	}
	return humanize.FormatFloat("#,###.##", amount)
}

func formatNumber(val interface{}) string {
	switch v := val.(type) {
	case decimal.Decimal:
		return humanize.Commaf(v.InexactFloat64())
	default:
		return humanize.Comma(cast.ToInt64(val))
	}
}

// formatReading renders an optional kWh reading
func formatReading(p *int) string {
	if p == nil {
		return "-"
	}
	return humanize.Comma(int64(*p))
}

// errorsFor returns the messages of one form field. errs may be nil.
func errorsFor(errs map[string][]string, field string) []string {
	return errs[field]
}

// toJSON embeds v in a script block. Marshal failures render as null.
func toJSON(v interface{}) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return template.JS("null")
	}
	return template.JS(b)
}
