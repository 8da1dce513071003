package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyMetric holds the business totals for one calendar month.
// Month is always stored as the first day of that month.
type MonthlyMetric struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Month      time.Time       `gorm:"type:date;not null;uniqueIndex" json:"month"`
	NewClients int             `gorm:"not null;check:new_clients >= 0" json:"new_clients"`
	Revenue    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"revenue"`
	Expenses   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"expenses"`
}

// TableName returns the table name for the MonthlyMetric model
func (MonthlyMetric) TableName() string {
	return "monthly_metrics"
}

func (m *MonthlyMetric) Profit() decimal.Decimal {
	return m.Revenue.Sub(m.Expenses)
}

// ProfitMargin returns profit as a percentage of revenue, 0 when there was no revenue
func (m *MonthlyMetric) ProfitMargin() float64 {
	if m.Revenue.IsZero() {
		return 0
	}
	return m.Profit().Div(m.Revenue).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

// FirstOfMonth truncates t to midnight UTC on the first day of its month
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
