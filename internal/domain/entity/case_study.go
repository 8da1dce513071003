package entity

import (
	"time"

	"github.com/sangkips/solarpower/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// CaseStudy is a published record of a completed client installation
type CaseStudy struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	Title               string          `gorm:"size:200;not null" json:"title"`
	ClientName          string          `gorm:"size:100" json:"client_name,omitempty"`
	ClientType          enum.ClientType `gorm:"size:3;not null;index" json:"client_type"`
	Location            string          `gorm:"size:100;not null" json:"location"`
	InstallationDate    time.Time       `gorm:"type:date;not null;index" json:"installation_date"`
	SystemCapacity      decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"system_capacity"`
	ProjectCost         decimal.Decimal `gorm:"type:decimal(10,2);not null;check:project_cost >= 0" json:"project_cost"`
	PreviousConsumption *int            `gorm:"check:previous_consumption >= 0" json:"previous_consumption"`
	CurrentConsumption  *int            `gorm:"check:current_consumption >= 0" json:"current_consumption"`
	Testimonial         string          `gorm:"type:text" json:"testimonial,omitempty"`
	FeaturedImage       string          `gorm:"size:255" json:"featured_image,omitempty"`
	ServiceID           uint            `gorm:"not null;index" json:"service_id"`

	// Relationships
	Service *Service `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE" json:"service,omitempty"`
}

// TableName returns the table name for the CaseStudy model
func (CaseStudy) TableName() string {
	return "case_studies"
}

// EnergySavings returns the monthly kWh saved, or 0 when either reading is missing
func (c *CaseStudy) EnergySavings() int {
	if c.PreviousConsumption == nil || c.CurrentConsumption == nil {
		return 0
	}
	return *c.PreviousConsumption - *c.CurrentConsumption
}

// SavingsPercentage returns the savings as a percentage of the previous consumption
func (c *CaseStudy) SavingsPercentage() float64 {
	if c.PreviousConsumption == nil || *c.PreviousConsumption == 0 {
		return 0
	}
	return float64(c.EnergySavings()) / float64(*c.PreviousConsumption) * 100
}
