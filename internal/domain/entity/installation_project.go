package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallationProject is the internal financial record of a completed install
type InstallationProject struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	ClientName     string          `gorm:"size:100;not null" json:"client_name"`
	CompletionDate time.Time       `gorm:"type:date;not null;index" json:"completion_date"`
	SystemSizeKW   decimal.Decimal `gorm:"column:system_size_kw;type:decimal(6,2);not null" json:"system_size_kw"`
	TotalCost      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_cost"`
	Profit         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"profit"`
	ServiceID      uint            `gorm:"not null;index" json:"service_id"`
	CreatedAt      time.Time       `json:"created_at"`

	// Relationships
	Service *Service `gorm:"foreignKey:ServiceID;constraint:OnDelete:RESTRICT" json:"service,omitempty"`
}

// TableName returns the table name for the InstallationProject model
func (InstallationProject) TableName() string {
	return "installation_projects"
}

// Year returns the calendar year the project was completed in
func (p *InstallationProject) Year() int {
	return p.CompletionDate.Year()
}
