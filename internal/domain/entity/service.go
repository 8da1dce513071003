package entity

import (
	"time"

	"github.com/sangkips/solarpower/internal/domain/enum"
)

// DefaultIconClass is the FontAwesome class used when a service has none
const DefaultIconClass = "fas fa-solar-panel"

// Service represents one of the signature service pillars offered on the site
type Service struct {
	ID               uint             `gorm:"primaryKey" json:"id"`
	Slug             string           `gorm:"size:50;not null;uniqueIndex" json:"slug"`
	ServiceType      enum.ServiceType `gorm:"size:3;not null;uniqueIndex" json:"service_type"`
	Title            string           `gorm:"size:100;not null" json:"title"`
	Description      string           `gorm:"type:text;not null" json:"description"`
	ValueProposition string           `gorm:"type:text;not null" json:"value_proposition"`
	Image            string           `gorm:"size:255" json:"image,omitempty"`
	IconClass        string           `gorm:"size:30;not null;default:fas fa-solar-panel" json:"icon_class"`
	DisplayOrder     int              `gorm:"not null;default:0;check:display_order >= 0" json:"display_order"`
	CreatedAt        time.Time        `json:"created_at"`
}

// TableName returns the table name for the Service model
func (Service) TableName() string {
	return "services"
}
