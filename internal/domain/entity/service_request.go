package entity

import (
	"time"

	"github.com/sangkips/solarpower/internal/domain/enum"
)

// ServiceRequest is a lead submitted through the public contact form
type ServiceRequest struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	Name        string              `gorm:"size:100;not null" json:"name"`
	Email       string              `gorm:"size:254;not null" json:"email"`
	Phone       string              `gorm:"size:20;not null" json:"phone"`
	Service     enum.RequestService `gorm:"size:3;not null" json:"service"`
	Message     string              `gorm:"type:text;not null" json:"message"`
	SubmittedAt time.Time           `gorm:"not null;index" json:"submitted_at"`
	IsCompleted bool                `gorm:"not null;default:false;index" json:"is_completed"`
}

// TableName returns the table name for the ServiceRequest model
func (ServiceRequest) TableName() string {
	return "service_requests"
}

func (r *ServiceRequest) String() string {
	return r.Name + " - " + r.Service.Label()
}
