package entity

import (
	"time"

	"github.com/sangkips/solarpower/internal/domain/enum"
)

// AdminLog is an append-only record of a staff action
type AdminLog struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	AdminUser string           `gorm:"size:100;not null" json:"admin_user"`
	Action    enum.AdminAction `gorm:"size:6;not null" json:"action"`
	Details   string           `gorm:"type:text;not null" json:"details"`
	Timestamp time.Time        `gorm:"autoCreateTime;not null;index" json:"timestamp"`
	IPAddress *string          `gorm:"size:45" json:"ip_address,omitempty"`
}

// TableName returns the table name for the AdminLog model
func (AdminLog) TableName() string {
	return "admin_logs"
}
