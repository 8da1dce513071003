package entity

import "time"

// StaffUser is a back-office account allowed to manage site content
type StaffUser struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Username    string     `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Email       string     `gorm:"size:254" json:"email"`
	Password    string     `gorm:"size:255;not null" json:"-"`
	IsActive    bool       `gorm:"not null" json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName returns the table name for the StaffUser model
func (StaffUser) TableName() string {
	return "staff_users"
}
