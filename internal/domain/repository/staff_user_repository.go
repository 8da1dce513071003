package repository

import (
	"context"
	"time"

	"github.com/sangkips/solarpower/internal/domain/entity"
)

// StaffUserRepository defines the interface for staff account data operations
type StaffUserRepository interface {
	Create(ctx context.Context, user *entity.StaffUser) error
	GetByID(ctx context.Context, id uint) (*entity.StaffUser, error)
	GetByUsername(ctx context.Context, username string) (*entity.StaffUser, error)
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
}
