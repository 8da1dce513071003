package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sangkips/solarpower/internal/domain/entity"
	domainRepo "github.com/sangkips/solarpower/internal/domain/repository"
	"gorm.io/gorm"
)

type staffUserRepository struct {
	db *gorm.DB
}

// NewStaffUserRepository creates a new staff user repository
func NewStaffUserRepository(db *gorm.DB) domainRepo.StaffUserRepository {
	return &staffUserRepository{db: db}
}

func (r *staffUserRepository) Create(ctx context.Context, user *entity.StaffUser) error {
	return translateError(conn(ctx, r.db).Create(user).Error)
}

func (r *staffUserRepository) GetByID(ctx context.Context, id uint) (*entity.StaffUser, error) {
	var user entity.StaffUser
	err := conn(ctx, r.db).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *staffUserRepository) GetByUsername(ctx context.Context, username string) (*entity.StaffUser, error) {
	var user entity.StaffUser
	err := conn(ctx, r.db).First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *staffUserRepository) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	return conn(ctx, r.db).Model(&entity.StaffUser{}).
		Where("id = ?", id).
		Update("last_login_at", at).Error
}
