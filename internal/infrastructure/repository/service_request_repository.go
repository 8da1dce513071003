package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sangkips/solarpower/internal/domain/entity"
	domainRepo "github.com/sangkips/solarpower/internal/domain/repository"
	"gorm.io/gorm"
)

type serviceRequestRepository struct {
	db *gorm.DB
}

// NewServiceRequestRepository creates a new service request repository
func NewServiceRequestRepository(db *gorm.DB) domainRepo.ServiceRequestRepository {
	return &serviceRequestRepository{db: db}
}

func (r *serviceRequestRepository) Create(ctx context.Context, request *entity.ServiceRequest) error {
	return translateError(conn(ctx, r.db).Create(request).Error)
}

func (r *serviceRequestRepository) GetByID(ctx context.Context, id uint) (*entity.ServiceRequest, error) {
	var request entity.ServiceRequest
	err := conn(ctx, r.db).First(&request, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &request, err
}

func (r *serviceRequestRepository) List(ctx context.Context) ([]entity.ServiceRequest, error) {
	var requests []entity.ServiceRequest
	err := conn(ctx, r.db).Order("submitted_at DESC, id DESC").Find(&requests).Error
	return requests, err
}

func (r *serviceRequestRepository) ListRecent(ctx context.Context, limit int) ([]entity.ServiceRequest, error) {
	var requests []entity.ServiceRequest
	err := conn(ctx, r.db).Order("submitted_at DESC, id DESC").Limit(limit).Find(&requests).Error
	return requests, err
}

// MarkCompleted uses a conditional update so two concurrent calls cannot both report a change
func (r *serviceRequestRepository) MarkCompleted(ctx context.Context, id uint) (bool, error) {
	result := conn(ctx, r.db).Model(&entity.ServiceRequest{}).
		Where("id = ? AND is_completed = ?", id, false).
		Update("is_completed", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *serviceRequestRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.ServiceRequest{}).Count(&count).Error
	return count, err
}

func (r *serviceRequestRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.ServiceRequest{}).
		Where("is_completed = ?", false).
		Count(&count).Error
	return count, err
}

func (r *serviceRequestRepository) CountCompletedSubmittedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.ServiceRequest{}).
		Where("is_completed = ? AND submitted_at >= ? AND submitted_at < ?", true, from, to).
		Count(&count).Error
	return count, err
}
