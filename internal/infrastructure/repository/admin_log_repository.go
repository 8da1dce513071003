package repository

import (
	"context"

	"github.com/sangkips/solarpower/internal/domain/entity"
	domainRepo "github.com/sangkips/solarpower/internal/domain/repository"
	"github.com/sangkips/solarpower/pkg/pagination"
	"gorm.io/gorm"
)

type adminLogRepository struct {
	db *gorm.DB
}

// NewAdminLogRepository creates a new audit log repository
func NewAdminLogRepository(db *gorm.DB) domainRepo.AdminLogRepository {
	return &adminLogRepository{db: db}
}

func (r *adminLogRepository) Create(ctx context.Context, log *entity.AdminLog) error {
	return conn(ctx, r.db).Create(log).Error
}

func (r *adminLogRepository) ListRecent(ctx context.Context, limit int) ([]entity.AdminLog, error) {
	var logs []entity.AdminLog
	err := conn(ctx, r.db).Order("timestamp DESC, id DESC").Limit(limit).Find(&logs).Error
	return logs, err
}

func (r *adminLogRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.AdminLog, int64, error) {
	var logs []entity.AdminLog
	var total int64

	query := conn(ctx, r.db).Model(&entity.AdminLog{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("timestamp DESC, id DESC").
		Find(&logs).Error

	return logs, total, err
}
