package repository

import (
	"context"

	"github.com/sangkips/solarpower/internal/domain/entity"
	"github.com/sangkips/solarpower/pkg/pagination"
)

// AdminLogRepository is append-only: entries are never updated or deleted
type AdminLogRepository interface {
	Create(ctx context.Context, log *entity.AdminLog) error
	ListRecent(ctx context.Context, limit int) ([]entity.AdminLog, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.AdminLog, int64, error)
}
