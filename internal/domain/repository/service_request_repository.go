package repository

import (
	"context"
	"time"

	"github.com/sangkips/solarpower/internal/domain/entity"
)

// ServiceRequestRepository defines the interface for lead data operations
type ServiceRequestRepository interface {
	Create(ctx context.Context, request *entity.ServiceRequest) error
	GetByID(ctx context.Context, id uint) (*entity.ServiceRequest, error)
	// List returns all requests, newest submission first
	List(ctx context.Context) ([]entity.ServiceRequest, error)
	ListRecent(ctx context.Context, limit int) ([]entity.ServiceRequest, error)
	// MarkCompleted flips is_completed from false to true and reports whether a row changed
	MarkCompleted(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountPending(ctx context.Context) (int64, error)
	// CountCompletedSubmittedBetween counts completed requests with from <= submitted_at < to
	CountCompletedSubmittedBetween(ctx context.Context, from, to time.Time) (int64, error)
}
