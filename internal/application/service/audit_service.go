package service

import (
	"context"
	"fmt"

	"github.com/sangkips/solarpower/internal/domain/entity"
	"github.com/sangkips/solarpower/internal/domain/enum"
	"github.com/sangkips/solarpower/internal/domain/repository"
	"github.com/sangkips/solarpower/pkg/pagination"
)

// Actor identifies the staff member performing a back-office action
type Actor struct {
	Username string
	IP       string
}

// AuditService writes and reads the admin audit log
type AuditService struct {
	logRepo repository.AdminLogRepository
}

// NewAuditService creates a new audit service
func NewAuditService(logRepo repository.AdminLogRepository) *AuditService {
	return &AuditService{logRepo: logRepo}
}

// Record appends an audit entry. Callers pass the ctx of their open
// transaction so the entry commits or rolls back with the mutation.
func (s *AuditService) Record(ctx context.Context, actor Actor, action enum.AdminAction, details string) error {
	entry := &entity.AdminLog{
		AdminUser: actor.Username,
		Action:    action,
		Details:   details,
	}
	if actor.IP != "" {
		ip := actor.IP
		entry.IPAddress = &ip
	}

	if err := s.logRepo.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to write audit entry: %w", err)
	}
	return nil
}

// Recent returns the newest audit entries
func (s *AuditService) Recent(ctx context.Context, limit int) ([]entity.AdminLog, error) {
	return s.logRepo.ListRecent(ctx, limit)
}

// List returns one page of audit entries, newest first
func (s *AuditService) List(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.AdminLog], error) {
	params.Validate()

	logs, total, err := s.logRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(logs, pag), nil
}
