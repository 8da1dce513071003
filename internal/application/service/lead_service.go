package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sangkips/solarpower/internal/domain/entity"
	"github.com/sangkips/solarpower/internal/domain/enum"
	"github.com/sangkips/solarpower/internal/domain/repository"
	"github.com/sangkips/solarpower/pkg/apperror"
	"github.com/sangkips/solarpower/pkg/email"
)

// LeadNotifier delivers new lead notifications to staff
type LeadNotifier interface {
	SendLeadNotification(toEmail string, lead email.LeadDetails) error
}

// LeadService handles service requests submitted by visitors and their triage
type LeadService struct {
	requestRepo repository.ServiceRequestRepository
	transactor  repository.Transactor
	audit       *AuditService
	notifier    LeadNotifier
	notifyEmail string
}

// NewLeadService creates a new lead service. notifier may be nil, in which
// case no notification is sent.
func NewLeadService(
	requestRepo repository.ServiceRequestRepository,
	transactor repository.Transactor,
	audit *AuditService,
	notifier LeadNotifier,
	notifyEmail string,
) *LeadService {
	return &LeadService{
		requestRepo: requestRepo,
		transactor:  transactor,
		audit:       audit,
		notifier:    notifier,
		notifyEmail: notifyEmail,
	}
}

// SubmitLeadInput represents a validated lead form
type SubmitLeadInput struct {
	Name    string
	Email   string
	Phone   string
	Service enum.RequestService
	Message string
}

// Submit stores a new service request. The staff notification is best effort.
func (s *LeadService) Submit(ctx context.Context, input *SubmitLeadInput) (*entity.ServiceRequest, error) {
	request := &entity.ServiceRequest{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Service:     input.Service,
		Message:     input.Message,
		SubmittedAt: time.Now().UTC(),
		IsCompleted: false,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to save service request: %w", err)
	}

	s.notify(request)

	return request, nil
}

func (s *LeadService) notify(request *entity.ServiceRequest) {
	if s.notifier == nil || s.notifyEmail == "" {
		return
	}

	err := s.notifier.SendLeadNotification(s.notifyEmail, email.LeadDetails{
		ID:          request.ID,
		Name:        request.Name,
		Email:       request.Email,
		Phone:       request.Phone,
		Service:     request.Service.Label(),
		Message:     request.Message,
		SubmittedAt: request.SubmittedAt,
	})
	if err != nil && !errors.Is(err, email.ErrNotConfigured) {
		slog.Warn("Failed to send lead notification", "request_id", request.ID, "error", err)
	}
}

// ListRequests returns every service request, newest submission first
func (s *LeadService) ListRequests(ctx context.Context) ([]entity.ServiceRequest, error) {
	return s.requestRepo.List(ctx)
}

// MarkCompleted marks a request as completed and records it in the audit log.
// A request that is already completed is left untouched and nothing is logged.
func (s *LeadService) MarkCompleted(ctx context.Context, actor Actor, id uint) (*entity.ServiceRequest, error) {
	var request *entity.ServiceRequest

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		request, err = s.requestRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if request == nil {
			return apperror.NewNotFoundError("Service request")
		}

		changed, err := s.requestRepo.MarkCompleted(ctx, id)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		request.IsCompleted = true

		return s.audit.Record(ctx, actor, enum.AdminActionEdit, "Marked request as completed: "+request.String())
	})
	if err != nil {
		return nil, err
	}

	return request, nil
}
