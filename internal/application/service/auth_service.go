package service

import (
	"context"
	"strings"
	"time"

	"github.com/sangkips/solarpower/internal/domain/entity"
	"github.com/sangkips/solarpower/internal/domain/enum"
	"github.com/sangkips/solarpower/internal/domain/repository"
	"github.com/sangkips/solarpower/pkg/apperror"
	"github.com/sangkips/solarpower/pkg/utils"
)

// AuthService handles staff authentication
type AuthService struct {
	staffRepo  repository.StaffUserRepository
	transactor repository.Transactor
	audit      *AuditService
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(
	staffRepo repository.StaffUserRepository,
	transactor repository.Transactor,
	audit *AuditService,
	jwtManager *utils.JWTManager,
) *AuthService {
	return &AuthService{
		staffRepo:  staffRepo,
		transactor: transactor,
		audit:      audit,
		jwtManager: jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Username string
	Password string
	IP       string
}

// LoginOutput represents the login output
type LoginOutput struct {
	Staff        *entity.StaffUser
	SessionToken string
}

// Login authenticates a staff user, records the login and issues a session token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	staff, err := s.staffRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if staff == nil || !staff.IsActive {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, staff.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.staffRepo.UpdateLastLogin(ctx, staff.ID, now); err != nil {
			return err
		}
		actor := Actor{Username: staff.Username, IP: input.IP}
		return s.audit.Record(ctx, actor, enum.AdminActionLogin, "Logged in")
	})
	if err != nil {
		return nil, err
	}
	staff.LastLoginAt = &now

	token, err := s.jwtManager.GenerateSessionToken(staff.ID, staff.Username)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Staff:        staff,
		SessionToken: token,
	}, nil
}

// Authenticate resolves a session token to an active staff user
func (s *AuthService) Authenticate(ctx context.Context, token string) (*entity.StaffUser, error) {
	claims, err := s.jwtManager.ValidateSessionToken(token)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	staff, err := s.staffRepo.GetByID(ctx, claims.StaffID)
	if err != nil {
		return nil, err
	}
	if staff == nil || !staff.IsActive {
		return nil, apperror.ErrUnauthorized
	}
	return staff, nil
}

// CreateStaffInput represents the staff account creation input
type CreateStaffInput struct {
	Username string
	Email    string
	Password string
}

// CreateStaff creates an active staff account
func (s *AuthService) CreateStaff(ctx context.Context, input *CreateStaffInput) (*entity.StaffUser, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, apperror.NewFieldError("username", "This field is required.")
	}
	if len(input.Password) < 8 {
		return nil, apperror.NewFieldError("password", "Ensure this value has at least 8 characters.")
	}

	existing, err := s.staffRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A staff user with that username already exists")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	staff := &entity.StaffUser{
		Username: username,
		Email:    input.Email,
		Password: hashedPassword,
		IsActive: true,
	}
	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}

	return staff, nil
}
