package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sangkips/solarpower/internal/config"
	"github.com/sangkips/solarpower/internal/domain/entity"
	"github.com/sangkips/solarpower/internal/domain/enum"
	"github.com/sangkips/solarpower/pkg/utils"
	"gorm.io/gorm"
)

// DefaultServices are the five service pillars the site launches with
func DefaultServices() []entity.Service {
	return []entity.Service{
		{
			Slug:             "smart-energy-assessment",
			ServiceType:      enum.ServiceTypeAssessment,
			Title:            enum.ServiceTypeAssessment.Label(),
			Description:      "An on-site and data-driven review of how your home or business uses energy.",
			ValueProposition: "Know exactly where your money goes before you spend a shilling on hardware.",
			IconClass:        "fas fa-clipboard-check",
			DisplayOrder:     1,
		},
		{
			Slug:             "custom-solar-efficiency-plan",
			ServiceType:      enum.ServiceTypeCustomPlan,
			Title:            enum.ServiceTypeCustomPlan.Label(),
			Description:      "A system design sized to your load profile, roof and budget.",
			ValueProposition: "No oversized systems and no guesswork, only the capacity you need.",
			IconClass:        entity.DefaultIconClass,
			DisplayOrder:     2,
		},
		{
			Slug:             "sustainability-esg-roadmap",
			ServiceType:      enum.ServiceTypeESGRoadmap,
			Title:            enum.ServiceTypeESGRoadmap.Label(),
			Description:      "A practical plan for reporting and reducing your organisation's footprint.",
			ValueProposition: "Turn ESG commitments into measurable milestones.",
			IconClass:        "fas fa-leaf",
			DisplayOrder:     3,
		},
		{
			Slug:             "remote-energy-coaching",
			ServiceType:      enum.ServiceTypeRemoteCoaching,
			Title:            enum.ServiceTypeRemoteCoaching.Label(),
			Description:      "Monthly remote sessions reviewing your consumption and system output.",
			ValueProposition: "Keep the savings coming long after installation day.",
			IconClass:        "fas fa-headset",
			DisplayOrder:     4,
		},
		{
			Slug:             "installation-supervision",
			ServiceType:      enum.ServiceTypeInstallation,
			Title:            enum.ServiceTypeInstallation.Label(),
			Description:      "Vetted installers supervised by our engineers from delivery to commissioning.",
			ValueProposition: "One accountable team for the whole install.",
			IconClass:        "fas fa-hard-hat",
			DisplayOrder:     5,
		},
	}
}

// SeedServices creates any default service whose type code is missing. It is safe to run repeatedly.
func SeedServices(ctx context.Context, db *gorm.DB) (int, error) {
	created := 0
	for _, service := range DefaultServices() {
		var existing entity.Service
		err := db.WithContext(ctx).Where("service_type = ?", service.ServiceType).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("failed to look up service %s: %w", service.ServiceType, err)
		}

		if err := db.WithContext(ctx).Create(&service).Error; err != nil {
			return created, fmt.Errorf("failed to create service %s: %w", service.ServiceType, err)
		}
		created++
	}

	slog.Info("default services seeded", "created", created)
	return created, nil
}

// EnsureAdmin creates the configured bootstrap staff account if it does not exist yet
func EnsureAdmin(ctx context.Context, db *gorm.DB, cfg *config.AdminConfig) error {
	if cfg.Username == "" || cfg.Password == "" {
		return nil
	}

	var existing entity.StaffUser
	err := db.WithContext(ctx).Where("username = ?", cfg.Username).First(&existing).Error
	if err == nil {
		slog.Info("admin user already exists", "username", cfg.Username)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	hashedPassword, err := utils.HashPassword(cfg.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := entity.StaffUser{
		Username: cfg.Username,
		Email:    cfg.Email,
		Password: hashedPassword,
		IsActive: true,
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	slog.Info("admin user created", "username", cfg.Username)
	return nil
}
