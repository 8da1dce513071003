package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/solarpower/internal/application/service"
	"github.com/sangkips/solarpower/internal/config"
	"github.com/sangkips/solarpower/internal/infrastructure/database"
	"github.com/sangkips/solarpower/internal/infrastructure/repository"
	"github.com/sangkips/solarpower/internal/presentation/http/handler"
	"github.com/sangkips/solarpower/internal/presentation/http/middleware"
	"github.com/sangkips/solarpower/internal/presentation/http/routes"
	"github.com/sangkips/solarpower/internal/presentation/http/view"
	"github.com/sangkips/solarpower/pkg/email"
	"github.com/sangkips/solarpower/pkg/storage"
	"github.com/sangkips/solarpower/pkg/utils"
	"github.com/sangkips/solarpower/pkg/validation"
)

func main() {
	// Load configuration
	cfg := config.Load()

	setupLogger(&cfg.App)

	// Set Gin mode based on environment
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewDB(&cfg.Database, cfg.App.Debug)
	if err != nil {
		fatal("failed to connect to database", err)
	}

	if err := database.Migrate(db, &cfg.Database); err != nil {
		fatal("failed to run migrations", err)
	}

	ctx := context.Background()
	if _, err := database.SeedServices(ctx, db); err != nil {
		slog.Warn("failed to seed default services", "error", err)
	}
	if err := database.EnsureAdmin(ctx, db, &cfg.Admin); err != nil {
		slog.Warn("failed to create admin user", "error", err)
	}

	jwtManager := utils.NewJWTManager(cfg.Session.Secret, cfg.Session.ExpiryHours, cfg.App.Name)

	// Initialize repositories
	transactor := repository.NewTransactor(db)
	serviceRepo := repository.NewServiceRepository(db)
	caseStudyRepo := repository.NewCaseStudyRepository(db)
	requestRepo := repository.NewServiceRequestRepository(db)
	projectRepo := repository.NewInstallationProjectRepository(db)
	metricRepo := repository.NewMonthlyMetricRepository(db)
	adminLogRepo := repository.NewAdminLogRepository(db)
	staffRepo := repository.NewStaffUserRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		SiteURL:      cfg.App.SiteURL,
	})

	// Initialize services
	auditService := service.NewAuditService(adminLogRepo)
	siteService := service.NewSiteService(serviceRepo, caseStudyRepo)
	leadService := service.NewLeadService(requestRepo, transactor, auditService, emailService, cfg.Email.NotifyEmail)
	exportService := service.NewExportService(requestRepo)
	catalogService := service.NewCatalogService(serviceRepo, caseStudyRepo, projectRepo, transactor, auditService)
	caseStudyService := service.NewCaseStudyService(caseStudyRepo, serviceRepo, transactor, auditService)
	projectService := service.NewProjectService(projectRepo, serviceRepo, analyticsRepo, transactor, auditService)
	metricService := service.NewMetricService(metricRepo, transactor, auditService)
	dashboardService := service.NewDashboardService(requestRepo, serviceRepo, caseStudyRepo, projectRepo, analyticsRepo, auditService)
	analyticsService := service.NewAnalyticsService(analyticsRepo, metricRepo)
	authService := service.NewAuthService(staffRepo, transactor, auditService, jwtManager)

	validator := validation.New()
	store := storage.NewLocalStorage(cfg.Storage.Path, cfg.Storage.UploadMaxSize)

	templates, err := view.Load()
	if err != nil {
		fatal("failed to parse templates", err)
	}

	// Initialize handlers
	handlers := &routes.Handlers{
		Public:    handler.NewPublicHandler(siteService, leadService, validator),
		Auth:      handler.NewAuthHandler(authService, jwtManager, validator, cfg.Session.SecureCookie),
		Service:   handler.NewServiceHandler(catalogService, store, validator),
		CaseStudy: handler.NewCaseStudyHandler(caseStudyService, catalogService, store, validator),
		Request:   handler.NewRequestHandler(leadService, exportService),
		Project:   handler.NewProjectHandler(projectService, catalogService, validator),
		Metric:    handler.NewMetricHandler(metricService, validator),
		Dashboard: handler.NewDashboardHandler(dashboardService, analyticsService),
		Log:       handler.NewLogHandler(auditService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:           cfg,
		Authenticator: authService,
		FlashStore:    middleware.NewFlashStore(cfg.Session.FlashSecret, cfg.Session.SecureCookie),
		Templates:     templates,
		MediaRoot:     store.Root(),
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "app", cfg.App.Name, "port", port, "env", cfg.App.Env, "db_driver", cfg.Database.Driver)

	if err := router.Run(":" + port); err != nil {
		fatal("failed to start server", err)
	}
}

func setupLogger(cfg *config.AppConfig) {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if cfg.IsProduction() {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(h))
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
