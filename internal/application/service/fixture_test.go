package service

import (
	"testing"
	"time"

	"github.com/sangkips/solarpower/internal/domain/entity"
	"github.com/sangkips/solarpower/internal/infrastructure/repository"
	"github.com/sangkips/solarpower/internal/testutil"
	"github.com/sangkips/solarpower/pkg/email"
	"github.com/sangkips/solarpower/pkg/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testActor = Actor{Username: "admin", IP: "127.0.0.1"}

type fakeNotifier struct {
	to    []string
	leads []email.LeadDetails
	err   error
}

func (n *fakeNotifier) SendLeadNotification(toEmail string, lead email.LeadDetails) error {
	n.to = append(n.to, toEmail)
	n.leads = append(n.leads, lead)
	return n.err
}

type fixture struct {
	db        *gorm.DB
	notifier  *fakeNotifier
	audit     *AuditService
	lead      *LeadService
	catalog   *CatalogService
	caseStudy *CaseStudyService
	project   *ProjectService
	metric    *MetricService
	dashboard *DashboardService
	analytics *AnalyticsService
	auth      *AuthService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewTestDB(t)

	transactor := repository.NewTransactor(db)
	serviceRepo := repository.NewServiceRepository(db)
	caseStudyRepo := repository.NewCaseStudyRepository(db)
	requestRepo := repository.NewServiceRequestRepository(db)
	projectRepo := repository.NewInstallationProjectRepository(db)
	metricRepo := repository.NewMonthlyMetricRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	f := &fixture{db: db, notifier: &fakeNotifier{}}
	f.audit = NewAuditService(repository.NewAdminLogRepository(db))
	f.lead = NewLeadService(requestRepo, transactor, f.audit, f.notifier, "office@example.com")
	f.catalog = NewCatalogService(serviceRepo, caseStudyRepo, projectRepo, transactor, f.audit)
	f.caseStudy = NewCaseStudyService(caseStudyRepo, serviceRepo, transactor, f.audit)
	f.project = NewProjectService(projectRepo, serviceRepo, analyticsRepo, transactor, f.audit)
	f.metric = NewMetricService(metricRepo, transactor, f.audit)
	f.dashboard = NewDashboardService(requestRepo, serviceRepo, caseStudyRepo, projectRepo, analyticsRepo, f.audit)
	f.analytics = NewAnalyticsService(analyticsRepo, metricRepo)
	f.auth = NewAuthService(
		repository.NewStaffUserRepository(db),
		transactor,
		f.audit,
		utils.NewJWTManager("test-secret", time.Hour, "solarpower-test"),
	)
	return f
}

// auditLog returns every admin log entry in insertion order
func (f *fixture) auditLog(t *testing.T) []entity.AdminLog {
	t.Helper()

	var logs []entity.AdminLog
	require.NoError(t, f.db.Order("id ASC").Find(&logs).Error)
	return logs
}

func (f *fixture) createRequest(t *testing.T, name string, submitted time.Time, completed bool) *entity.ServiceRequest {
	t.Helper()

	request := &entity.ServiceRequest{
		Name:        name,
		Email:       "lead@example.com",
		Phone:       "0712345678",
		Service:     "OTH",
		Message:     "Please call me back",
		SubmittedAt: submitted,
		IsCompleted: completed,
	}
	require.NoError(t, f.db.Create(request).Error)
	return request
}
