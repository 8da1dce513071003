// Package testutil provides in-memory databases and fixtures for tests.
package testutil

import (
	"strings"
	"testing"
	"time"

	"github.com/sangkips/solarpower/internal/domain/entity"
	"github.com/sangkips/solarpower/internal/domain/enum"
	"github.com/sangkips/solarpower/internal/infrastructure/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a migrated in-memory sqlite database private to t
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := "file:" + name + "?mode=memory&cache=shared&_foreign_keys=on"

	db, err := gorm.Open(sqlite.Open(dsn), database.GormConfig(logger.Silent))
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

// Date returns midnight UTC on the given day
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// IntPtr returns a pointer to n
func IntPtr(n int) *int {
	return &n
}

// CreateService inserts a service with the given slug and type
func CreateService(t *testing.T, db *gorm.DB, slug string, serviceType enum.ServiceType) *entity.Service {
	t.Helper()

	service := &entity.Service{
		Slug:             slug,
		ServiceType:      serviceType,
		Title:            serviceType.Label(),
		Description:      "Description of " + serviceType.Label(),
		ValueProposition: "Why " + serviceType.Label() + " matters",
		IconClass:        entity.DefaultIconClass,
	}
	require.NoError(t, db.Create(service).Error)
	return service
}

// CreateCaseStudy inserts a case study owned by serviceID
func CreateCaseStudy(t *testing.T, db *gorm.DB, serviceID uint, title string, clientType enum.ClientType, installed time.Time) *entity.CaseStudy {
	t.Helper()

	caseStudy := &entity.CaseStudy{
		Title:               title,
		ClientType:          clientType,
		Location:            "Nairobi",
		InstallationDate:    installed,
		SystemCapacity:      decimal.RequireFromString("5.50"),
		ProjectCost:         decimal.RequireFromString("450000.00"),
		PreviousConsumption: IntPtr(500),
		CurrentConsumption:  IntPtr(350),
		ServiceID:           serviceID,
	}
	require.NoError(t, db.Create(caseStudy).Error)
	return caseStudy
}

// CreateProject inserts an installation project owned by serviceID
func CreateProject(t *testing.T, db *gorm.DB, serviceID uint, client string, completed time.Time, totalCost, profit string) *entity.InstallationProject {
	t.Helper()

	project := &entity.InstallationProject{
		ClientName:     client,
		CompletionDate: completed,
		SystemSizeKW:   decimal.RequireFromString("10.00"),
		TotalCost:      decimal.RequireFromString(totalCost),
		Profit:         decimal.RequireFromString(profit),
		ServiceID:      serviceID,
	}
	require.NoError(t, db.Create(project).Error)
	return project
}

// CreateMetric inserts a monthly metric for the month containing month
func CreateMetric(t *testing.T, db *gorm.DB, month time.Time, newClients int, revenue, expenses string) *entity.MonthlyMetric {
	t.Helper()

	metric := &entity.MonthlyMetric{
		Month:      entity.FirstOfMonth(month),
		NewClients: newClients,
		Revenue:    decimal.RequireFromString(revenue),
		Expenses:   decimal.RequireFromString(expenses),
	}
	require.NoError(t, db.Create(metric).Error)
	return metric
}
