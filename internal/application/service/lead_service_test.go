package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sangkips/solarpower/internal/domain/entity"
	"github.com/sangkips/solarpower/internal/domain/enum"
	"github.com/sangkips/solarpower/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLead() *SubmitLeadInput {
	return &SubmitLeadInput{
		Name:    "Jane Wanjiku",
		Email:   "jane@example.com",
		Phone:   "0712345678",
		Service: enum.RequestService(enum.ServiceTypeInstallation),
		Message: "I would like a quote for my home.",
	}
}

func TestLeadService_Submit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	request, err := f.lead.Submit(ctx, validLead())
	require.NoError(t, err)

	assert.NotZero(t, request.ID)
	assert.False(t, request.IsCompleted)
	assert.True(t, request.SubmittedAt.After(before))

	var stored entity.ServiceRequest
	require.NoError(t, f.db.First(&stored, request.ID).Error)
	assert.Equal(t, "Jane Wanjiku", stored.Name)
	assert.Equal(t, enum.RequestService(enum.ServiceTypeInstallation), stored.Service)
	assert.False(t, stored.IsCompleted)

	require.Len(t, f.notifier.leads, 1)
	assert.Equal(t, []string{"office@example.com"}, f.notifier.to)
	assert.Equal(t, request.ID, f.notifier.leads[0].ID)
	assert.Equal(t, enum.ServiceTypeInstallation.Label(), f.notifier.leads[0].Service)

	assert.Empty(t, f.auditLog(t), "public submissions are not audited")
}

func TestLeadService_SubmitIgnoresNotificationFailure(t *testing.T) {
	f := newFixture(t)
	f.notifier.err = errors.New("smtp unavailable")

	request, err := f.lead.Submit(context.Background(), validLead())
	require.NoError(t, err)
	assert.NotZero(t, request.ID)
}

func TestLeadService_SubmitWithoutNotifier(t *testing.T) {
	f := newFixture(t)
	f.lead.notifier = nil

	_, err := f.lead.Submit(context.Background(), validLead())
	require.NoError(t, err)
	assert.Empty(t, f.notifier.leads)
}

func TestLeadService_MarkCompleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	pending := f.createRequest(t, "Jane", time.Now().UTC(), false)

	request, err := f.lead.MarkCompleted(ctx, testActor, pending.ID)
	require.NoError(t, err)
	assert.True(t, request.IsCompleted)

	logs := f.auditLog(t)
	require.Len(t, logs, 1)
	assert.Equal(t, "admin", logs[0].AdminUser)
	assert.Equal(t, enum.AdminActionEdit, logs[0].Action)
	assert.Equal(t, "Marked request as completed: Jane - Other", logs[0].Details)
	require.NotNil(t, logs[0].IPAddress)
	assert.Equal(t, "127.0.0.1", *logs[0].IPAddress)

	t.Run("second call is a no-op", func(t *testing.T) {
		request, err := f.lead.MarkCompleted(ctx, testActor, pending.ID)
		require.NoError(t, err)
		assert.True(t, request.IsCompleted)
		assert.Len(t, f.auditLog(t), 1)
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := f.lead.MarkCompleted(ctx, testActor, pending.ID+100)
		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
		assert.Len(t, f.auditLog(t), 1)
	})
}

func TestLeadService_ListRequestsNewestFirst(t *testing.T) {
	f := newFixture(t)
	now := time.Now().UTC()

	f.createRequest(t, "Old", now.Add(-48*time.Hour), true)
	f.createRequest(t, "New", now, false)
	f.createRequest(t, "Middle", now.Add(-time.Hour), false)

	requests, err := f.lead.ListRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, requests, 3)
	assert.Equal(t, "New", requests[0].Name)
	assert.Equal(t, "Middle", requests[1].Name)
	assert.Equal(t, "Old", requests[2].Name)
}
