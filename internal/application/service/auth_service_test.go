package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/sangkips/solarpower/internal/domain/entity"
	"github.com/sangkips/solarpower/internal/domain/enum"
	"github.com/sangkips/solarpower/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createStaff(t *testing.T, f *fixture, username, password string) *entity.StaffUser {
	t.Helper()

	staff, err := f.auth.CreateStaff(context.Background(), &CreateStaffInput{
		Username: username,
		Email:    username + "@example.com",
		Password: password,
	})
	require.NoError(t, err)
	return staff
}

func TestAuthService_Login(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	staff := createStaff(t, f, "admin", "correct-horse")

	out, err := f.auth.Login(ctx, &LoginInput{Username: "admin", Password: "correct-horse", IP: "10.0.0.7"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.SessionToken)
	require.NotNil(t, out.Staff.LastLoginAt)

	var stored entity.StaffUser
	require.NoError(t, f.db.First(&stored, staff.ID).Error)
	assert.NotNil(t, stored.LastLoginAt)

	logs := f.auditLog(t)
	require.Len(t, logs, 1)
	assert.Equal(t, "admin", logs[0].AdminUser)
	assert.Equal(t, enum.AdminActionLogin, logs[0].Action)
	assert.Equal(t, "Logged in", logs[0].Details)
	require.NotNil(t, logs[0].IPAddress)
	assert.Equal(t, "10.0.0.7", *logs[0].IPAddress)

	authenticated, err := f.auth.Authenticate(ctx, out.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, staff.ID, authenticated.ID)
}

func TestAuthService_LoginRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	createStaff(t, f, "admin", "correct-horse")
	inactive := createStaff(t, f, "former", "correct-horse")
	require.NoError(t, f.db.Model(inactive).Update("is_active", false).Error)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "admin", password: "battery-staple"},
		{name: "unknown user", username: "nobody", password: "correct-horse"},
		{name: "inactive user", username: "former", password: "correct-horse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.auth.Login(ctx, &LoginInput{Username: tt.username, Password: tt.password})
			assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
		})
	}

	assert.Empty(t, f.auditLog(t))
}

func TestAuthService_Authenticate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.auth.Authenticate(ctx, "not-a-token")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)

	staff := createStaff(t, f, "admin", "correct-horse")
	out, err := f.auth.Login(ctx, &LoginInput{Username: "admin", Password: "correct-horse"})
	require.NoError(t, err)

	require.NoError(t, f.db.Model(staff).Update("is_active", false).Error)
	_, err = f.auth.Authenticate(ctx, out.SessionToken)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestAuthService_CreateStaff(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	staff := createStaff(t, f, "  admin ", "correct-horse")
	assert.Equal(t, "admin", staff.Username)
	assert.True(t, staff.IsActive)
	assert.NotEqual(t, "correct-horse", staff.Password)

	_, err := f.auth.CreateStaff(ctx, &CreateStaffInput{Username: "admin", Password: "another-one"})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)

	_, err = f.auth.CreateStaff(ctx, &CreateStaffInput{Username: "short", Password: "1234567"})
	require.True(t, apperror.IsValidation(err))
	assert.Contains(t, apperror.GetAppError(err).FieldMessages(), "password")

	_, err = f.auth.CreateStaff(ctx, &CreateStaffInput{Username: " ", Password: "long-enough"})
	require.True(t, apperror.IsValidation(err))
	assert.Contains(t, apperror.GetAppError(err).FieldMessages(), "username")
}
