package email

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendLeadNotificationNotConfigured(t *testing.T) {
	svc := NewEmailService(EmailConfig{})

	assert.False(t, svc.Enabled())
	assert.ErrorIs(t, svc.SendLeadNotification("office@example.com", LeadDetails{}), ErrNotConfigured)
}

func TestRenderLeadNotification(t *testing.T) {
	svc := NewEmailService(EmailConfig{
		SMTPHost:  "smtp.example.com",
		FromName:  "Solar Power",
		FromEmail: "noreply@example.com",
		SiteURL:   "https://solar.example.com",
	})

	html, err := svc.renderLeadNotification(LeadDetails{
		ID:          7,
		Name:        "Jane <b>Wanjiku</b>",
		Email:       "jane@example.com",
		Phone:       "0712345678",
		Service:     "Installation",
		Message:     "Call me",
		SubmittedAt: time.Date(2024, 5, 3, 14, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Solar Power: new service request")
	assert.Contains(t, html, "Jane &lt;b&gt;Wanjiku&lt;/b&gt;")
	assert.Contains(t, html, "03 May 2024 14:30")
	assert.Contains(t, html, `href="https://solar.example.com/adm/service-requests/"`)
}

func TestBuildHTMLEmail(t *testing.T) {
	svc := NewEmailService(EmailConfig{FromName: "Solar Power", FromEmail: "noreply@example.com"})

	msg := string(svc.buildHTMLEmail("office@example.com", "New service request", "<p>hi</p>"))
	assert.True(t, strings.HasPrefix(msg, "From: Solar Power <noreply@example.com>\r\n"))
	assert.Contains(t, msg, "To: office@example.com\r\n")
	assert.Contains(t, msg, "Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n<p>hi</p>")
}
