package email

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/smtp"
	"time"
)

// ErrNotConfigured is returned when no SMTP host has been set
var ErrNotConfigured = errors.New("email: smtp host not configured")

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
	SiteURL      string
}

// LeadDetails is the content of a new lead notification
type LeadDetails struct {
	ID          uint
	Name        string
	Email       string
	Phone       string
	Service     string
	Message     string
	SubmittedAt time.Time
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
	tmpl   *template.Template
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{
		config: config,
		tmpl:   template.Must(template.New("lead_notification").Parse(leadNotificationTemplate)),
	}
}

// Enabled reports whether an SMTP host is configured
func (s *EmailService) Enabled() bool {
	return s.config.SMTPHost != ""
}

// SendLeadNotification tells staff at toEmail that a new service request arrived
func (s *EmailService) SendLeadNotification(toEmail string, lead LeadDetails) error {
	if !s.Enabled() {
		return ErrNotConfigured
	}

	htmlContent, err := s.renderLeadNotification(lead)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("New service request: %s - %s", lead.Name, lead.Service)
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	var auth smtp.Auth
	if s.config.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)
	}

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}

func (s *EmailService) renderLeadNotification(lead LeadDetails) (string, error) {
	data := struct {
		Lead    LeadDetails
		AppName string
		LeadURL string
	}{
		Lead:    lead,
		AppName: s.config.FromName,
		LeadURL: s.config.SiteURL + "/adm/service-requests/",
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

const leadNotificationTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>New service request</title>
</head>
<body style="margin: 0; padding: 24px; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; border-collapse: collapse;">
        <tr>
            <td style="background: #f59e0b; padding: 24px 30px;">
                <h1 style="color: #ffffff; margin: 0; font-size: 22px;">{{.AppName}}: new service request</h1>
            </td>
        </tr>
        <tr>
            <td style="padding: 24px 30px; color: #1a1a2e; font-size: 15px; line-height: 1.6;">
                <p style="margin: 0 0 8px 0;"><strong>Name:</strong> {{.Lead.Name}}</p>
                <p style="margin: 0 0 8px 0;"><strong>Email:</strong> {{.Lead.Email}}</p>
                <p style="margin: 0 0 8px 0;"><strong>Phone:</strong> {{.Lead.Phone}}</p>
                <p style="margin: 0 0 8px 0;"><strong>Service:</strong> {{.Lead.Service}}</p>
                <p style="margin: 0 0 8px 0;"><strong>Submitted:</strong> {{.Lead.SubmittedAt.Format "02 Jan 2006 15:04"}}</p>
                <p style="margin: 16px 0 8px 0;"><strong>Message</strong></p>
                <p style="margin: 0; white-space: pre-line;">{{.Lead.Message}}</p>
                <p style="margin: 24px 0 0 0;"><a href="{{.LeadURL}}" style="color: #b45309;">Open the service request list</a></p>
            </td>
        </tr>
    </table>
</body>
</html>
`
