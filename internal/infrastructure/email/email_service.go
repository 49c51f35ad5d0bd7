package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"

	config "github.com/indohomz/indohomz-backend/configs"
	"github.com/indohomz/indohomz-backend/internal/core/domain/lead"
	"github.com/indohomz/indohomz-backend/internal/core/domain/user"
	"github.com/indohomz/indohomz-backend/internal/core/ports"
)

// EmailService sends transactional mail through SendGrid.
type EmailService struct {
	config *config.EmailConfig
	logger *logrus.Logger
	client *sendgrid.Client
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg *config.EmailConfig, logger *logrus.Logger) ports.EmailService {
	return &EmailService{
		config: cfg,
		logger: logger,
		client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
	}
}

// SendLeadNotification alerts the sales inbox about a fresh inquiry.
func (e *EmailService) SendLeadNotification(_ context.Context, l *lead.Lead) error {
	var b strings.Builder
	b.WriteString("<h2>New Lead Received</h2>")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", l.Name)
	fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>", l.Phone)
	if l.Email != nil {
		fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", *l.Email)
	}
	fmt.Fprintf(&b, "<p><strong>Source:</strong> %s</p>", l.Source)
	if l.PropertyID != nil {
		fmt.Fprintf(&b, "<p><strong>Property ID:</strong> %s</p>", l.PropertyID)
	}
	if l.Message != nil {
		fmt.Fprintf(&b, "<p><strong>Message:</strong> %s</p>", *l.Message)
	}
	if l.PreferredVisitDate != nil {
		fmt.Fprintf(&b, "<p><strong>Preferred Visit:</strong> %s</p>", l.PreferredVisitDate.Format("02 Jan 2006"))
	}

	subject := fmt.Sprintf("New lead: %s (%s)", l.Name, l.Source)
	return e.sendEmail(e.config.LeadsEmail, subject, b.String())
}

// SendWelcomeEmail greets a newly registered user.
func (e *EmailService) SendWelcomeEmail(_ context.Context, u *user.User) error {
	html := fmt.Sprintf(
		"<h2>Welcome to %s, %s!</h2><p>Your account has been created. You can now browse listings and manage your inquiries.</p>",
		e.config.CompanyName, u.Name,
	)
	subject := fmt.Sprintf("Welcome to %s", e.config.CompanyName)
	return e.sendEmail(u.Email, subject, html)
}

// sendEmail sends an email using SendGrid
func (e *EmailService) sendEmail(to, subject, htmlContent string) error {
	from := mail.NewEmail(e.config.FromName, e.config.FromEmail)
	recipient := mail.NewEmail("", to)

	message := mail.NewSingleEmail(from, subject, recipient, "", htmlContent)

	response, err := e.client.Send(message)
	if err != nil {
		if e.logger != nil {
			e.logger.WithFields(logrus.Fields{"to": to, "subject": subject}).WithError(err).Error("Failed to send email")
		}
		return fmt.Errorf("failed to send email: %w", err)
	}

	if e.logger != nil {
		e.logger.WithFields(logrus.Fields{
			"to":          to,
			"subject":     subject,
			"status_code": response.StatusCode,
		}).Info("Email sent successfully")
	}

	return nil
}
