package email

import (
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// EmailService defines the interface for email operations
type EmailService interface {
	SendWelcomeEmail(toEmail, toName string) error
	SendStatusEmail(toEmail, toName, status string) error
}

// SMTPConfig holds configuration for SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
}

// EmailServiceImpl implements EmailService over gomail
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &EmailServiceImpl{
		config: config,
		logger: logger,
	}
}

// SendWelcomeEmail sends a welcome email to a newly registered user
func (s *EmailServiceImpl) SendWelcomeEmail(toEmail, toName string) error {
	subject := "Welcome to AlumniBridge"

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Welcome to AlumniBridge!</h2>
				<p>Hello %s,</p>
				<p>Your account has been created. Complete your profile to get started.</p>
				<p>Best regards,<br>The AlumniBridge Team</p>
			</div>
		</body>
		</html>
	`, toName)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// SendStatusEmail notifies a user about an account status change
func (s *EmailServiceImpl) SendStatusEmail(toEmail, toName, status string) error {
	subject := "Your AlumniBridge account status changed"

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Account status update</h2>
				<p>Hello %s,</p>
				<p>Your account status has been updated to: <strong>%s</strong>.</p>
				<p>Best regards,<br>The AlumniBridge Team</p>
			</div>
		</body>
		</html>
	`, toName, status)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// sendHTMLEmail delivers an HTML message over SMTP.
// Without SMTP credentials the message is only logged, which keeps
// local development working without a mail server.
func (s *EmailServiceImpl) sendHTMLEmail(toEmail, subject, body string) error {
	if s.config.Host == "" || s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("subject", subject).
			Msg("SMTP not configured - email not sent")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	dialer := gomail.NewDialer(s.config.Host, s.config.Port, s.config.Username, s.config.Password)
	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info().Str("toEmail", toEmail).Str("subject", subject).Msg("Email sent")
	return nil
}
