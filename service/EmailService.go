package service

import (
	"crypto/tls"
	"fmt"
	"html"
	"log/slog"

	"skilltracker/config"
	"skilltracker/util"

	"gopkg.in/gomail.v2"
)

// Mailer sends the few notifications the server emits.
type Mailer interface {
	SendPortfolioPublished(toEmail, name, portfolioURL string) error
}

type EmailService struct {
	dialer  *gomail.Dialer
	sender  string
	appName string
}

// NewEmailService returns a no-op Mailer when SMTP is not configured.
func NewEmailService(cfg config.SMTP, appName string) Mailer {
	if !cfg.Enabled() {
		slog.Info("smtp not configured, outgoing mail disabled")
		return noopMailer{}
	}

	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
	dialer.TLSConfig = &tls.Config{ServerName: cfg.Host}

	return &EmailService{
		dialer:  dialer,
		sender:  cfg.SenderName,
		appName: appName,
	}
}

// SendPortfolioPublished tells the owner where their portfolio now lives.
func (s *EmailService) SendPortfolioPublished(toEmail, name, portfolioURL string) error {
	m := gomail.NewMessage()

	m.SetHeader("From", fmt.Sprintf("%s <%s>", s.sender, s.dialer.Username))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Your %s portfolio is live", s.appName))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px;">
			<h2>Hello %s!</h2>
			<p>Your public portfolio has been published and can be shared with this link:</p>
			<p><a href="%s" style="color: #2d89ef;">%s</a></p>
			<p>You can switch it off again at any time from your portfolio settings.</p>
		</div>
	`, html.EscapeString(util.TitleCase(name)), portfolioURL, portfolioURL)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}

type noopMailer struct{}

func (noopMailer) SendPortfolioPublished(string, string, string) error { return nil }
