package email

import (
	"fmt"

	"talentsite_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider реализует Provider поверх gomail
type SMTPProvider struct {
	cfg *config.EmailConfig
}

func NewSMTPProvider(cfg *config.EmailConfig) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(msg *Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.FromEmail, p.cfg.FromName)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	if msg.HTML {
		m.SetBody("text/html", msg.Body)
	} else {
		m.SetBody("text/plain", msg.Body)
	}

	d := gomail.NewDialer(p.cfg.SMTPHost, p.cfg.SMTPPort, p.cfg.Username, p.cfg.Password)
	return d.DialAndSend(m)
}

func (p *SMTPProvider) SendTicketNotification(name, fromEmail, subject, body string) error {
	if p.cfg.AdminEmail == "" {
		return fmt.Errorf("admin email is not configured")
	}
	return p.Send(&Message{
		To:      []string{p.cfg.AdminEmail},
		Subject: fmt.Sprintf("New support ticket: %s", subject),
		Body:    fmt.Sprintf("From: %s <%s>\n\n%s", name, fromEmail, body),
	})
}
