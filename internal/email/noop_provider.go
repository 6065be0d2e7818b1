package email

import "talentsite_backend/internal/logger"

// NoopProvider используется, когда отправка почты выключена в конфигурации
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) Send(msg *Message) error {
	logger.Debug("email sending disabled, message dropped", "subject", msg.Subject)
	return nil
}

func (p *NoopProvider) SendTicketNotification(name, fromEmail, subject, body string) error {
	logger.Debug("email sending disabled, ticket notification dropped", "subject", subject)
	return nil
}
