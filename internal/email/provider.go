package email

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет простое email сообщение
	Send(msg *Message) error

	// SendTicketNotification уведомляет администратора о новом обращении
	SendTicketNotification(name, fromEmail, subject, body string) error
}

// Message - одно исходящее письмо
type Message struct {
	To      []string
	Subject string
	Body    string
	HTML    bool
}
