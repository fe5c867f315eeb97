package mailer

import (
	"log"

	"gopkg.in/gomail.v2"
)

// Notifier delivers outbound acknowledgment messages. Sends happen off the
// request path; a failure is logged, never surfaced to the submitter.
type Notifier interface {
	Send(to, subject, htmlBody string) error
}

type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
}

func NewSMTPMailer(host string, port int, username, password string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, username: username, password: password}
}

// Send sends an email using the configured SMTP account
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	mailer := gomail.NewMessage()
	mailer.SetHeader("From", m.username)
	mailer.SetHeader("To", to)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)

	if err := dialer.DialAndSend(mailer); err != nil {
		log.Printf("Failed to send email to %s: %v", to, err)
		return err
	}

	return nil
}
