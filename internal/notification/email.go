package notification

import (
	"fmt"
	"net/smtp"
)

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	FromName string
}

type EmailService struct {
	config EmailConfig
}

func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

func (s *EmailService) SendActivationEmail(to, activationURL string, expirationDays int) error {
	subject := "Activate Your Account"
	body := fmt.Sprintf(`<html><body>
		<h2>Activate Your Account</h2>
		<p>Thank you for registering! Please activate your account to complete your registration.</p>
		<p><a href="%s">Click here to activate your account</a></p>
		<p>Or copy this link to your browser: %s</p>
		<p>This link will expire in %d days.</p>
	</body></html>`, activationURL, activationURL, expirationDays)
	return s.sendEmail(to, subject, body)
}

func (s *EmailService) sendEmail(to, subject, body string) error {
	from := s.config.From
	if s.config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.From)
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		from, to, subject, body)

	auth := smtp.PlainAuth("", s.config.User, s.config.Password, s.config.Host)
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	return smtp.SendMail(addr, auth, s.config.From, []string{to}, []byte(msg))
}
