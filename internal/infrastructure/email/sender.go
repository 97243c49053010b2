package email

import (
	"fmt"
	"net/smtp"

	"github.com/streamvault/payment-service/internal/config"
)

type SMTPSender struct {
	cfg config.SMTP
}

func NewSMTPSender(cfg config.SMTP) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) send(to string, subject string, body string) error {
	if s.cfg.Server == "" || s.cfg.Port == "" || s.cfg.User == "" || s.cfg.Password == "" || s.cfg.FromAddr == "" {
		return fmt.Errorf("smtp is not configured")
	}
	msg := []byte(fmt.Sprintf("From: %s <%s>\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"Content-Type: text/plain; charset=UTF-8\r\n\r\n"+
		"%s",
		s.cfg.FromName, s.cfg.FromAddr, to, subject, body))

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Server)

	if err := smtp.SendMail(s.cfg.Server+":"+s.cfg.Port, auth, s.cfg.FromAddr, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *SMTPSender) SendActivation(to string, planName string) error {
	subject := fmt.Sprintf("Your %s subscription is active", planName)
	body := fmt.Sprintf("Payment received. Your %s subscription has been activated.\n\n"+
		"Access credentials will follow in a separate message.", planName)
	return s.send(to, subject, body)
}
