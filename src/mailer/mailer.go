// Package mailer delivers counsellor messages by email.
package mailer

import (
	"fmt"
	"strings"

	gomail "gopkg.in/gomail.v2"
)

type Sender interface {
	Send(to, subject, html string) error
}

// SMTPConfig holds the connection settings for SMTPSender.
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

type SMTPSender struct {
	cfg SMTPConfig
}

// NewSMTPSender checks every setting is present.
func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	missing := []string{}
	if cfg.Host == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if cfg.Port == 0 {
		missing = append(missing, "SMTP_PORT")
	}
	if cfg.User == "" {
		missing = append(missing, "SMTP_USER")
	}
	if cfg.Pass == "" {
		missing = append(missing, "SMTP_PASS")
	}
	if cfg.From == "" {
		missing = append(missing, "SMTP_FROM")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing SMTP settings: %v", strings.Join(missing, ", "))
	}
	return &SMTPSender{cfg: cfg}, nil
}

func (s *SMTPSender) Send(to, subject, html string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Pass)
	return d.DialAndSend(m)
}
