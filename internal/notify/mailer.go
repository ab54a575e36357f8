package notify

import (
	"crypto/tls"
	"fmt"

	mail "github.com/go-mail/mail/v2"

	"github.com/crypticbroker/platform-api/internal/config"
)

// Mailer sends transactional email over SMTP with mandatory STARTTLS.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewMailer() *Mailer {
	return &Mailer{
		host: config.SmtpHost,
		port: config.SmtpPort,
		user: config.SmtpUser,
		pass: config.SmtpPassword,
		from: config.SmtpFrom,
	}
}

// Configured reports whether SMTP settings are present. When false, Send is
// a no-op error and callers should skip email delivery.
func (m *Mailer) Configured() bool {
	return m.host != "" && m.from != ""
}

func (m *Mailer) Send(to []string, subject, html string) error {
	if len(to) == 0 {
		return nil
	}
	if !m.Configured() {
		return fmt.Errorf("smtp not configured (SMTP_HOST/SMTP_FROM)")
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	d := mail.NewDialer(m.host, m.port, m.user, m.pass)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{
		ServerName:         m.host,
		InsecureSkipVerify: config.SmtpSkipTLSVerify,
	}

	return d.DialAndSend(msg)
}
