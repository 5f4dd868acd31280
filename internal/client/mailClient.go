package client

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"music-store-backend/internal/config"

	"github.com/google/uuid"
)

type MailMessage struct {
	FromName string
	To       string
	ReplyTo  string
	Subject  string
	HTMLBody string
}

// MailClient is the outbound mail gateway. Implementations must be safe
// for concurrent use; the SMTP client dials per send and holds no state.
type MailClient interface {
	Send(ctx context.Context, msg *MailMessage) error
}

type smtpMailClient struct {
	host     string
	port     string
	user     string
	password string
}

func NewSMTPMailClient(cfg *config.SMTP) MailClient {
	return &smtpMailClient{
		host:     cfg.Host,
		port:     cfg.Port,
		user:     cfg.User,
		password: cfg.Password,
	}
}

func (c *smtpMailClient) Send(ctx context.Context, msg *MailMessage) error {
	addr := fmt.Sprintf("%s:%s", c.host, c.port)
	auth := smtp.PlainAuth("", c.user, c.password, c.host)

	var b strings.Builder
	fmt.Fprintf(&b, "From: %q <%s>\r\n", msg.FromName, c.user)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	fmt.Fprintf(&b, "Message-ID: <%s@%s>\r\n", uuid.NewString(), c.host)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTMLBody)

	if err := smtp.SendMail(addr, auth, c.user, []string{msg.To}, []byte(b.String())); err != nil {
		return fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}

	return nil
}
