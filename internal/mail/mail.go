// Package mail composes and dispatches transactional email through an SMTP
// relay. Delivery is at-most-once: nothing here retries or persists state.
package mail

import (
	"context"

	"github.com/go-faster/errors"
	gomail "github.com/wneessen/go-mail"
)

// Message is an ephemeral (recipient, subject, body) triple. The body is
// already-rendered HTML.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender dispatches a single message to the relay.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPConfig holds the relay account credentials.
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	// From is the envelope sender; defaults to User when empty.
	From string
}

// SMTPSender sends messages through an authenticated SMTP relay using
// wneessen/go-mail. Each Send dials a fresh connection; the relay owns all
// delivery guarantees beyond the synchronous handshake.
type SMTPSender struct {
	client *gomail.Client
	from   string
}

// NewSMTPSender creates a sender for the given relay account.
func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.User),
		gomail.WithPassword(cfg.Pass),
		gomail.WithTLSPortPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create smtp client")
	}

	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return &SMTPSender{client: client, from: from}, nil
}

// Send composes the MIME message and performs the full dial-send cycle.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMsg()
	if err := m.FromFormat("Order Notification", s.from); err != nil {
		return errors.Wrap(err, "set from")
	}
	if err := m.To(msg.To); err != nil {
		return errors.Wrap(err, "set recipient")
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextHTML, msg.HTML)

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return errors.Wrap(err, "send mail")
	}
	return nil
}
