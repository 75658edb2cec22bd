// Package notify sends account notification emails.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"jiffy-backoffice-api-server/config"
	"jiffy-backoffice-api-server/internal/metrics"
)

const sendTimeout = 15 * time.Second

type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers a single message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer delivers through an SMTP relay.
type SMTPMailer struct {
	client *mail.Client
	from   string
}

func NewSMTPMailer(cfg config.MailConfig) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(sendTimeout),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("notify.NewSMTPMailer: %w", err)
	}
	return &SMTPMailer{client: client, from: cfg.From}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	email := mail.NewMsg()
	if err := email.From(m.from); err != nil {
		return fmt.Errorf("notify.Send from: %w", err)
	}
	if err := email.To(msg.To); err != nil {
		return fmt.Errorf("notify.Send to: %w", err)
	}
	email.Subject(msg.Subject)
	email.SetBodyString(mail.TypeTextPlain, msg.Body)

	if err := m.client.DialAndSendWithContext(ctx, email); err != nil {
		return fmt.Errorf("notify.Send: %w", err)
	}
	return nil
}

// NoopMailer drops every message. Used when SMTP is not configured.
type NoopMailer struct{}

func (NoopMailer) Send(context.Context, Message) error { return nil }

// NewMailer picks the SMTP mailer when a host is configured.
func NewMailer(cfg config.MailConfig) (Mailer, error) {
	if cfg.Host == "" {
		return NoopMailer{}, nil
	}
	return NewSMTPMailer(cfg)
}

// Notifier sends messages in the background so a slow or failing relay
// never delays the request that triggered it.
type Notifier struct {
	mailer Mailer
	log    *zap.Logger
	wg     sync.WaitGroup
}

func NewNotifier(mailer Mailer, log *zap.Logger) *Notifier {
	return &Notifier{mailer: mailer, log: log}
}

func (n *Notifier) Notify(msg Message) {
	if n == nil || msg.To == "" {
		return
	}
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		err := n.mailer.Send(ctx, msg)
		metrics.ObserveEmail(err == nil)
		if err != nil {
			n.log.Warn("notification email failed",
				zap.String("to", msg.To),
				zap.String("subject", msg.Subject),
				zap.Error(err))
		}
	}()
}

// Wait blocks until all in-flight sends finish.
func (n *Notifier) Wait() {
	if n == nil {
		return
	}
	n.wg.Wait()
}
