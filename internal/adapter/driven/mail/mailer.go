package mail

import (
	"context"
	"fmt"
	"net"
	"strconv"

	gomail "github.com/wneessen/go-mail"

	"github.com/prherald/prherald/internal/domain/model"
	"github.com/prherald/prherald/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.Mailer = (*Mailer)(nil)

// Mailer implements the driven.Mailer port over plain SMTP. The relay is
// expected to accept mail without authentication or TLS, so neither is
// attempted, and no delivery confirmation is collected.
type Mailer struct {
	client *gomail.Client
	from   string
}

// NewMailer creates a Mailer for the relay at addr, sending from the given
// address. addr is host:port; a bare host defaults to port 25.
func NewMailer(addr, from string) (*Mailer, error) {
	host, port, err := splitRelayAddr(addr)
	if err != nil {
		return nil, err
	}

	client, err := gomail.NewClient(host,
		gomail.WithPort(port),
		gomail.WithTLSPolicy(gomail.NoTLS),
	)
	if err != nil {
		return nil, fmt.Errorf("creating smtp client for %s: %w", addr, err)
	}

	return &Mailer{client: client, from: from}, nil
}

// SendReviewNotice emails the contact their pending review items as one
// multipart/alternative message with plain-text and HTML parts.
func (m *Mailer) SendReviewNotice(ctx context.Context, to model.Contact, items []model.ReviewItem) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("setting sender %s: %w", m.from, err)
	}
	if err := msg.AddToFormat(to.Name, to.Email); err != nil {
		return fmt.Errorf("setting recipient %s: %w", to.Email, err)
	}
	msg.Subject(Subject)

	text, htmlBody := ComposeBody(items)
	msg.SetBodyString(gomail.TypeTextPlain, text)
	msg.AddAlternativeString(gomail.TypeTextHTML, htmlBody)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending review notice to %s: %w", to.Email, err)
	}

	return nil
}

// splitRelayAddr splits a relay address into host and port, defaulting the
// port to 25 when absent.
func splitRelayAddr(addr string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return addr, 25, nil
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("smtp address %q has invalid port: %w", addr, err)
	}

	return host, port, nil
}
