// Package mail sends the registration confirmation email through an SMTP
// relay. Sender identity and event copy are static configuration; only the
// recipient varies per send.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"

	gomail "github.com/wneessen/go-mail"

	"insightx/internal/platform/config"
)

const confirmationSubject = "Registration Confirmed for Insight X!"

// eventDate is a fixed literal: the copy announces one event, it is not
// request-derived.
const eventDate = "October 13th, 2025"

const confirmationBody = `<h1>Welcome to Insight X, {{.FullName}}!</h1>` +
	`<p>Thank you for registering. We're thrilled to have you join us for our Campus to Corporate event.</p>` +
	`<p><b>Event Date:</b> {{.EventDate}}</p>` +
	`<p>Best regards,</p>` +
	`<p><b>Alumni Cell KJSSE</b></p>`

// Dispatcher submits confirmation emails to the configured SMTP relay.
type Dispatcher struct {
	client   *gomail.Client
	tmpl     *template.Template
	fromName string
	fromAddr string
	logger   *slog.Logger
}

// New constructs a Dispatcher with a pooled SMTP client. The client is
// process-wide; SendConfirmation dials per message.
func New(smtp config.SMTP, sender config.Mail, logger *slog.Logger) (*Dispatcher, error) {
	client, err := gomail.NewClient(smtp.Host,
		gomail.WithPort(smtp.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(smtp.Username),
		gomail.WithPassword(smtp.Password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	tmpl, err := template.New("confirmation").Parse(confirmationBody)
	if err != nil {
		return nil, fmt.Errorf("confirmation template: %w", err)
	}
	return &Dispatcher{
		client:   client,
		tmpl:     tmpl,
		fromName: sender.FromName,
		fromAddr: sender.FromAddress,
		logger:   logger,
	}, nil
}

// SendConfirmation formats and sends one confirmation email to the registrant.
// Success and failure are reported distinctly so the caller decides whether a
// dispatch failure affects the request outcome.
func (d *Dispatcher) SendConfirmation(ctx context.Context, recipientName, recipientEmail string) error {
	body, err := renderConfirmation(d.tmpl, recipientName)
	if err != nil {
		return fmt.Errorf("render confirmation: %w", err)
	}

	msg := gomail.NewMsg()
	if err := msg.FromFormat(d.fromName, d.fromAddr); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.AddToFormat(recipientName, recipientEmail); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(confirmationSubject)
	msg.SetBodyString(gomail.TypeTextHTML, body)

	if err := d.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send confirmation to %s: %w", recipientEmail, err)
	}
	d.logger.InfoContext(ctx, "confirmation email sent", "recipient", recipientEmail)
	return nil
}

func renderConfirmation(tmpl *template.Template, fullName string) (string, error) {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, struct {
		FullName  string
		EventDate string
	}{FullName: fullName, EventDate: eventDate})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
