// Package email composes and delivers the welcome message through one of
// three interchangeable transports with a single configured fallback.
// Delivery is best effort: failures are logged and never surfaced to the
// operation that triggered the send.
package email

import (
	"context"

	"go.uber.org/zap"
)

// Config selects and parameterizes the transports.
type Config struct {
	// Method selects the primary transport:
	// "api" (default), "smtp_brevo"/"smtp", or "smtp_gmail".
	Method string

	BrevoAPIKey      string
	BrevoAPIURL      string
	BrevoSenderEmail string
	BrevoSenderName  string

	BrevoSMTPServer   string
	BrevoSMTPPort     int
	BrevoSMTPLogin    string
	BrevoSMTPPassword string

	GmailSMTPServer   string
	GmailSMTPPort     int
	GmailSMTPUsername string
	GmailSMTPPassword string
	GmailSenderEmail  string
	GmailSenderName   string
}

// Service sends welcome emails over a primary transport with at most one
// fallback attempt. No retries, no backoff.
type Service struct {
	primary  Transport
	fallback Transport
	log      *zap.SugaredLogger
}

// New wires the transports according to cfg.Method. The fallback pairs
// mirror the deployment history: API falls back to Gmail SMTP, either
// SMTP profile falls back to the API.
func New(cfg Config, log *zap.SugaredLogger) *Service {
	api := newAPITransport(cfg.BrevoAPIKey, cfg.BrevoAPIURL, cfg.BrevoSenderName, cfg.BrevoSenderEmail)
	brevoSMTP := newSMTPTransport("brevo-smtp", cfg.BrevoSMTPServer, cfg.BrevoSMTPPort,
		cfg.BrevoSMTPLogin, cfg.BrevoSMTPPassword, cfg.BrevoSenderName, cfg.BrevoSenderEmail)
	gmailSMTP := newSMTPTransport("gmail-smtp", cfg.GmailSMTPServer, cfg.GmailSMTPPort,
		cfg.GmailSMTPUsername, cfg.GmailSMTPPassword, cfg.GmailSenderName, cfg.GmailSenderEmail)

	svc := &Service{log: log}
	switch cfg.Method {
	case "smtp_gmail":
		svc.primary, svc.fallback = gmailSMTP, api
	case "smtp_brevo", "smtp":
		svc.primary, svc.fallback = brevoSMTP, api
	default:
		svc.primary, svc.fallback = api, gmailSMTP
	}

	return svc
}

// SendWelcome delivers the welcome message to the new user. The returned
// error reports that both attempts failed; callers are expected to log it
// and move on, never to fail the triggering request.
func (s *Service) SendWelcome(ctx context.Context, toEmail, toName string) error {
	err := s.primary.Send(ctx, toEmail, toName)
	if err == nil {
		s.log.Infow("welcome email sent", "transport", s.primary.Name(), "to", toEmail)
		return nil
	}
	s.log.Warnw("welcome email failed", "transport", s.primary.Name(), "to", toEmail, "error", err)

	if !s.fallback.Configured() {
		return err
	}

	if err := s.fallback.Send(ctx, toEmail, toName); err != nil {
		s.log.Warnw("welcome email fallback failed", "transport", s.fallback.Name(), "to", toEmail, "error", err)
		return err
	}

	s.log.Infow("welcome email sent", "transport", s.fallback.Name(), "to", toEmail)
	return nil
}
