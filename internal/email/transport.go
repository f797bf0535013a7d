package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/wneessen/go-mail"
)

// Transport delivers one welcome message. Implementations report a
// missing configuration as a send failure so the fallback chain can take
// over without dialing anything.
type Transport interface {
	Name() string
	Configured() bool
	Send(ctx context.Context, toEmail, toName string) error
}

// apiTransport sends through the Brevo transactional REST API.
type apiTransport struct {
	apiKey      string
	apiURL      string
	senderName  string
	senderEmail string
	client      *http.Client
}

func newAPITransport(apiKey, apiURL, senderName, senderEmail string) *apiTransport {
	return &apiTransport{
		apiKey:      apiKey,
		apiURL:      apiURL,
		senderName:  senderName,
		senderEmail: senderEmail,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (t *apiTransport) Name() string { return "brevo-api" }

func (t *apiTransport) Configured() bool { return t.apiKey != "" }

type apiParty struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type apiPayload struct {
	Sender      apiParty   `json:"sender"`
	To          []apiParty `json:"to"`
	Subject     string     `json:"subject"`
	HTMLContent string     `json:"htmlContent"`
}

func (t *apiTransport) Send(ctx context.Context, toEmail, toName string) error {
	if !t.Configured() {
		return fmt.Errorf("brevo api key not configured")
	}

	body, err := json.Marshal(apiPayload{
		Sender:      apiParty{Name: t.senderName, Email: t.senderEmail},
		To:          []apiParty{{Name: toName, Email: toEmail}},
		Subject:     welcomeSubject,
		HTMLContent: welcomeHTML(toName),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", t.apiKey)
	req.Header.Set("content-type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// Brevo answers 201 for an accepted message; anything else is a failure.
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("email api responded with status %d", resp.StatusCode)
	}

	return nil
}

// smtpTransport sends through an authenticated SMTP relay with
// opportunistic STARTTLS.
type smtpTransport struct {
	name        string
	host        string
	port        int
	username    string
	password    string
	senderName  string
	senderEmail string
}

func newSMTPTransport(name, host string, port int, username, password, senderName, senderEmail string) *smtpTransport {
	return &smtpTransport{
		name:        name,
		host:        host,
		port:        port,
		username:    username,
		password:    password,
		senderName:  senderName,
		senderEmail: senderEmail,
	}
}

func (t *smtpTransport) Name() string { return t.name }

func (t *smtpTransport) Configured() bool { return t.username != "" && t.password != "" }

func (t *smtpTransport) Send(ctx context.Context, toEmail, toName string) error {
	if !t.Configured() {
		return fmt.Errorf("%s credentials not configured", t.name)
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(t.senderName, t.senderEmail); err != nil {
		return err
	}
	if err := msg.AddToFormat(toName, toEmail); err != nil {
		return err
	}
	msg.Subject(welcomeSubject)
	msg.SetBodyString(mail.TypeTextHTML, welcomeHTML(toName))

	client, err := mail.NewClient(t.host,
		mail.WithPort(t.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(t.username),
		mail.WithPassword(t.password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return err
	}

	return client.DialAndSendWithContext(ctx, msg)
}
