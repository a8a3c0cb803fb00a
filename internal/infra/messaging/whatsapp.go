// Package messaging delivers WhatsApp messages through a Twilio-compatible REST gateway.
package messaging

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
)

const whatsappScheme = "whatsapp:"

var ErrNotConfigured = errs.New("whatsapp gateway not configured")

type WhatsAppSender struct {
	endpoint   string
	accountSID string
	authToken  string
	from       string
	http       *http.Client
}

func NewWhatsAppSender(cfg config.WhatsAppConfig) *WhatsAppSender {
	base := strings.TrimRight(strings.TrimSpace(cfg.APIBase), "/")
	return &WhatsAppSender{
		endpoint:   base + "/2010-04-01/Accounts/" + url.PathEscape(cfg.AccountSID) + "/Messages.json",
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		from:       addressOf(cfg.From),
		http:       &http.Client{Timeout: cfg.Timeout},
	}
}

func (s *WhatsAppSender) ProviderID() string {
	return "whatsapp-twilio"
}

// Send posts one message. to is a normalized digit string.
func (s *WhatsAppSender) Send(ctx context.Context, to, body string) error {
	form := url.Values{}
	form.Set("From", s.from)
	form.Set("To", addressOf(to))
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to build whatsapp request"), errs.ErrSendFailed)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(s.accountSID, s.authToken)

	resp, err := s.http.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "whatsapp gateway unreachable"), errs.ErrSendFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.Mark(errs.Newf("whatsapp gateway returned %d: %s", resp.StatusCode, gatewayMessage(resp.Body)), errs.ErrSendFailed)
	}
	return nil
}

// addressOf prefixes a number with + and the whatsapp: channel scheme unless already present.
func addressOf(number string) string {
	number = strings.TrimSpace(number)
	if strings.HasPrefix(number, whatsappScheme) {
		return number
	}
	if !strings.HasPrefix(number, "+") {
		number = "+" + number
	}
	return whatsappScheme + number
}

func gatewayMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	if err := json.Unmarshal(raw, &payload); err != nil || payload.Message == "" {
		return strings.TrimSpace(string(raw))
	}
	return payload.Message
}

// NoopSender stands in when no gateway credentials are configured: every
// attempt is reported as not sent.
type NoopSender struct {
	logger *slog.Logger
}

func NewNoopSender(logger *slog.Logger) *NoopSender {
	return &NoopSender{logger: logger}
}

func (s *NoopSender) ProviderID() string {
	return "whatsapp-noop"
}

func (s *NoopSender) Send(_ context.Context, to, _ string) error {
	s.logger.Warn("WhatsApp gateway not configured, message dropped", slog.String("to", to))
	return errs.Mark(ErrNotConfigured, errs.ErrSendFailed)
}
