package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"flute-live-api/internal/pkg/config"
	"flute-live-api/internal/pkg/errs"
)

const resendEndpoint = "https://api.resend.com/emails"

type resendPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	ReplyTo string `json:"reply_to,omitempty"`
}

// ResendMailer dispatches mail through the Resend HTTP API.
type ResendMailer struct {
	endpoint string
	apiKey   string
	from     string
	replyTo  string
	client   *http.Client
	logger   *slog.Logger
}

func NewResendMailer(cfg config.MailConfig, logger *slog.Logger) *ResendMailer {
	return &ResendMailer{
		endpoint: resendEndpoint,
		apiKey:   cfg.ResendAPIKey,
		from:     cfg.From,
		replyTo:  cfg.ReplyTo,
		client:   &http.Client{Timeout: 15 * time.Second},
		logger:   logger,
	}
}

func (m *ResendMailer) Send(ctx context.Context, msg Message) error {
	payload := resendPayload{
		From:    m.from,
		To:      msg.To,
		Subject: msg.Subject,
		Text:    msg.Text,
		ReplyTo: m.replyTo,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode resend payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build resend request")
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "failed to send email via resend")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return errs.Newf("resend API error: %s", resp.Status)
	}

	m.logger.Info("confirmation email sent", "to", msg.To)
	return nil
}

// LogMailer is the fallback when no API key is configured: it writes the
// would-be mail to the log so local development never needs credentials.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.logger.Warn("RESEND_API_KEY not set, logging email instead of sending",
		"to", msg.To,
		"subject", msg.Subject,
		"body_length", len(msg.Text),
	)
	return nil
}

// NewMailer picks the real client or the log fallback based on configuration.
func NewMailer(cfg config.MailConfig, logger *slog.Logger) Mailer {
	if cfg.ResendAPIKey == "" {
		return NewLogMailer(logger)
	}
	return NewResendMailer(cfg, logger)
}
