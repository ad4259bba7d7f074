package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/intern-portal/internal/config"
	"github.com/MKhiriev/intern-portal/internal/logger"
	"github.com/MKhiriev/intern-portal/internal/utils"
	"github.com/MKhiriev/intern-portal/models"
)

const sendEmailPath = "/api/send-email"

// HTTPMailer posts messages to the mail API.
type HTTPMailer struct {
	client   *utils.HTTPClient
	composer resetComposer
	logger   *logger.Logger
}

// newHTTPMailer returns a mailer for the API at cfg.APIAddress.
func newHTTPMailer(cfg config.Mail, composer resetComposer, log *logger.Logger) (*HTTPMailer, error) {
	baseURL, err := normalizeBaseURL(cfg.APIAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid mail api address: %w", err)
	}

	return &HTTPMailer{
		client:   utils.NewHTTPClient(baseURL, cfg.Timeout),
		composer: composer,
		logger:   log,
	}, nil
}

// NewHTTPSender returns the mail API client used by the mail dispatcher.
func NewHTTPSender(cfg config.Mail, log *logger.Logger) (MessageSender, error) {
	m, err := newHTTPMailer(cfg, resetComposer{}, log)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *HTTPMailer) SendPasswordResetEmail(ctx context.Context, email, token, displayName string) error {
	msg, err := m.composer.compose(email, token, displayName)
	if err != nil {
		return err
	}
	return m.Send(ctx, msg)
}

// Send posts msg to the mail API.
func (m *HTTPMailer) Send(ctx context.Context, msg models.MailMessage) error {
	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(msg).
		Post(sendEmailPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMailDeliveryFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Warn().Int("status", resp.StatusCode()).Msg("mail api refused message")
		return err
	}
	return nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
