// Package contact forwards inquiry forms to an external form relay.
package contact

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/estimatecheck/marketplace/internal/domain"
	"github.com/estimatecheck/marketplace/internal/logger"
)

// Inquiry is a message from the contact form.
type Inquiry struct {
	Name    string
	Email   string
	Subject string
	Message string
	// PageURL is the page the visitor was on, when known.
	PageURL string
}

// Validate checks the fields the relay requires.
func (i Inquiry) Validate() error {
	if strings.TrimSpace(i.Email) == "" || !strings.Contains(i.Email, "@") {
		return fmt.Errorf("email is required: %w", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(i.Message) == "" {
		return fmt.Errorf("message is required: %w", domain.ErrInvalidInput)
	}
	return nil
}

func (i Inquiry) form() url.Values {
	v := url.Values{}
	v.Set("email", strings.TrimSpace(i.Email))
	v.Set("message", strings.TrimSpace(i.Message))
	if s := strings.TrimSpace(i.Name); s != "" {
		v.Set("name", s)
	}
	if s := strings.TrimSpace(i.Subject); s != "" {
		v.Set("_subject", s)
	}
	if s := strings.TrimSpace(i.PageURL); s != "" {
		v.Set("page_url", s)
	}
	return v
}

// Config holds the relay settings.
type Config struct {
	Endpoint string
	Timeout  time.Duration
	// Client overrides the HTTP client, mainly for tests.
	Client *http.Client
}

// Relay posts inquiries to a form endpoint that answers JSON when asked to.
type Relay struct {
	endpoint string
	client   *http.Client
}

// NewRelay creates a relay. An empty endpoint yields a relay that rejects
// every message with domain.ErrRelayNotConfigured.
func NewRelay(cfg Config) *Relay {
	client := cfg.Client
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Relay{endpoint: cfg.Endpoint, client: client}
}

// Send validates and forwards one inquiry.
func (r *Relay) Send(ctx context.Context, in Inquiry) error {
	if r.endpoint == "" {
		return domain.ErrRelayNotConfigured
	}
	if err := in.Validate(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(in.form().Encode()))
	if err != nil {
		return fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("post inquiry: %w: %w", domain.ErrRelayFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	logger.FromContext(ctx).Debug("contact relay responded",
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("relay status %d: %s: %w", resp.StatusCode, strings.TrimSpace(string(body)), domain.ErrRelayFailed)
	}
	return nil
}
