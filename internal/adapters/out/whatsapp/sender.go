// Package whatsapp sends messages through the WhatsApp Cloud API.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/notification"
	"pharmacy/internal/core/ports"
	"pharmacy/internal/pkg/errs"
)

const (
	dependency      = "whatsapp"
	DefaultBaseURL  = "https://graph.facebook.com/v21.0"
	maxErrorBodyLen = 512
)

type Config struct {
	BaseURL       string
	AccessToken   string
	PhoneNumberID string
	Timeout       time.Duration
}

// Sender implements ports.MessageSender. It is safe for concurrent use.
type Sender struct {
	client   *http.Client
	endpoint string
	token    string
}

var _ ports.MessageSender = (*Sender)(nil)

func NewSender(cfg Config) (*Sender, error) {
	if cfg.PhoneNumberID == "" {
		return nil, errs.NewValueIsRequiredError("whatsapp phone number id")
	}
	if cfg.AccessToken == "" {
		return nil, errs.NewValueIsRequiredError("whatsapp access token")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Sender{
		client:   &http.Client{Timeout: timeout},
		endpoint: strings.TrimRight(baseURL, "/") + "/" + cfg.PhoneNumberID + "/messages",
		token:    cfg.AccessToken,
	}, nil
}

// Send posts message to recipient. Any non-2xx answer is returned as an
// error matching errs.ErrDependencyFailure.
func (s *Sender) Send(ctx context.Context, recipient kernel.Phone, message notification.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(newPayload(recipient, message))
	if err != nil {
		return fmt.Errorf("encode whatsapp message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build whatsapp request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return errs.NewDependencyFailureError(dependency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		return errs.NewDependencyFailureError(dependency,
			fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail))))
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}
