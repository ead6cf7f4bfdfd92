package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	apperrors "github.com/ross7390/meeting-maestro/errors"
	"github.com/ross7390/meeting-maestro/pkg/config"
)

// TemplateParams carries every field the email template references. The API
// requires all of them to be present, so none are omitempty: a missing value
// serializes as an empty string.
type TemplateParams struct {
	ToEmail       string `json:"to_email"`
	ToName        string `json:"to_name"`
	FromName      string `json:"from_name"`
	FromEmail     string `json:"from_email"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
	MeetingTitle  string `json:"meeting_title"`
	MeetingDate   string `json:"meeting_date"`
	RecipientName string `json:"recipient_name"`
}

// sendRequest is the wire shape of one send call.
type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams TemplateParams `json:"template_params"`
}

// Client is a minimal client for the transactional-email API. One call per
// logical send; no retry.
type Client struct {
	cfg    *config.EmailJSConfig
	client *http.Client
}

// NewClient creates a client from the provided config.
func NewClient(cfg *config.EmailJSConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// Send submits one email. Non-2xx responses surface as a delivery error
// carrying the upstream status and body.
func (c *Client) Send(ctx context.Context, params TemplateParams) error {
	body := sendRequest{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     c.cfg.TemplateID,
		UserID:         c.cfg.PublicKey,
		TemplateParams: params,
	}

	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.cfg.Endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return apperrors.ErrDeliveryFailed(resp.StatusCode, string(respBody))
	}

	return nil
}
