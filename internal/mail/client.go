package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/victoreder/admin-hublabel-sub000/internal/config"
)

// Message is one outbound email.
type Message struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	From    string   `json:"from,omitempty"`
}

// Mailer sends a message to the upstream mail provider. One attempt, no retry.
type Mailer interface {
	Send(ctx context.Context, msg Message) (messageID string, err error)
}

// Client posts messages to the configured mail endpoint.
type Client struct {
	endpointURL string
	apiKey      string
	from        string
	httpClient  *http.Client
}

// NewClient builds a mail client from config.
func NewClient(cfg config.MailConfig) *Client {
	return &Client{
		endpointURL: cfg.EndpointURL,
		apiKey:      cfg.APIKey,
		from:        cfg.From,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Send performs a single POST to the mail endpoint and returns the provider
// message id on success.
func (c *Client) Send(ctx context.Context, msg Message) (string, error) {
	if c.endpointURL == "" {
		return "", fmt.Errorf("mail endpoint not configured")
	}
	if msg.From == "" {
		msg.From = c.from
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("mail endpoint returned status %d", resp.StatusCode)
	}

	var result struct {
		MessageID string `json:"messageId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.MessageID, nil
}
