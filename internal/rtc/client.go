package rtc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/carebridge/chat-gateway/internal/config"
)

// Client drives the RTC vendor's server-side track subscription API. A 404
// or 409 means the peer is not (yet) visible in the channel, which is the
// transient window the subscriber retries through.
type Client struct {
	baseURL    string
	appID      string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.RTC.BaseURL,
		appID:   cfg.RTC.AppID,
		apiKey:  cfg.RTC.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.RTC.Timeout,
		},
	}
}

func (c *Client) Subscribe(ctx context.Context, userID, kind string) error {
	return c.post(ctx, "subscribe", userID, kind)
}

func (c *Client) Unsubscribe(ctx context.Context, userID, kind string) error {
	return c.post(ctx, "unsubscribe", userID, kind)
}

func (c *Client) post(ctx context.Context, action, userID, kind string) error {
	body := map[string]interface{}{
		"app_id":  c.appID,
		"user_id": userID,
		"kind":    kind,
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/tracks/"+action, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "apikey "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound, http.StatusConflict:
		return ErrPeerNotInChannel
	default:
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
