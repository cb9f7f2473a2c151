// Package care is the client for the care-platform REST API: coach details,
// call scheduling and chat summaries. No logic lives here beyond relaying.
package care

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/carebridge/chat-gateway/internal/config"
	"github.com/carebridge/chat-gateway/internal/model"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type Coach struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ProfilePhoto string `json:"profile_photo"`
}

type ScheduledCall struct {
	ScheduleID string `json:"schedule_id"`
	CoachID    string `json:"coach_id"`
	Time       int64  `json:"time"`
	Kind       string `json:"kind"`
}

type ChatSummary struct {
	PeerID               string `json:"peer_id"`
	LastMessageContent   string `json:"last_message_content"`
	LastMessageTimestamp string `json:"last_message_timestamp"`
	UnreadCount          int    `json:"unread_count"`
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Care.BaseURL,
		apiKey:  cfg.Care.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Care.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) GetCoach(ctx context.Context, userID string) (*Coach, error) {
	var coach Coach
	path := fmt.Sprintf("/v1/users/%s/coach", url.PathEscape(userID))
	if err := c.do(ctx, http.MethodGet, path, nil, &coach); err != nil {
		return nil, fmt.Errorf("failed to fetch coach details: %w", err)
	}
	return &coach, nil
}

func (c *Client) ScheduleCall(ctx context.Context, userID, coachID string, at int64, kind string) (*ScheduledCall, error) {
	if kind == "" {
		kind = string(model.TypeVideoCall)
	}

	body := map[string]interface{}{
		"user_id":  userID,
		"coach_id": coachID,
		"time":     at,
		"kind":     kind,
	}

	var scheduled ScheduledCall
	if err := c.do(ctx, http.MethodPost, "/v1/calls/schedule", body, &scheduled); err != nil {
		return nil, fmt.Errorf("failed to schedule call: %w", err)
	}
	return &scheduled, nil
}

func (c *Client) CancelCall(ctx context.Context, userID, scheduleID string) error {
	path := fmt.Sprintf("/v1/calls/schedule/%s?user_id=%s", url.PathEscape(scheduleID), url.QueryEscape(userID))
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to cancel scheduled call: %w", err)
	}
	return nil
}

func (c *Client) GetChatSummary(ctx context.Context, userID string) (*ChatSummary, error) {
	var summary ChatSummary
	path := fmt.Sprintf("/v1/users/%s/chat-summary", url.PathEscape(userID))
	if err := c.do(ctx, http.MethodGet, path, nil, &summary); err != nil {
		return nil, fmt.Errorf("failed to fetch chat summary: %w", err)
	}
	return &summary, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewBuffer(jsonData)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
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

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
