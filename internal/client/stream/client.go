// Package stream is the client for the managed chat transport: a websocket
// connection for live deliveries plus a REST endpoint for history pages.
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/carebridge/chat-gateway/internal/config"
	"github.com/carebridge/chat-gateway/internal/model"
)

// TokenSource supplies a fresh connect token for (re)connection.
type TokenSource func(ctx context.Context) (string, error)

type Handler func(model.TransportEvent)

type Client struct {
	wsURL       string
	baseURL     string
	apiKey      string
	historySize int
	httpClient  *http.Client

	mu       sync.Mutex
	conn     *websocket.Conn
	handlers map[int]Handler
	nextID   int
	closed   bool
}

func New(cfg *config.Config) *Client {
	return &Client{
		wsURL:       cfg.Stream.WSURL,
		baseURL:     cfg.Stream.BaseURL,
		apiKey:      cfg.Stream.APIKey,
		historySize: cfg.Stream.HistorySize,
		httpClient: &http.Client{
			Timeout: cfg.Stream.Timeout,
		},
		handlers: make(map[int]Handler),
	}
}

// Connect dials the transport websocket as the given user and starts the
// read loop. On a token-lifecycle event it attempts one silent reconnect
// with a fresh token before giving up.
func (c *Client) Connect(ctx context.Context, userID string, tokens TokenSource) error {
	token, err := tokens(ctx)
	if err != nil {
		return fmt.Errorf("failed to obtain connect token: %w", err)
	}

	if err := c.dial(ctx, userID, token); err != nil {
		return err
	}

	go c.readLoop(ctx, userID, tokens)
	return nil
}

func (c *Client) dial(ctx context.Context, userID, token string) error {
	u, err := url.Parse(c.wsURL)
	if err != nil {
		return fmt.Errorf("invalid transport url: %w", err)
	}
	q := u.Query()
	q.Set("user", userID)
	q.Set("token", token)
	u.RawQuery = q.Encode()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to connect to transport: %w", err)
	}

	c.mu.Lock()
	if c.conn != nil {
		_ = c.conn.Close()
	}
	c.conn = conn
	c.mu.Unlock()

	return nil
}

func (c *Client) readLoop(ctx context.Context, userID string, tokens TokenSource) {
	for {
		c.mu.Lock()
		conn := c.conn
		closed := c.closed
		c.mu.Unlock()

		if closed || conn == nil {
			return
		}

		var event model.TransportEvent
		if err := conn.ReadJSON(&event); err != nil {
			if ctx.Err() != nil || c.isClosed() {
				return
			}
			// One silent reconnect; a failed redial ends the loop and the
			// caller's next send surfaces the error.
			token, tokenErr := tokens(ctx)
			if tokenErr != nil {
				return
			}
			if dialErr := c.dial(ctx, userID, token); dialErr != nil {
				return
			}
			continue
		}

		if event.Event == model.EventTokenExpiring {
			token, tokenErr := tokens(ctx)
			if tokenErr == nil {
				_ = c.dial(ctx, userID, token)
			}
			continue
		}

		c.dispatch(event)
	}
}

func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Client) dispatch(event model.TransportEvent) {
	c.mu.Lock()
	handlers := make([]Handler, 0, len(c.handlers))
	for _, h := range c.handlers {
		handlers = append(handlers, h)
	}
	c.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}

// Subscribe registers a handler for transport events and returns its
// unsubscribe function.
func (c *Client) Subscribe(h Handler) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.handlers[id] = h

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.handlers, id)
	}
}

// Send writes an outbound delivery on the websocket.
func (c *Client) Send(ctx context.Context, d model.Delivery) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return fmt.Errorf("transport is not connected")
	}
	if err := c.conn.WriteJSON(d); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// History fetches a page of recent deliveries for the conversation with
// targetID through the transport's REST endpoint.
func (c *Client) History(ctx context.Context, targetID string, limit int, before string) ([]model.Delivery, error) {
	if limit <= 0 {
		limit = c.historySize
	}

	u := fmt.Sprintf("%s/v1/history?target=%s&limit=%d", c.baseURL, url.QueryEscape(targetID), limit)
	if before != "" {
		u += "&before=" + url.QueryEscape(before)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "apikey "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var page struct {
		Deliveries []model.Delivery `json:"deliveries"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return page.Deliveries, nil
}

func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	c.httpClient.CloseIdleConnections()
}
