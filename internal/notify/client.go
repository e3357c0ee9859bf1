// Package notify delivers completed outlines to a configured callback
// endpoint.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"outliner/internal/outline"
)

// Client POSTs outline results to a webhook URL.
type Client struct {
	callbackURL string
	apiKey      string
	httpClient  *http.Client
}

func NewClient(callbackURL, apiKey string) *Client {
	return &Client{
		callbackURL: callbackURL,
		apiKey:      apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Payload is the body POSTed to the callback endpoint.
type Payload struct {
	JobID    string          `json:"job_id"`
	DocID    string          `json:"doc_id"`
	Filename string          `json:"filename"`
	Outline  outline.Outline `json:"outline"`
}

// PostOutline delivers one completed outline. A non-2xx response is an
// error; the caller decides whether delivery failure matters.
func (c *Client) PostOutline(ctx context.Context, p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.callbackURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post outline: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("callback returned status %d", resp.StatusCode)
	}
	return nil
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
