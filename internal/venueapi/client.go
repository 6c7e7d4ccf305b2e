package venueapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

type Config struct {
	BaseURL string
}

// Client is a typed wrapper around the remote venue API. It owns no state
// beyond connection plumbing; every durable entity lives on the other side.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	logger     *slog.Logger
}

// APIError is a non-2xx response from the venue API. Message carries the
// upstream "message" field when the body is JSON, so handlers can surface it
// verbatim to the user.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("venue api status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("venue api status %d: %s", e.StatusCode, e.Body)
}

func NewClient(cfg Config, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// WithToken returns a copy of the client that authenticates every request
// with the given bearer token. The zero token means unauthenticated calls,
// which is all the public storefront needs.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = strings.TrimSpace(token)
	return &clone
}

func (c *Client) do(ctx context.Context, method, pathPart string, in, out interface{}) error {
	var bodyReader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(payload)
	}

	target := c.baseURL + "/" + strings.TrimLeft(pathPart, "/")
	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(body),
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if c.logger != nil {
		c.logger.Debug("venue_api_response", "method", method, "path", pathPart, "status", resp.StatusCode)
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, pathPart, err)
	}
	return nil
}

func extractMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if strings.TrimSpace(envelope.Message) != "" {
		return strings.TrimSpace(envelope.Message)
	}
	return strings.TrimSpace(envelope.Error)
}

// UserMessage returns the upstream error message when the venue API supplied
// one, else the fallback. Non-API errors (timeouts, DNS) always use the
// fallback so transport detail never reaches the user.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
