// Package relay implements the generation.Generator interface against the
// pass-through relay endpoint: prompts are POSTed as JSON and the relay
// forwards them to the hosted text-generation service, returning its raw
// text. Retries, authentication, and timeouts are relay-layer concerns;
// this client makes exactly one attempt per call.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/lunalearn/luna-api/internal/generation"
)

// defaultTimeout bounds a single relay round trip when the caller's context
// carries no earlier deadline.
const defaultTimeout = 90 * time.Second

// generateRequest is the relay's request body.
type generateRequest struct {
	Prompt string `json:"prompt"`
}

// generateResponse is the relay's success body. On non-2xx statuses the
// relay returns {"error": "..."} instead.
type generateResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// Client implements generation.Generator by calling the relay endpoint.
type Client struct {
	logger     *slog.Logger
	httpClient *http.Client
	endpoint   string
}

// NewClient creates a relay-backed generator for the given endpoint URL.
func NewClient(logger *slog.Logger, endpoint string) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if endpoint == "" {
		return nil, fmt.Errorf("%w: relay endpoint cannot be empty", generation.ErrInvalidConfig)
	}

	return &Client{
		logger:     logger,
		httpClient: &http.Client{Timeout: defaultTimeout},
		endpoint:   endpoint,
	}, nil
}

// Generate posts the prompt to the relay and returns the text it relays
// back. A failed call and a non-2xx status are both classified as
// ErrTransport; a 2xx response without text is ErrEmptyResponse.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("%w: prompt cannot be empty", generation.ErrInvalidConfig)
	}

	body, err := json.Marshal(generateRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("failed to encode relay request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrTransport, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.WarnContext(ctx, "failed to close relay response body", "error", cerr)
		}
	}()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading relay response: %v", generation.ErrTransport, err)
	}

	var decoded generateResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return "", fmt.Errorf("%w: relay returned undecodable body (status %d)",
			generation.ErrTransport, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.WarnContext(ctx, "relay call failed",
			"status", resp.StatusCode,
			"relay_error", decoded.Error)
		return "", fmt.Errorf("%w: relay status %d: %s",
			generation.ErrTransport, resp.StatusCode, decoded.Error)
	}

	if decoded.Text == "" {
		return "", fmt.Errorf("%w: relay returned no text", generation.ErrEmptyResponse)
	}

	return decoded.Text, nil
}
