// Package webhook performs the outbound relay call to the configured
// automation endpoints.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"notebook-relay/internal/models"
)

// Response is the classified outcome of a successful relay call. JSON is
// set when the upstream body parsed as JSON; RawBody always carries the
// body text so callers can fall back to it.
type Response struct {
	StatusCode int
	JSON       json.RawMessage
	RawBody    string
}

// Client sends JSON payloads to webhook endpoints. Safe for concurrent use.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a webhook client with a bounded request timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// PostJSON sends payload to webhookURL as a JSON POST. An Authorization
// header is attached when authToken is non-empty. A single attempt is made;
// failures are classified as transport (call could not be established) or
// upstream (non-success HTTP status) and are terminal for the invocation.
func (c *Client) PostJSON(ctx context.Context, webhookURL string, payload interface{}, authToken string) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, models.WrapRelayError(models.ErrorKindInternal, err, "failed to marshal payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return nil, models.WrapRelayError(models.ErrorKindInternal, err, "failed to create request for %s", webhookURL)
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, models.WrapRelayError(models.ErrorKindTransport, err, "request to %s failed", webhookURL)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.WrapRelayError(models.ErrorKindTransport, err, "failed to read response from %s", webhookURL)
	}

	if resp.StatusCode >= 400 {
		return nil, models.NewRelayError(models.ErrorKindUpstream,
			"webhook returned status %d %s: %s", resp.StatusCode, http.StatusText(resp.StatusCode), string(respBody))
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		RawBody:    string(respBody),
	}
	if json.Valid(respBody) {
		result.JSON = json.RawMessage(respBody)
	}

	return result, nil
}
