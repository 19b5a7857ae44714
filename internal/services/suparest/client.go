// Package suparest writes source status records through the platform's
// PostgREST API. It is the fallback status store for deployments that only
// expose the platform URL and service role key, not a direct database
// connection.
package suparest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"notebook-relay/internal/models"
)

// Client performs update-by-key writes against the sources table.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// NewClient creates a REST status store client.
func NewClient(baseURL, serviceKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// MarkFailed transitions the source to failed with an error message.
func (c *Client) MarkFailed(ctx context.Context, sourceID, message string) error {
	return c.patchSource(ctx, sourceID, map[string]interface{}{
		"status":        string(models.SourceStatusFailed),
		"error_message": message,
		"updated_at":    time.Now().UTC().Format(time.RFC3339),
	})
}

// MarkCompleted transitions the source to completed with optional metadata.
func (c *Client) MarkCompleted(ctx context.Context, sourceID, title, summary string) error {
	fields := map[string]interface{}{
		"status":        string(models.SourceStatusCompleted),
		"error_message": nil,
		"updated_at":    time.Now().UTC().Format(time.RFC3339),
	}
	if title != "" {
		fields["title"] = title
	}
	if summary != "" {
		fields["summary"] = summary
	}
	return c.patchSource(ctx, sourceID, fields)
}

// Ping verifies the REST endpoint answers with the configured credentials.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/rest/v1/", nil)
	if err != nil {
		return err
	}
	c.setAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("status store unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("status store returned status %d", resp.StatusCode)
	}
	return nil
}

// patchSource issues a PATCH keyed by source_id.
func (c *Client) patchSource(ctx context.Context, sourceID string, fields map[string]interface{}) error {
	body, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to marshal status update: %w", err)
	}

	endpoint := c.baseURL + "/rest/v1/sources?source_id=eq." + url.QueryEscape(sourceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create status update request: %w", err)
	}
	c.setAuthHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("status update for source %s failed: %w", sourceID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status update for source %s returned status %d: %s",
			sourceID, resp.StatusCode, string(respBody))
	}

	return nil
}

func (c *Client) setAuthHeaders(req *http.Request) {
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
}
