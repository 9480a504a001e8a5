// Package provider fetches export candidates from the Recipe Pixie API.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// StatusError reports a non-success response from the provider, as
// opposed to a transport failure.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider returned %d: %s", e.Status, e.Body)
}

type exportResponse struct {
	Success bool            `json:"success"`
	Recipe  json.RawMessage `json:"recipe"`
	Message string          `json:"message"`
}

type Client struct {
	url    string
	apiKey string
	http   *http.Client
}

func New(url, apiKey string, timeout time.Duration) *Client {
	return &Client{url: url, apiKey: apiKey, http: &http.Client{Timeout: timeout}}
}

// Fetch asks the provider for its next export candidate. A nil recipe
// with a nil error means the provider had nothing to offer; msg carries
// its reason. The raw candidate JSON is returned alongside the decoded
// recipe so callers can retain the original payload.
func (c *Client) Fetch(ctx context.Context) (rec *ExternalRecipe, raw json.RawMessage, msg string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, nil, "", err
	}
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, nil, "", err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, nil, "", &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var out exportResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, nil, "", fmt.Errorf("decode provider response: %w", err)
	}
	if !out.Success || len(out.Recipe) == 0 || string(out.Recipe) == "null" {
		msg := out.Message
		if msg == "" {
			msg = "No recipe available for export"
		}
		return nil, nil, msg, nil
	}

	rec = &ExternalRecipe{}
	if err := json.Unmarshal(out.Recipe, rec); err != nil {
		return nil, nil, "", fmt.Errorf("decode candidate: %w", err)
	}
	return rec, out.Recipe, "", nil
}
