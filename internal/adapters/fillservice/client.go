// Package fillservice is the HTTP adapter for the remote document-fill
// service. The service accepts a {fields, checkboxes} payload for a named
// form template and streams back the rendered PDF; this client treats the
// response as opaque bytes and does not retry.
package fillservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aos-tools/intake-server/internal/forms"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Fill posts the payload to /fill/{slug} and returns the rendered document.
// Any failure — transport or non-2xx — comes back as a single descriptive
// error; the payload itself is always well formed, so a failed fill is
// attributable to the service or the network.
func (c *Client) Fill(ctx context.Context, slug string, payload forms.Payload) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode fill request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/fill/"+slug, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fill service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fill service returned %s for form %s: %s",
			resp.Status, slug, strings.TrimSpace(string(detail)))
	}
	return io.ReadAll(resp.Body)
}

// Fields lists the field names of a form template via /fields/{slug}.
func (c *Client) Fields(ctx context.Context, slug string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/fields/"+slug, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fill service unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fill service returned %s listing fields for %s",
			resp.Status, slug)
	}

	var parsed struct {
		Fields []struct {
			Name string `json:"name"`
		} `json:"fields"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode field list: %w", err)
	}
	names := make([]string, 0, len(parsed.Fields))
	for _, f := range parsed.Fields {
		names = append(names, f.Name)
	}
	return names, nil
}

// Health probes the service's /health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fill service unreachable: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fill service unhealthy: %s", resp.Status)
	}
	return nil
}
