package partnerapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Config holds partner API configuration
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client talks to the distribution partner's public API. It is read-only:
// the dashboard pulls seasonal events and press mentions, never writes.
type Client struct {
	httpClient *http.Client
	config     Config
}

// Event is a platform-wide seasonal sale window as the partner reports it
type Event struct {
	ExternalID       string `json:"id"`
	PlatformCode     string `json:"platform"`
	Name             string `json:"name"`
	StartDate        string `json:"start_date"` // YYYY-MM-DD
	EndDate          string `json:"end_date"`   // YYYY-MM-DD
	RequiresCooldown bool   `json:"requires_cooldown"`
}

// Mention is a piece of press coverage the partner's crawler picked up
type Mention struct {
	ExternalID  string  `json:"id"`
	ProductSlug string  `json:"product"`
	OutletName  string  `json:"outlet"`
	URL         string  `json:"url"`
	Headline    string  `json:"headline"`
	Author      string  `json:"author,omitempty"`
	Kind        string  `json:"kind"` // review, preview, news, interview, video
	Score       *int    `json:"score,omitempty"`
	Sentiment   string  `json:"sentiment,omitempty"`
	PublishedAt string  `json:"published_at"` // RFC3339
	Cursor      float64 `json:"cursor"`
}

// NewClient creates a partner API client
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		config:     cfg,
	}
}

// ListEvents returns the partner's seasonal events overlapping the given
// date range (both YYYY-MM-DD).
func (c *Client) ListEvents(ctx context.Context, from, to string) ([]Event, error) {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)

	var out struct {
		Events []Event `json:"events"`
	}
	if err := c.get(ctx, "/v1/events", q, &out); err != nil {
		return nil, err
	}
	return out.Events, nil
}

// ListMentions returns press mentions newer than the given cursor.
// The returned cursor from the last mention resumes the next pull.
func (c *Client) ListMentions(ctx context.Context, since float64, limit int) ([]Mention, error) {
	q := url.Values{}
	q.Set("since", fmt.Sprintf("%.0f", since))
	q.Set("limit", fmt.Sprintf("%d", limit))

	var out struct {
		Mentions []Mention `json:"mentions"`
	}
	if err := c.get(ctx, "/v1/mentions", q, &out); err != nil {
		return nil, err
	}
	return out.Mentions, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out interface{}) error {
	if c == nil || c.httpClient == nil {
		return fmt.Errorf("partner client is not initialized")
	}
	if strings.TrimSpace(c.config.BaseURL) == "" {
		return fmt.Errorf("partner config error: base_url is empty")
	}

	u := strings.TrimRight(c.config.BaseURL, "/") + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("partner api call failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("partner api call failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("partner api call failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("partner api returned non-2xx status: %d, body: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse partner response: %w", err)
	}
	return nil
}
