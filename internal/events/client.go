package events

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const eventbriteEndpoint = "https://www.eventbriteapi.com/v3/events/search/"

// Event is one local happening around the travel dates.
type Event struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Start string `json:"start"`
}

// Client wraps the Eventbrite search API.
type Client struct {
	token    string
	endpoint string
	client   *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		token:    token,
		endpoint: eventbriteEndpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether an API token is present. Used by the health check.
func (c *Client) Configured() bool { return c.token != "" }

type searchResponse struct {
	Events []struct {
		Name struct {
			Text string `json:"text"`
		} `json:"name"`
		URL   string `json:"url"`
		Start struct {
			Local string `json:"local"`
		} `json:"start"`
	} `json:"events"`
}

// Search returns events around the city starting on or after date, in the
// API's relevance order.
func (c *Client) Search(ctx context.Context, city string, date time.Time) ([]Event, error) {
	if c.token == "" {
		return nil, fmt.Errorf("events: api token not configured")
	}

	params := url.Values{}
	params.Set("location.address", city)
	params.Set("start_date.range_start", date.UTC().Format("2006-01-02T15:04:05"))
	params.Set("sort_by", "date")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("events: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("events: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("events: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("events: upstream status %d: %s", resp.StatusCode, body)
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("events: unmarshal response: %w", err)
	}

	out := make([]Event, 0, len(sr.Events))
	for _, e := range sr.Events {
		out = append(out, Event{
			Title: e.Name.Text,
			URL:   e.URL,
			Start: e.Start.Local,
		})
	}
	return out, nil
}
