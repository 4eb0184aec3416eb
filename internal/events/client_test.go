package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient("test-token")
	c.endpoint = srv.URL
	return c
}

func TestSearch_ReturnsEventsInOrder(t *testing.T) {
	var gotAuth, gotCity string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotCity = r.URL.Query().Get("location.address")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"events": []map[string]any{
				{
					"name":  map[string]any{"text": "Jazz Festival"},
					"url":   "https://example.com/jazz",
					"start": map[string]any{"local": "2026-09-02T19:00:00"},
				},
				{
					"name":  map[string]any{"text": "Food Fair"},
					"url":   "https://example.com/food",
					"start": map[string]any{"local": "2026-09-03T11:00:00"},
				},
			},
		})
	})

	events, err := c.Search(context.Background(), "Tokyo", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "Tokyo", gotCity)
	require.Len(t, events, 2)
	assert.Equal(t, "Jazz Festival", events[0].Title)
	assert.Equal(t, "Food Fair", events[1].Title)
}

func TestSearch_EmptyResult(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"events": []any{}})
	})

	events, err := c.Search(context.Background(), "Nowhere", time.Now())
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestSearch_UpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	})

	_, err := c.Search(context.Background(), "Tokyo", time.Now())
	assert.ErrorContains(t, err, "401")
}

func TestSearch_NotConfigured(t *testing.T) {
	c := NewClient("")
	assert.False(t, c.Configured())
	_, err := c.Search(context.Background(), "Tokyo", time.Now())
	assert.Error(t, err)
}
