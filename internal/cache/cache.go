package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"tripteller/internal/itinerary"
)

// ItineraryCache is a soft response cache at the HTTP edge. The itinerary core
// stays cache-free; the handler consults this before calling Generate. A nil
// *ItineraryCache is valid and behaves as a permanent miss, which is how the
// service runs when Redis is not configured.
type ItineraryCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *ItineraryCache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &ItineraryCache{rdb: rdb, ttl: ttl}
}

// Key derives a cache key from the request fields that influence the prompt.
func Key(req itinerary.Request) string {
	parts := []string{
		"itinerary",
		strings.ToLower(strings.TrimSpace(req.Destination)),
		fmt.Sprintf("%d", req.Days),
		string(req.Pace),
		strings.ToLower(strings.Join(req.Preferences, ",")),
	}
	if req.Location != nil {
		parts = append(parts, strings.ToLower(req.Location.State), strings.ToLower(req.Location.Country))
	}
	return strings.Join(parts, ":")
}

// Get returns the cached itinerary for key, if any. Redis errors degrade to a
// miss; the cache must never take the itinerary path down.
func (c *ItineraryCache) Get(ctx context.Context, key string) (itinerary.Itinerary, bool) {
	if c == nil || c.rdb == nil {
		return itinerary.Itinerary{}, false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return itinerary.Itinerary{}, false
	}
	var it itinerary.Itinerary
	if err := json.Unmarshal(data, &it); err != nil {
		return itinerary.Itinerary{}, false
	}
	return it, true
}

// Set stores the itinerary under key. Errors are ignored for the same reason
// as in Get.
func (c *ItineraryCache) Set(ctx context.Context, key string, it itinerary.Itinerary) {
	if c == nil || c.rdb == nil {
		return
	}
	data, err := json.Marshal(it)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key, data, c.ttl)
}
