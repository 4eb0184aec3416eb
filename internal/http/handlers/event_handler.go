package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tripteller/internal/events"
)

// EventSearcher finds local happenings around the travel dates.
type EventSearcher interface {
	Search(ctx context.Context, city string, date time.Time) ([]events.Event, error)
}

type EventHandler struct {
	searcher EventSearcher
}

func NewEventHandler(searcher EventSearcher) *EventHandler {
	return &EventHandler{searcher: searcher}
}

type eventsReq struct {
	City string `json:"city"`
	Date string `json:"date"`
}

// Search handles POST /api/events.
func (h *EventHandler) Search(c *gin.Context) {
	if h.searcher == nil {
		writeError(c, http.StatusServiceUnavailable, "events are not configured")
		return
	}
	var body eventsReq
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(body.City) == "" {
		writeError(c, http.StatusBadRequest, "city is required")
		return
	}

	date := time.Now().UTC()
	if body.Date != "" {
		parsed, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			writeError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	found, err := h.searcher.Search(c.Request.Context(), body.City, date)
	if err != nil {
		writeError(c, http.StatusBadGateway, "event lookup failed")
		return
	}
	if found == nil {
		found = []events.Event{}
	}
	writeJSON(c, http.StatusOK, gin.H{"events": found})
}
