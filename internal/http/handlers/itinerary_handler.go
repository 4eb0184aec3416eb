// README: Itinerary generation handler with edge caching and ticket enrichment.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripteller/internal/cache"
	"tripteller/internal/itinerary"
)

// Planner generates itineraries. Satisfied by *itinerary.Service.
type Planner interface {
	Generate(ctx context.Context, req itinerary.Request) (itinerary.Itinerary, error)
}

// TicketAnnotator fills in ticket guidance. Satisfied by *tickets.Service.
type TicketAnnotator interface {
	Annotate(it *itinerary.Itinerary)
}

type ItineraryHandler struct {
	planner Planner
	tickets TicketAnnotator
	cache   *cache.ItineraryCache
}

func NewItineraryHandler(planner Planner, tickets TicketAnnotator, c *cache.ItineraryCache) *ItineraryHandler {
	return &ItineraryHandler{planner: planner, tickets: tickets, cache: c}
}

type generateItineraryReq struct {
	City            string   `json:"city"`
	Days            int      `json:"days"`
	Intensity       string   `json:"intensity"`
	Preferences     []string `json:"preferences"`
	LocationContext *struct {
		State   string `json:"state"`
		Country string `json:"country"`
	} `json:"location_context"`
}

// Generate handles POST /api/generate-itinerary.
func (h *ItineraryHandler) Generate(c *gin.Context) {
	var body generateItineraryReq
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(body.City) == "" {
		writeError(c, http.StatusBadRequest, "city is required")
		return
	}

	req := itinerary.Request{
		Destination: strings.TrimSpace(body.City),
		Days:        body.Days,
		Pace:        itinerary.Pace(body.Intensity),
		Preferences: body.Preferences,
	}
	if body.LocationContext != nil {
		req.Location = &itinerary.LocationContext{
			State:   body.LocationContext.State,
			Country: body.LocationContext.Country,
		}
	}

	key := cache.Key(req)
	if it, ok := h.cache.Get(c.Request.Context(), key); ok {
		writeJSON(c, http.StatusOK, gin.H{"itinerary": it, "cached": true})
		return
	}

	it, err := h.planner.Generate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, itinerary.ErrInvalidRequest) {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	if h.tickets != nil {
		h.tickets.Annotate(&it)
	}
	h.cache.Set(c.Request.Context(), key, it)

	writeJSON(c, http.StatusOK, gin.H{"itinerary": it})
}
