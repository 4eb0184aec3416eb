package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripteller/internal/places"
)

// PlaceSearcher disambiguates a free-text destination query.
type PlaceSearcher interface {
	Search(ctx context.Context, query string) ([]places.Match, error)
}

type PlaceHandler struct {
	searcher PlaceSearcher
}

func NewPlaceHandler(searcher PlaceSearcher) *PlaceHandler {
	return &PlaceHandler{searcher: searcher}
}

type searchPlacesReq struct {
	Query string `json:"query"`
}

// Search handles POST /api/search-places.
func (h *PlaceHandler) Search(c *gin.Context) {
	if h.searcher == nil {
		writeError(c, http.StatusServiceUnavailable, "place search is not configured")
		return
	}
	var body searchPlacesReq
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(body.Query) == "" {
		writeError(c, http.StatusBadRequest, "query is required")
		return
	}

	matches, err := h.searcher.Search(c.Request.Context(), body.Query)
	if err != nil {
		writeError(c, http.StatusBadGateway, "place search failed")
		return
	}
	if matches == nil {
		matches = []places.Match{}
	}
	writeJSON(c, http.StatusOK, gin.H{"places": matches})
}
