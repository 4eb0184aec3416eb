package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripteller/internal/ai"
)

// HealthHandler reports liveness and which external services are wired up.
type HealthHandler struct {
	identity   ai.Identity
	maps       bool
	weather    bool
	events     bool
	elevenlabs bool
}

func NewHealthHandler(identity ai.Identity, maps, weather, events, elevenlabs bool) *HealthHandler {
	return &HealthHandler{
		identity:   identity,
		maps:       maps,
		weather:    weather,
		events:     events,
		elevenlabs: elevenlabs,
	}
}

// Check handles GET /api/health.
func (h *HealthHandler) Check(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{
		"status":     "ok",
		"ai_service": string(h.identity),
		"maps":       h.maps,
		"weather":    h.weather,
		"events":     h.events,
		"elevenlabs": h.elevenlabs,
	})
}
