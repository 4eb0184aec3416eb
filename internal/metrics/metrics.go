// README: Prometheus counters for provider calls and fallback activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_provider_requests_total",
			Help: "Total number of upstream AI provider invocations",
		},
		[]string{"provider", "status"},
	)

	ItineraryFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itinerary_fallbacks_total",
			Help: "Total number of itineraries served from the static fallback",
		},
		[]string{"reason"},
	)

	ItineraryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "itinerary_generate_duration_seconds",
			Help: "Duration of itinerary generation including provider round trip",
		},
	)
)
