// README: HTTP router registration.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"tripteller/internal/ai"
	"tripteller/internal/cache"
	"tripteller/internal/http/handlers"
	"tripteller/internal/http/middleware"
)

// RouterDeps carries the services the routes delegate to. Optional
// collaborators (search, weather, events, speech) may be nil; their routes
// then answer 503.
type RouterDeps struct {
	Log      *zap.Logger
	Identity ai.Identity
	Planner  handlers.Planner
	Tickets  handlers.TicketAnnotator
	Cache    *cache.ItineraryCache
	Places   handlers.PlaceSearcher
	Weather  handlers.Forecaster
	Events   handlers.EventSearcher
	Speech   handlers.Synthesizer
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(deps.Log), middleware.Recovery(deps.Log))

	itineraryHandler := handlers.NewItineraryHandler(deps.Planner, deps.Tickets, deps.Cache)
	r.POST("/api/generate-itinerary", itineraryHandler.Generate)

	placeHandler := handlers.NewPlaceHandler(deps.Places)
	r.POST("/api/search-places", placeHandler.Search)

	weatherHandler := handlers.NewWeatherHandler(deps.Weather)
	r.POST("/api/weather", weatherHandler.Forecast)

	eventHandler := handlers.NewEventHandler(deps.Events)
	r.POST("/api/events", eventHandler.Search)

	audioHandler := handlers.NewAudioHandler(deps.Speech)
	r.POST("/api/generate-audio", audioHandler.Generate)
	r.GET("/api/audio/:filename", audioHandler.Serve)

	healthHandler := handlers.NewHealthHandler(
		deps.Identity,
		deps.Places != nil,
		deps.Weather != nil,
		deps.Events != nil,
		deps.Speech != nil,
	)
	r.GET("/api/health", healthHandler.Check)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
