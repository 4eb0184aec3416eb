// README: Entry point; loads config, selects the AI provider, wires services
// and serves the API.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"tripteller/internal/ai"
	"tripteller/internal/cache"
	"tripteller/internal/config"
	"tripteller/internal/events"
	httptransport "tripteller/internal/http"
	"tripteller/internal/http/handlers"
	"tripteller/internal/infra"
	"tripteller/internal/itinerary"
	"tripteller/internal/logger"
	"tripteller/internal/places"
	"tripteller/internal/speech"
	"tripteller/internal/tickets"
	"tripteller/internal/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, identity := ai.Select(ctx, ai.Credentials{
		GeminiKey:    cfg.AI.GeminiKey,
		OpenAIKey:    cfg.AI.OpenAIKey,
		AnthropicKey: cfg.AI.AnthropicKey,
	}, zl)

	planner := itinerary.NewService(provider, identity, cfg.AI.Timeout, zl)
	ticketSvc := tickets.NewService()

	var itineraryCache *cache.ItineraryCache
	if cfg.Redis.Addr != "" {
		itineraryCache = cache.New(infra.NewRedis(cfg.Redis.Addr), cfg.Redis.TTL)
	}

	// Optional collaborators stay nil when unconfigured; their routes answer 503.
	var placeSearcher handlers.PlaceSearcher
	if cfg.Maps.APIKey != "" {
		svc, err := places.NewService(cfg.Maps.APIKey)
		if err != nil {
			zl.Warn("maps client init failed, place search disabled", zap.Error(err))
		} else {
			placeSearcher = svc
		}
	}
	var forecaster handlers.Forecaster
	if cfg.Weather.APIKey != "" {
		forecaster = weather.NewClient(cfg.Weather.APIKey)
	}
	var eventSearcher handlers.EventSearcher
	if cfg.Events.Token != "" {
		eventSearcher = events.NewClient(cfg.Events.Token)
	}
	var synthesizer handlers.Synthesizer
	if cfg.Speech.APIKey != "" {
		svc, err := speech.NewService(cfg.Speech.APIKey, cfg.Speech.AudioDir)
		if err != nil {
			zl.Warn("speech init failed, narration disabled", zap.Error(err))
		} else {
			synthesizer = svc
		}
	}

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Log:      zl,
		Identity: identity,
		Planner:  planner,
		Tickets:  ticketSvc,
		Cache:    itineraryCache,
		Places:   placeSearcher,
		Weather:  forecaster,
		Events:   eventSearcher,
		Speech:   synthesizer,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	zl.Info("listening", zap.String("addr", cfg.HTTP.Addr), zap.String("ai_service", string(identity)))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zl.Fatal("server error", zap.Error(err))
	}
}
