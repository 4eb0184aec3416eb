// README: Itinerary orchestration; provider call, normalization, fallback policy.
package itinerary

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"tripteller/internal/ai"
	"tripteller/internal/metrics"
)

// Service composes the prompt builder, the selected provider and the
// normalizer, falling back to the static sample whenever the provider path
// fails. Apart from reading the provider chosen at startup it is stateless, so
// concurrent Generate calls need no locking.
type Service struct {
	provider ai.Provider
	identity ai.Identity
	timeout  time.Duration
	log      *zap.Logger
}

// NewService wires the orchestrator. provider may be nil when identity is
// IdentityNone; every request then takes the fallback path.
func NewService(provider ai.Provider, identity ai.Identity, timeout time.Duration, log *zap.Logger) *Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Service{
		provider: provider,
		identity: identity,
		timeout:  timeout,
		log:      log,
	}
}

// ActiveProvider reports the provider chosen at startup. Used by health checks.
func (s *Service) ActiveProvider() ai.Identity {
	return s.identity
}

// Generate produces an itinerary for the request. The only error it returns is
// ErrInvalidRequest for an empty destination; provider failures and malformed
// output are absorbed into the fallback itinerary so the caller always gets a
// usable result.
func (s *Service) Generate(ctx context.Context, req Request) (Itinerary, error) {
	if strings.TrimSpace(req.Destination) == "" {
		return Itinerary{}, ErrInvalidRequest
	}
	req = req.withDefaults()

	start := time.Now()
	defer func() {
		metrics.ItineraryDuration.Observe(time.Since(start).Seconds())
	}()

	if s.provider == nil || s.identity == ai.IdentityNone {
		// Degraded mode, not an error: nothing was configured at startup.
		metrics.ItineraryFallbacks.WithLabelValues("no_provider").Inc()
		return Sample(req.Destination, req.Days), nil
	}

	prompt := BuildPrompt(req)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.provider.Invoke(callCtx, prompt)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues(string(s.identity), "error").Inc()
		metrics.ItineraryFallbacks.WithLabelValues("provider_error").Inc()
		s.log.Warn("provider invocation failed, serving fallback",
			zap.String("provider", string(s.identity)),
			zap.String("destination", req.Destination),
			zap.Error(err))
		return Sample(req.Destination, req.Days), nil
	}
	metrics.ProviderRequests.WithLabelValues(string(s.identity), "ok").Inc()

	it, err := Normalize(raw)
	if err != nil {
		var perr *ParseError
		if !errors.As(err, &perr) {
			// Normalize only returns ParseError today; guard anyway.
			perr = &ParseError{Err: err}
		}
		metrics.ItineraryFallbacks.WithLabelValues("parse_error").Inc()
		s.log.Warn("provider output unparseable, serving fallback",
			zap.String("provider", string(s.identity)),
			zap.String("destination", req.Destination),
			zap.Error(perr))
		return Sample(req.Destination, req.Days), nil
	}

	s.log.Info("itinerary generated",
		zap.String("provider", string(s.identity)),
		zap.String("destination", req.Destination),
		zap.Int("days", len(it.Schedule)))
	return it, nil
}
