package itinerary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripteller/internal/ai"
)

// stubProvider is a test double for ai.Provider that records invocations.
type stubProvider struct {
	reply string
	err   error
	calls int
}

func (s *stubProvider) Invoke(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func (s *stubProvider) Name() string { return "stub" }

func newTestService(p ai.Provider, id ai.Identity) *Service {
	return NewService(p, id, 5*time.Second, zap.NewNop())
}

func TestGenerate_EmptyDestinationFailsBeforeProviderCall(t *testing.T) {
	stub := &stubProvider{reply: sampleJSON}
	svc := newTestService(stub, ai.IdentityGemini)

	_, err := svc.Generate(context.Background(), Request{Destination: "  "})
	require.ErrorIs(t, err, ErrInvalidRequest)
	assert.Zero(t, stub.calls, "provider must not be invoked for an invalid request")
}

func TestGenerate_NoProviderServesFallback(t *testing.T) {
	svc := newTestService(nil, ai.IdentityNone)

	it, err := svc.Generate(context.Background(), Request{Destination: "Kyoto", Days: 3})
	require.NoError(t, err)
	assert.Len(t, it.Schedule, 3)
	assert.Contains(t, it.AllPlaces[0].Name, "Kyoto")
}

func TestGenerate_ProviderErrorServesFallback(t *testing.T) {
	stub := &stubProvider{err: &ai.ProviderError{Provider: "stub", Status: 500, Message: "boom"}}
	svc := newTestService(stub, ai.IdentityOpenAI)

	it, err := svc.Generate(context.Background(), Request{Destination: "Kyoto", Days: 3})
	require.NoError(t, err, "provider errors must never surface")
	assert.NotEmpty(t, it.Schedule)
	assert.Equal(t, 1, stub.calls)
}

func TestGenerate_MalformedOutputServesFallback(t *testing.T) {
	stub := &stubProvider{reply: "not json"}
	svc := newTestService(stub, ai.IdentityGemini)

	it, err := svc.Generate(context.Background(), Request{Destination: "Kyoto", Days: 3})
	require.NoError(t, err, "parse errors must never surface")
	assert.NotEmpty(t, it.Schedule)
	assert.Contains(t, it.AllPlaces[0].Name, "Kyoto")
}

func TestGenerate_SuccessReturnsNormalizedItinerary(t *testing.T) {
	stub := &stubProvider{reply: "```json\n" + sampleJSON + "\n```"}
	svc := newTestService(stub, ai.IdentityGemini)

	it, err := svc.Generate(context.Background(), Request{Destination: "Kyoto", Days: 2})
	require.NoError(t, err)
	assert.Equal(t, "Kyoto", it.City)
	assert.Len(t, it.Schedule, 2)
	assert.Len(t, it.AllPlaces, 3)
}

func TestGenerate_AllPlacesInvariantHoldsForEveryOutcome(t *testing.T) {
	cases := []struct {
		name string
		svc  *Service
	}{
		{"success", newTestService(&stubProvider{reply: sampleJSON}, ai.IdentityGemini)},
		{"provider error", newTestService(&stubProvider{err: errors.New("down")}, ai.IdentityGemini)},
		{"parse error", newTestService(&stubProvider{reply: "garbage"}, ai.IdentityGemini)},
		{"no provider", newTestService(nil, ai.IdentityNone)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			it, err := tc.svc.Generate(context.Background(), Request{Destination: "Kyoto", Days: 3})
			require.NoError(t, err)
			assert.Equal(t, Flatten(it.Schedule), it.AllPlaces)
		})
	}
}

func TestGenerate_TimeoutTreatedAsProviderError(t *testing.T) {
	slow := &slowProvider{delay: 50 * time.Millisecond}
	svc := NewService(slow, ai.IdentityGemini, time.Millisecond, zap.NewNop())

	it, err := svc.Generate(context.Background(), Request{Destination: "Kyoto", Days: 3})
	require.NoError(t, err)
	assert.NotEmpty(t, it.Schedule, "timeout must fall back, not fail")
}

type slowProvider struct{ delay time.Duration }

func (s *slowProvider) Invoke(ctx context.Context, _ string) (string, error) {
	select {
	case <-time.After(s.delay):
		return sampleJSON, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (s *slowProvider) Name() string { return "slow" }

func TestActiveProvider(t *testing.T) {
	svc := newTestService(nil, ai.IdentityNone)
	assert.Equal(t, ai.IdentityNone, svc.ActiveProvider())

	svc = newTestService(&stubProvider{}, ai.IdentityAnthropic)
	assert.Equal(t, ai.IdentityAnthropic, svc.ActiveProvider())
}
