package content

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/fortify/circuitbreaker"

	"github.com/pathwise/pathwise/internal/curriculum"
)

// ResilientSource wraps a Source with a per-call timeout and a circuit
// breaker. After enough consecutive failures the breaker opens and
// calls fail fast without touching the provider, so curriculum builds
// short-circuit straight to the template fallback; a half-open probe
// after the cooldown restores normal operation.
type ResilientSource struct {
	inner   Source
	breaker circuitbreaker.CircuitBreaker[[]curriculum.ModuleCandidate]
	timeout time.Duration
}

// ResilientConfig tunes the wrapper.
type ResilientConfig struct {
	// Timeout bounds a single Generate call. Default 10s.
	Timeout time.Duration

	// FailureThreshold is the consecutive-failure count that opens the
	// breaker. Default 3.
	FailureThreshold int

	// Cooldown is how long the breaker stays open before a half-open
	// probe. Default 60s.
	Cooldown time.Duration

	// OnStateChange is called on breaker transitions, for audit logging.
	OnStateChange func(from, to string)
}

// DefaultResilientConfig returns the standard settings.
func DefaultResilientConfig() ResilientConfig {
	return ResilientConfig{
		Timeout:          10 * time.Second,
		FailureThreshold: 3,
		Cooldown:         60 * time.Second,
	}
}

// NewResilientSource wraps src with timeout and circuit breaker.
func NewResilientSource(src Source, cfg ResilientConfig) *ResilientSource {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 3
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = 60 * time.Second
	}

	threshold := uint32(cfg.FailureThreshold)

	return &ResilientSource{
		inner:   src,
		timeout: cfg.Timeout,
		breaker: circuitbreaker.New[[]curriculum.ModuleCandidate](circuitbreaker.Config{
			MaxRequests: 1,
			Timeout:     cfg.Cooldown,
			ReadyToTrip: func(counts circuitbreaker.Counts) bool {
				return counts.ConsecutiveFailures >= threshold
			},
			OnStateChange: func(from, to circuitbreaker.State) {
				if cfg.OnStateChange != nil {
					cfg.OnStateChange(from.String(), to.String())
				}
			},
		}),
	}
}

// Generate runs the inner source under the timeout and breaker. All
// failure modes, the open breaker included, map to ErrUnavailable.
func (r *ResilientSource) Generate(ctx context.Context, req Request) ([]curriculum.ModuleCandidate, error) {
	out, err := r.breaker.Execute(ctx, func(ctx context.Context) ([]curriculum.ModuleCandidate, error) {
		ctx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()
		return r.inner.Generate(ctx, req)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return out, nil
}
