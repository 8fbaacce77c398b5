package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/policy"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/ports"
)

// EtaSource says where the travel part of an estimate came from.
type EtaSource string

const (
	EtaSourceLive     EtaSource = "live"
	EtaSourceFallback EtaSource = "fallback"
)

// EtaEstimate is the time from order to doorstep, preparation included.
type EtaEstimate struct {
	EstimatedSeconds float64
	Source           EtaSource
}

// Duration converts EstimatedSeconds to a time.Duration.
func (e EtaEstimate) Duration() time.Duration {
	return time.Duration(e.EstimatedSeconds * float64(time.Second))
}

// ETAEstimator predicts arrival time for a destination.
//
// It asks the TrafficService once, bounded by Policy.TrafficTimeout. A usable
// answer gives live duration + PrepBuffer. Anything else (error, timeout,
// negative duration, no traffic service configured) gives
// distanceKm / FallbackSpeedKmh hours + PrepBuffer. Traffic failures are
// logged at warn level and never returned, so every estimate is at least
// PrepBuffer.
type ETAEstimator struct {
	policy  policy.Policy
	traffic ports.TrafficService
	logger  *slog.Logger
}

// NewETAEstimator builds an estimator. traffic may be nil, in which case every
// estimate uses the fallback formula.
func NewETAEstimator(p policy.Policy, traffic ports.TrafficService, logger *slog.Logger) ETAEstimator {
	if logger == nil {
		logger = slog.Default()
	}
	return ETAEstimator{
		policy:  p,
		traffic: traffic,
		logger:  logger.With("component", "eta_estimator"),
	}
}

// Estimate returns an estimate for destination. The only error is a
// validation error for an unconstructed destination or policy.
func (e ETAEstimator) Estimate(ctx context.Context, destination kernel.Location) (EtaEstimate, error) {
	distanceKm, err := distanceFromOrigin(e.policy, destination)
	if err != nil {
		return EtaEstimate{}, err
	}

	if live, ok := e.liveDuration(ctx, destination); ok {
		return EtaEstimate{
			EstimatedSeconds: live.Seconds() + e.policy.PrepBuffer().Seconds(),
			Source:           EtaSourceLive,
		}, nil
	}

	return e.FallbackEstimate(distanceKm), nil
}

// FallbackEstimate applies the constant-speed formula to a measured distance.
//
// Example:
//
//	est := estimator.FallbackEstimate(6)
//	// 6 km at 30 km/h is 720 s, plus 900 s preparation: 1620 s
func (e ETAEstimator) FallbackEstimate(distanceKm float64) EtaEstimate {
	travelSeconds := distanceKm / e.policy.FallbackSpeedKmh() * 3600

	return EtaEstimate{
		EstimatedSeconds: travelSeconds + e.policy.PrepBuffer().Seconds(),
		Source:           EtaSourceFallback,
	}
}

func (e ETAEstimator) liveDuration(ctx context.Context, destination kernel.Location) (time.Duration, bool) {
	if e.traffic == nil {
		return 0, false
	}

	lookupCtx, cancel := context.WithTimeout(ctx, e.policy.TrafficTimeout())
	defer cancel()

	d, err := e.lookup(lookupCtx, destination)
	if err != nil {
		e.logger.WarnContext(ctx, "traffic lookup failed, using fallback estimate",
			"destination", destination.String(), "error", err)
		return 0, false
	}
	if d < 0 {
		e.logger.WarnContext(ctx, "traffic lookup returned negative duration, using fallback estimate",
			"destination", destination.String(), "duration", d)
		return 0, false
	}

	return d, true
}

type lookupResult struct {
	d   time.Duration
	err error
}

// lookup returns when ctx is done even if the traffic service ignores it. The
// abandoned call finishes in the background and its result is dropped.
func (e ETAEstimator) lookup(ctx context.Context, destination kernel.Location) (time.Duration, error) {
	done := make(chan lookupResult, 1)
	go func() {
		d, err := e.traffic.DurationForRoute(ctx, e.policy.Origin(), destination)
		done <- lookupResult{d: d, err: err}
	}()

	select {
	case r := <-done:
		return r.d, r.err
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}
