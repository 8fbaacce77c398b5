package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/policy"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/services"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTrafficService struct{ mock.Mock }

func (m *MockTrafficService) DurationForRoute(ctx context.Context, origin, destination kernel.Location) (time.Duration, error) {
	args := m.Called(ctx, origin, destination)
	return args.Get(0).(time.Duration), args.Error(1)
}

// blockingTraffic waits for the caller's deadline and reports how long that was.
type blockingTraffic struct {
	budget chan time.Duration
}

func (b blockingTraffic) DurationForRoute(ctx context.Context, _, _ kernel.Location) (time.Duration, error) {
	deadline, ok := ctx.Deadline()
	if ok {
		b.budget <- time.Until(deadline)
	} else {
		b.budget <- 0
	}
	<-ctx.Done()
	return 0, ctx.Err()
}

// stuckTraffic ignores ctx and only returns once release is closed.
type stuckTraffic struct {
	release chan struct{}
}

func (s stuckTraffic) DurationForRoute(context.Context, kernel.Location, kernel.Location) (time.Duration, error) {
	<-s.release
	return time.Minute, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func shortTimeoutPolicy(t *testing.T) policy.Policy {
	t.Helper()
	s := policy.DefaultSettings()
	s.TrafficTimeout = 50 * time.Millisecond
	p, err := policy.NewPolicy(s)
	require.NoError(t, err)
	return p
}

func TestETAEstimator_Live(t *testing.T) {
	p := policy.MustDefault()
	traffic := new(MockTrafficService)
	traffic.On("DurationForRoute", mock.Anything, p.Origin(), nearby).Return(7*time.Minute, nil).Once()

	est, err := services.NewETAEstimator(p, traffic, discardLogger()).Estimate(t.Context(), nearby)

	require.NoError(t, err)
	assert.Equal(t, services.EtaSourceLive, est.Source)
	assert.InDelta(t, 420.0+900.0, est.EstimatedSeconds, 1e-9)
	assert.Equal(t, 1320*time.Second, est.Duration())
	traffic.AssertExpectations(t)
}

func TestETAEstimator_LiveZeroDurationIsUsable(t *testing.T) {
	p := policy.MustDefault()
	traffic := new(MockTrafficService)
	traffic.On("DurationForRoute", mock.Anything, mock.Anything, mock.Anything).Return(time.Duration(0), nil).Once()

	est, err := services.NewETAEstimator(p, traffic, discardLogger()).Estimate(t.Context(), p.Origin())

	require.NoError(t, err)
	assert.Equal(t, services.EtaSourceLive, est.Source)
	assert.InDelta(t, 900.0, est.EstimatedSeconds, 1e-9)
}

func TestETAEstimator_FallbackOnError(t *testing.T) {
	p := policy.MustDefault()
	dest := kmNorthOfOrigin(6)
	traffic := new(MockTrafficService)
	traffic.On("DurationForRoute", mock.Anything, mock.Anything, mock.Anything).
		Return(time.Duration(0), errors.New("REQUEST_DENIED")).Once()

	est, err := services.NewETAEstimator(p, traffic, discardLogger()).Estimate(t.Context(), dest)

	require.NoError(t, err)
	assert.Equal(t, services.EtaSourceFallback, est.Source)
	assert.InDelta(t, 1620.0, est.EstimatedSeconds, 1e-6)
	traffic.AssertNumberOfCalls(t, "DurationForRoute", 1)
}

func TestETAEstimator_FallbackOnNegativeDuration(t *testing.T) {
	p := policy.MustDefault()
	traffic := new(MockTrafficService)
	traffic.On("DurationForRoute", mock.Anything, mock.Anything, mock.Anything).Return(-time.Second, nil).Once()

	est, err := services.NewETAEstimator(p, traffic, discardLogger()).Estimate(t.Context(), kmNorthOfOrigin(6))

	require.NoError(t, err)
	assert.Equal(t, services.EtaSourceFallback, est.Source)
	assert.InDelta(t, 1620.0, est.EstimatedSeconds, 1e-6)
}

func TestETAEstimator_FallbackWithoutTrafficService(t *testing.T) {
	est, err := services.NewETAEstimator(policy.MustDefault(), nil, nil).Estimate(t.Context(), kmNorthOfOrigin(6))

	require.NoError(t, err)
	assert.Equal(t, services.EtaSourceFallback, est.Source)
	assert.InDelta(t, 1620.0, est.EstimatedSeconds, 1e-6)
}

func TestETAEstimator_TimeoutBoundsTheLookup(t *testing.T) {
	p := shortTimeoutPolicy(t)
	traffic := blockingTraffic{budget: make(chan time.Duration, 1)}

	started := time.Now()
	est, err := services.NewETAEstimator(p, traffic, discardLogger()).Estimate(t.Context(), kmNorthOfOrigin(6))
	elapsed := time.Since(started)

	require.NoError(t, err)
	assert.Equal(t, services.EtaSourceFallback, est.Source)
	assert.InDelta(t, 1620.0, est.EstimatedSeconds, 1e-6)
	assert.LessOrEqual(t, <-traffic.budget, 50*time.Millisecond)
	assert.Less(t, elapsed, 2*time.Second)
}

func TestETAEstimator_TimeoutHoldsWhenTrafficIgnoresContext(t *testing.T) {
	p := shortTimeoutPolicy(t)
	traffic := stuckTraffic{release: make(chan struct{})}
	t.Cleanup(func() { close(traffic.release) })

	started := time.Now()
	est, err := services.NewETAEstimator(p, traffic, discardLogger()).Estimate(t.Context(), kmNorthOfOrigin(6))
	elapsed := time.Since(started)

	require.NoError(t, err)
	assert.Equal(t, services.EtaSourceFallback, est.Source)
	assert.InDelta(t, 1620.0, est.EstimatedSeconds, 1e-6)
	assert.Less(t, elapsed, 2*time.Second)
}

func TestETAEstimator_CancelledCallerContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	traffic := blockingTraffic{budget: make(chan time.Duration, 1)}

	est, err := services.NewETAEstimator(policy.MustDefault(), traffic, discardLogger()).Estimate(ctx, nearby)

	require.NoError(t, err)
	assert.Equal(t, services.EtaSourceFallback, est.Source)
}

func TestETAEstimator_InvalidDestination(t *testing.T) {
	traffic := new(MockTrafficService)

	_, err := services.NewETAEstimator(policy.MustDefault(), traffic, discardLogger()).Estimate(t.Context(), kernel.Location{})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	traffic.AssertNotCalled(t, "DurationForRoute", mock.Anything, mock.Anything, mock.Anything)
}

func TestETAEstimator_NeverBelowPrepBuffer(t *testing.T) {
	p := policy.MustDefault()
	failing := new(MockTrafficService)
	failing.On("DurationForRoute", mock.Anything, mock.Anything, mock.Anything).Return(time.Duration(0), errors.New("down"))
	e := services.NewETAEstimator(p, failing, discardLogger())

	for km := 0.0; km <= 12; km += 1.5 {
		est, err := e.Estimate(t.Context(), kmNorthOfOrigin(km))

		require.NoError(t, err)
		assert.GreaterOrEqual(t, est.EstimatedSeconds, p.PrepBuffer().Seconds())
	}
}

func TestETAEstimator_FallbackEstimate(t *testing.T) {
	e := services.NewETAEstimator(policy.MustDefault(), nil, discardLogger())

	assert.Equal(t, services.EtaEstimate{EstimatedSeconds: 1620, Source: services.EtaSourceFallback}, e.FallbackEstimate(6))
	assert.Equal(t, services.EtaEstimate{EstimatedSeconds: 900, Source: services.EtaSourceFallback}, e.FallbackEstimate(0))
}
