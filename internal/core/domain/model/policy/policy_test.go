package policy_test

import (
	"math"
	"testing"
	"time"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/policy"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolicy_Defaults(t *testing.T) {
	p, err := policy.NewPolicy(policy.DefaultSettings())

	require.NoError(t, err)
	require.NoError(t, p.Validate())
	assert.InDelta(t, 34.1463, p.Origin().Latitude(), 1e-12)
	assert.InDelta(t, 73.2117, p.Origin().Longitude(), 1e-12)
	assert.InDelta(t, 10.0, p.ServiceRadiusKm(), 1e-12)
	assert.Equal(t, 50, p.BaseFee())
	assert.InDelta(t, 10.0, p.PerKmRate(), 1e-12)
	assert.InDelta(t, 30.0, p.FallbackSpeedKmh(), 1e-12)
	assert.Equal(t, 900*time.Second, p.PrepBuffer())
	assert.Equal(t, 5*time.Second, p.TrafficTimeout())
	assert.Equal(t, policy.DefaultSettings(), p.Settings())
}

func TestNewPolicy_ZeroBaseFeeIsAllowed(t *testing.T) {
	s := policy.DefaultSettings()
	s.BaseFee = 0

	p, err := policy.NewPolicy(s)

	require.NoError(t, err)
	assert.Zero(t, p.BaseFee())
}

func TestNewPolicy_RejectsBadSettings(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*policy.Settings)
		target  error
		message string
	}{
		{"origin latitude", func(s *policy.Settings) { s.OriginLatitude = 120 }, errs.ErrValueIsOutOfRange, "latitude"},
		{"zero radius", func(s *policy.Settings) { s.ServiceRadiusKm = 0 }, errs.ErrValueIsInvalid, "service radius km"},
		{"NaN radius", func(s *policy.Settings) { s.ServiceRadiusKm = math.NaN() }, errs.ErrValueIsInvalid, "service radius km"},
		{"negative base fee", func(s *policy.Settings) { s.BaseFee = -1 }, errs.ErrValueIsInvalid, "base fee"},
		{"zero rate", func(s *policy.Settings) { s.PerKmRate = 0 }, errs.ErrValueIsInvalid, "per km rate"},
		{"zero speed", func(s *policy.Settings) { s.FallbackSpeedKmh = 0 }, errs.ErrValueIsInvalid, "fallback speed kmh"},
		{"infinite speed", func(s *policy.Settings) { s.FallbackSpeedKmh = math.Inf(1) }, errs.ErrValueIsInvalid, "fallback speed kmh"},
		{"zero buffer", func(s *policy.Settings) { s.PrepBuffer = 0 }, errs.ErrValueIsInvalid, "prep buffer"},
		{"negative timeout", func(s *policy.Settings) { s.TrafficTimeout = -time.Second }, errs.ErrValueIsInvalid, "traffic timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := policy.DefaultSettings()
			tt.mutate(&s)

			p, err := policy.NewPolicy(s)

			require.ErrorIs(t, err, tt.target)
			assert.Contains(t, err.Error(), tt.message)
			assert.Equal(t, policy.ErrPolicyIsNotConstructed, p.Validate())
		})
	}
}

func TestNewPolicy_JoinsAllProblems(t *testing.T) {
	_, err := policy.NewPolicy(policy.Settings{})

	require.Error(t, err)
	for _, name := range []string{"service radius km", "per km rate", "fallback speed kmh", "prep buffer", "traffic timeout"} {
		assert.Contains(t, err.Error(), name)
	}
}

func TestMustDefault(t *testing.T) {
	assert.NotPanics(t, func() { _ = policy.MustDefault() })
}
