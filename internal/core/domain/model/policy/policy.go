package policy

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/pkg/errs"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/pkg/guard"
)

const (
	DefaultOriginLatitude   = 34.1463
	DefaultOriginLongitude  = 73.2117
	DefaultServiceRadiusKm  = 10.0
	DefaultBaseFee          = 50
	DefaultPerKmRate        = 10.0
	DefaultFallbackSpeedKmh = 30.0
	DefaultPrepBuffer       = 900 * time.Second
	DefaultTrafficTimeout   = 5 * time.Second
)

// ErrPolicyIsNotConstructed is returned by Validate for literal policies.
var ErrPolicyIsNotConstructed = errs.NewValueIsRequiredError("policy must be created via NewPolicy")

// Settings are the raw knobs a Policy is built from. Config loaders fill this
// struct; NewPolicy checks it.
type Settings struct {
	OriginLatitude   float64
	OriginLongitude  float64
	ServiceRadiusKm  float64
	BaseFee          int
	PerKmRate        float64
	FallbackSpeedKmh float64
	PrepBuffer       time.Duration
	TrafficTimeout   time.Duration
}

// DefaultSettings returns the restaurant defaults: origin (34.1463, 73.2117),
// 10 km radius, fee 50 + 10 per km, 30 km/h fallback speed, 15 minute
// preparation buffer and a 5 second traffic lookup budget.
func DefaultSettings() Settings {
	return Settings{
		OriginLatitude:   DefaultOriginLatitude,
		OriginLongitude:  DefaultOriginLongitude,
		ServiceRadiusKm:  DefaultServiceRadiusKm,
		BaseFee:          DefaultBaseFee,
		PerKmRate:        DefaultPerKmRate,
		FallbackSpeedKmh: DefaultFallbackSpeedKmh,
		PrepBuffer:       DefaultPrepBuffer,
		TrafficTimeout:   DefaultTrafficTimeout,
	}
}

// Policy is the validated, immutable form of Settings.
//
// Example:
//
//	p, err := policy.NewPolicy(policy.DefaultSettings())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	zones := services.NewZoneValidator(p)
type Policy struct {
	origin           kernel.Location
	serviceRadiusKm  float64
	baseFee          int
	perKmRate        float64
	fallbackSpeedKmh float64
	prepBuffer       time.Duration
	trafficTimeout   time.Duration

	guard guard.ConstructorGuard
}

// NewPolicy validates every setting and joins all problems into one error.
// Radius, rate, speed, buffer and timeout must be strictly positive; the base
// fee may be zero but not negative.
func NewPolicy(s Settings) (Policy, error) {
	origin, originErr := kernel.NewLocation(s.OriginLatitude, s.OriginLongitude)

	if err := errors.Join(
		originErr,
		positive("service radius km", s.ServiceRadiusKm),
		nonNegativeFee(s.BaseFee),
		positive("per km rate", s.PerKmRate),
		positive("fallback speed kmh", s.FallbackSpeedKmh),
		positiveDuration("prep buffer", s.PrepBuffer),
		positiveDuration("traffic timeout", s.TrafficTimeout),
	); err != nil {
		return Policy{}, err
	}

	return Policy{
		origin:           origin,
		serviceRadiusKm:  s.ServiceRadiusKm,
		baseFee:          s.BaseFee,
		perKmRate:        s.PerKmRate,
		fallbackSpeedKmh: s.FallbackSpeedKmh,
		prepBuffer:       s.PrepBuffer,
		trafficTimeout:   s.TrafficTimeout,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// MustDefault returns the policy built from DefaultSettings.
func MustDefault() Policy {
	p, err := NewPolicy(DefaultSettings())
	if err != nil {
		panic(err)
	}
	return p
}

func (p Policy) Validate() error {
	return p.guard.Validate(ErrPolicyIsNotConstructed)
}

// Origin is the restaurant location every distance is measured from.
func (p Policy) Origin() kernel.Location {
	return p.origin
}

func (p Policy) ServiceRadiusKm() float64 {
	return p.serviceRadiusKm
}

func (p Policy) BaseFee() int {
	return p.baseFee
}

func (p Policy) PerKmRate() float64 {
	return p.perKmRate
}

func (p Policy) FallbackSpeedKmh() float64 {
	return p.fallbackSpeedKmh
}

// PrepBuffer is the kitchen preparation time added to every estimate.
func (p Policy) PrepBuffer() time.Duration {
	return p.prepBuffer
}

// TrafficTimeout bounds a single live traffic lookup.
func (p Policy) TrafficTimeout() time.Duration {
	return p.trafficTimeout
}

// Settings returns the values the policy was built from.
func (p Policy) Settings() Settings {
	return Settings{
		OriginLatitude:   p.origin.Latitude(),
		OriginLongitude:  p.origin.Longitude(),
		ServiceRadiusKm:  p.serviceRadiusKm,
		BaseFee:          p.baseFee,
		PerKmRate:        p.perKmRate,
		FallbackSpeedKmh: p.fallbackSpeedKmh,
		PrepBuffer:       p.prepBuffer,
		TrafficTimeout:   p.trafficTimeout,
	}
}

func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not greater than 0", v))
	}
	return nil
}

func positiveDuration(name string, d time.Duration) error {
	if d <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is not greater than 0", d))
	}
	return nil
}

func nonNegativeFee(fee int) error {
	if fee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("base fee", fmt.Errorf("%d is negative", fee))
	}
	return nil
}
