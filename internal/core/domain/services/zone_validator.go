package services

import (
	"errors"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/policy"
)

const (
	ReasonWithinServiceArea  = "within service area"
	ReasonOutsideServiceArea = "outside service area"
)

// ZoneDecision is the outcome of a serviceability check.
type ZoneDecision struct {
	IsServiceable bool
	DistanceKm    float64
	Reason        string
}

// ZoneValidator decides whether a destination lies inside the service radius.
//
// The radius is inclusive: a destination exactly ServiceRadiusKm away is
// served.
//
// Example:
//
//	v := services.NewZoneValidator(policy.MustDefault())
//	dest, _ := kernel.NewLocation(34.1563, 73.2217)
//	decision, err := v.Validate(dest)
//	// decision.IsServiceable == true, decision.DistanceKm ≈ 1.44
type ZoneValidator struct {
	policy policy.Policy
}

func NewZoneValidator(p policy.Policy) ZoneValidator {
	return ZoneValidator{policy: p}
}

// Validate measures the distance from the origin and compares it with the
// radius. It fails only for an unconstructed destination or policy.
func (v ZoneValidator) Validate(destination kernel.Location) (ZoneDecision, error) {
	distanceKm, err := distanceFromOrigin(v.policy, destination)
	if err != nil {
		return ZoneDecision{}, err
	}

	if distanceKm <= v.policy.ServiceRadiusKm() {
		return ZoneDecision{IsServiceable: true, DistanceKm: distanceKm, Reason: ReasonWithinServiceArea}, nil
	}

	return ZoneDecision{IsServiceable: false, DistanceKm: distanceKm, Reason: ReasonOutsideServiceArea}, nil
}

func distanceFromOrigin(p policy.Policy, destination kernel.Location) (float64, error) {
	if err := errors.Join(p.Validate(), destination.Validate()); err != nil {
		return 0, err
	}

	return p.Origin().Distance(destination)
}
