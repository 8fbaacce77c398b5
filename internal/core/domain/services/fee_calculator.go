package services

import (
	"math"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/policy"
)

// FeeQuote is a delivery price in whole currency units.
type FeeQuote struct {
	BaseFee     int
	DistanceFee int
	TotalFee    int
}

// FeeCalculator prices a delivery as BaseFee + ceil(distanceKm * PerKmRate).
//
// The calculator does not check serviceability; callers decide whether a fee
// should be shown for an out-of-zone destination.
type FeeCalculator struct {
	policy policy.Policy
}

func NewFeeCalculator(p policy.Policy) FeeCalculator {
	return FeeCalculator{policy: p}
}

// Quote prices the trip from the origin to destination.
func (c FeeCalculator) Quote(destination kernel.Location) (FeeQuote, error) {
	distanceKm, err := distanceFromOrigin(c.policy, destination)
	if err != nil {
		return FeeQuote{}, err
	}

	return c.QuoteDistance(distanceKm), nil
}

// QuoteDistance prices an already measured distance. The result never
// decreases as distanceKm grows; negative input is treated as zero.
//
// Example:
//
//	q := calc.QuoteDistance(1.4)
//	// q.BaseFee == 50, q.DistanceFee == 14, q.TotalFee == 64
func (c FeeCalculator) QuoteDistance(distanceKm float64) FeeQuote {
	distanceFee := int(math.Ceil(math.Max(0, distanceKm) * c.policy.PerKmRate()))

	return FeeQuote{
		BaseFee:     c.policy.BaseFee(),
		DistanceFee: distanceFee,
		TotalFee:    c.policy.BaseFee() + distanceFee,
	}
}
