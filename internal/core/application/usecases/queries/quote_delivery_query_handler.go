package queries

import (
	"context"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/services"
)

// QuoteDeliveryQueryHandler combines the zone, fee and ETA services.
//
// Out-of-zone destinations skip pricing and the traffic lookup.
type QuoteDeliveryQueryHandler struct {
	zones services.ZoneValidator
	fees  services.FeeCalculator
	etas  services.ETAEstimator
}

func NewQuoteDeliveryQueryHandler(
	zones services.ZoneValidator,
	fees services.FeeCalculator,
	etas services.ETAEstimator,
) QuoteDeliveryQueryHandler {
	return QuoteDeliveryQueryHandler{
		zones: zones,
		fees:  fees,
		etas:  etas,
	}
}

func (h QuoteDeliveryQueryHandler) Handle(ctx context.Context, query QuoteDeliveryQuery) (QuoteDeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuoteDeliveryQueryResponse{}, err
	}

	zone, err := h.zones.Validate(query.Destination())
	if err != nil {
		return QuoteDeliveryQueryResponse{}, err
	}

	response := QuoteDeliveryQueryResponse{Zone: zone}
	if !zone.IsServiceable {
		return response, nil
	}

	fee := h.fees.QuoteDistance(zone.DistanceKm)
	response.Fee = &fee

	eta, err := h.etas.Estimate(ctx, query.Destination())
	if err != nil {
		return QuoteDeliveryQueryResponse{}, err
	}
	response.ETA = &eta

	return response, nil
}
