package queries

import (
	"errors"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/services"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/pkg/guard"
)

var ErrQuoteDeliveryQueryIsNotConstructed = errors.New(
	"QuoteDeliveryQuery must be created via NewQuoteDeliveryQuery constructor",
)

// QuoteDeliveryQuery asks what delivering to a destination would look like.
//
// Example:
//
//	dest, _ := kernel.NewLocation(34.1563, 73.2217)
//	query, _ := NewQuoteDeliveryQuery(dest)
//	quote, err := handler.Handle(ctx, query)
//	if quote.Zone.IsServiceable {
//	    fmt.Println(quote.Fee.TotalFee, quote.ETA.EstimatedSeconds)
//	}
type QuoteDeliveryQuery struct {
	destination kernel.Location

	guard guard.ConstructorGuard
}

func NewQuoteDeliveryQuery(destination kernel.Location) (QuoteDeliveryQuery, error) {
	if err := destination.Validate(); err != nil {
		return QuoteDeliveryQuery{}, err
	}

	return QuoteDeliveryQuery{
		destination: destination,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q QuoteDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrQuoteDeliveryQueryIsNotConstructed)
}

func (q QuoteDeliveryQuery) Destination() kernel.Location {
	return q.destination
}

// QuoteDeliveryQueryResponse carries the zone decision and, for serviceable
// destinations only, the fee and arrival estimate.
type QuoteDeliveryQueryResponse struct {
	Zone services.ZoneDecision
	Fee  *services.FeeQuote
	ETA  *services.EtaEstimate
}
