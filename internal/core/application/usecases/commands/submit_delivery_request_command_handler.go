package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/delivery"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/services"
)

var ErrDestinationOutsideServiceArea = errors.New("destination is outside the service area")

// SubmitDeliveryRequestCommandHandler stores a Pending request once its
// destination passes the zone check.
//
// Example:
//
//	handler := NewSubmitDeliveryRequestCommandHandler(uowFactory, services.NewZoneValidator(p))
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrDestinationOutsideServiceArea) {
//	    // tell the customer we do not deliver there
//	}
type SubmitDeliveryRequestCommandHandler struct {
	uowFactory RequestUoWFactory
	zones      services.ZoneValidator
	now        func() time.Time
}

func NewSubmitDeliveryRequestCommandHandler(
	uowFactory RequestUoWFactory,
	zones services.ZoneValidator,
) SubmitDeliveryRequestCommandHandler {
	return SubmitDeliveryRequestCommandHandler{
		uowFactory: uowFactory,
		zones:      zones,
		now:        time.Now,
	}
}

// Handle rejects out-of-zone destinations with ErrDestinationOutsideServiceArea
// before any transaction is opened.
func (h SubmitDeliveryRequestCommandHandler) Handle(ctx context.Context, cmd SubmitDeliveryRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	decision, err := h.zones.Validate(cmd.Destination())
	if err != nil {
		return err
	}
	if !decision.IsServiceable {
		return fmt.Errorf("%w: %.2f km from the restaurant", ErrDestinationOutsideServiceArea, decision.DistanceKm)
	}

	request, err := delivery.NewRequest(cmd.RequestID(), cmd.Destination(), h.now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DeliveryRequestRepository().Add(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
