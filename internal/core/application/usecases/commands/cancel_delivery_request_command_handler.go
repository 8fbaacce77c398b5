package commands

import (
	"context"
)

// CancelDeliveryRequestCommandHandler moves a Pending request to Cancelled.
//
// Unknown ids surface as errs.ObjectNotFoundError from the repository; a
// request that is already dispatched or cancelled fails with
// errs.ValueIsInvalidError from the status machine.
type CancelDeliveryRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

func NewCancelDeliveryRequestCommandHandler(uowFactory RequestUoWFactory) CancelDeliveryRequestCommandHandler {
	return CancelDeliveryRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CancelDeliveryRequestCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRequestRepository()

	request, err := repo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if err = request.Cancel(); err != nil {
		return err
	}

	if err = repo.Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
