package commands

import (
	"errors"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/pkg/guard"
)

var ErrCancelDeliveryRequestCommandIsNotConstructed = errors.New(
	"CancelDeliveryRequestCommand must be created via NewCancelDeliveryRequestCommand constructor",
)

// CancelDeliveryRequestCommand withdraws a request that has not been dispatched.
type CancelDeliveryRequestCommand struct {
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelDeliveryRequestCommand(requestID kernel.UUID) (CancelDeliveryRequestCommand, error) {
	if err := requestID.Validate(); err != nil {
		return CancelDeliveryRequestCommand{}, err
	}

	return CancelDeliveryRequestCommand{
		requestID: requestID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CancelDeliveryRequestCommand) Validate() error {
	return c.guard.Validate(ErrCancelDeliveryRequestCommandIsNotConstructed)
}

func (c CancelDeliveryRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}
