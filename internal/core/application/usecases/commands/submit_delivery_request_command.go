package commands

import (
	"errors"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/pkg/guard"
)

var ErrSubmitDeliveryRequestCommandIsNotConstructed = errors.New(
	"SubmitDeliveryRequestCommand must be created via NewSubmitDeliveryRequestCommand constructor",
)

// SubmitDeliveryRequestCommand asks for a destination to be queued for the
// next dispatch run.
//
// Example:
//
//	dest, err := kernel.NewLocation(34.1563, 73.2217)
//	if err != nil {
//	    return err
//	}
//	cmd, err := NewSubmitDeliveryRequestCommand(kernel.NewUUID(), dest)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type SubmitDeliveryRequestCommand struct { //nolint:recvcheck //using for validation
	requestID   kernel.UUID
	destination kernel.Location

	guard guard.ConstructorGuard
}

// NewSubmitDeliveryRequestCommand validates the id and destination.
func NewSubmitDeliveryRequestCommand(
	requestID kernel.UUID,
	destination kernel.Location,
) (SubmitDeliveryRequestCommand, error) {
	cmd := SubmitDeliveryRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setDestination(destination),
	); err != nil {
		return SubmitDeliveryRequestCommand{}, err
	}

	return cmd, nil
}

func (c SubmitDeliveryRequestCommand) Validate() error {
	return c.guard.Validate(ErrSubmitDeliveryRequestCommandIsNotConstructed)
}

func (c SubmitDeliveryRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c SubmitDeliveryRequestCommand) Destination() kernel.Location {
	return c.destination
}

func (c *SubmitDeliveryRequestCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.requestID = id
	return nil
}

func (c *SubmitDeliveryRequestCommand) setDestination(destination kernel.Location) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	c.destination = destination
	return nil
}
