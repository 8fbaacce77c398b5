package commands_test

import (
	"errors"
	"testing"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/application/usecases/commands"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/delivery"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/policy"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/services"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	inZone     = kernel.MustNewLocation(34.1563, 73.2217)
	outOfZone  = kernel.MustNewLocation(34.3, 73.2117)
	zoneChecks = services.NewZoneValidator(policy.MustDefault())
)

func TestNewSubmitDeliveryRequestCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewSubmitDeliveryRequestCommand(id, inZone)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.RequestID().IsEqual(id))
		assert.Equal(t, inZone, cmd.Destination())
	})

	t.Run("invalid inputs are joined", func(t *testing.T) {
		cmd, err := commands.NewSubmitDeliveryRequestCommand(kernel.UUID{}, kernel.Location{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "location must be created")
		require.ErrorIs(t, cmd.Validate(), commands.ErrSubmitDeliveryRequestCommandIsNotConstructed)
	})
}

func TestSubmitDeliveryRequestCommandHandler_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewSubmitDeliveryRequestCommand(id, inZone)

	repo := new(MockDeliveryRequestRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRequestRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(r *delivery.Request) bool {
			return r.ID().IsEqual(id) && r.Status() == delivery.Pending && r.Destination() == inZone
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitDeliveryRequestCommandHandler(factory, zoneChecks)
	require.NoError(t, h.Handle(ctx, cmd))

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSubmitDeliveryRequestCommandHandler_OutsideZone(t *testing.T) {
	cmd, _ := commands.NewSubmitDeliveryRequestCommand(kernel.NewUUID(), outOfZone)
	factory := new(MockRequestUoWFactory)

	h := commands.NewSubmitDeliveryRequestCommandHandler(factory, zoneChecks)
	err := h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, commands.ErrDestinationOutsideServiceArea)
	assert.Contains(t, err.Error(), "km from the restaurant")
	factory.AssertNotCalled(t, "Create")
}

func TestSubmitDeliveryRequestCommandHandler_NotConstructed(t *testing.T) {
	factory := new(MockRequestUoWFactory)

	h := commands.NewSubmitDeliveryRequestCommandHandler(factory, zoneChecks)
	err := h.Handle(t.Context(), commands.SubmitDeliveryRequestCommand{})

	require.ErrorIs(t, err, commands.ErrSubmitDeliveryRequestCommandIsNotConstructed)
}

func TestSubmitDeliveryRequestCommandHandler_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSubmitDeliveryRequestCommand(kernel.NewUUID(), inZone)

	repo := new(MockDeliveryRequestRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRequestRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.Anything).Return(errors.New("duplicate key")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitDeliveryRequestCommandHandler(factory, zoneChecks)
	err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "duplicate key")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestSubmitDeliveryRequestCommandHandler_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSubmitDeliveryRequestCommand(kernel.NewUUID(), inZone)

	uow := new(MockUoW)
	factory := new(MockRequestUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewSubmitDeliveryRequestCommandHandler(factory, zoneChecks)

	require.EqualError(t, h.Handle(ctx, cmd), "begin error")
}
