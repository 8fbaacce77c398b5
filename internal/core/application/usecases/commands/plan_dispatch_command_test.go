package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/application/usecases/commands"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/delivery"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/dispatch"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/policy"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/services"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingBatch(t *testing.T) []*delivery.Request {
	t.Helper()
	far, err := delivery.NewRequest(kernel.NewUUID(), kernel.MustNewLocation(34.19, 73.2117), time.Now())
	require.NoError(t, err)
	near, err := delivery.NewRequest(kernel.NewUUID(), kernel.MustNewLocation(34.15, 73.2117), time.Now())
	require.NoError(t, err)
	return []*delivery.Request{far, near}
}

type planDispatchFixture struct {
	requests  *MockDeliveryRequestRepository
	runs      *MockDispatchRunRepository
	uow       *MockUoW
	factory   *MockUoWFactory
	publisher *MockPublisher
	handler   commands.PlanDispatchCommandHandler
}

func newPlanDispatchFixture() planDispatchFixture {
	f := planDispatchFixture{
		requests:  new(MockDeliveryRequestRepository),
		runs:      new(MockDispatchRunRepository),
		uow:       new(MockUoW),
		factory:   new(MockUoWFactory),
		publisher: new(MockPublisher),
	}
	f.factory.On("Create").Return(f.uow).Once()
	f.handler = commands.NewPlanDispatchCommandHandler(
		f.factory,
		services.NewNearestFirstPlanner(policy.MustDefault()),
		f.publisher,
		discardLogger(),
	)
	return f
}

func TestPlanDispatchCommand_Validate(t *testing.T) {
	require.NoError(t, commands.NewPlanDispatchCommand().Validate())

	var zero commands.PlanDispatchCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrPlanDispatchCommandIsNotConstructed)
}

func TestPlanDispatchCommandHandler_Success(t *testing.T) {
	ctx := t.Context()
	f := newPlanDispatchFixture()
	batch := pendingBatch(t)
	far, near := batch[0], batch[1]

	var stored dispatch.Plan
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("DeliveryRequestRepository").Return(f.requests).Once(),
		f.uow.On("DispatchRunRepository").Return(f.runs).Once(),
		f.requests.On("GetAllPending", ctx).Return(batch, nil).Once(),
		f.runs.On("Add", ctx, mock.AnythingOfType("dispatch.Plan")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(dispatch.Plan) }).
			Return(nil).Once(),
		f.requests.On("MarkDispatched", ctx, mock.AnythingOfType("kernel.UUID"), []kernel.UUID{near.ID(), far.ID()}).
			Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	f.publisher.On("PublishDispatchPlanned", ctx, mock.AnythingOfType("dispatch.Plan")).Return(nil).Once()

	plan, err := f.handler.Handle(ctx, commands.NewPlanDispatchCommand())

	require.NoError(t, err)
	assert.Equal(t, []kernel.UUID{near.ID(), far.ID()}, plan.RequestIDs())
	assert.True(t, stored.ID().IsEqual(plan.ID()))
	for _, r := range batch {
		assert.Equal(t, delivery.Dispatched, r.Status())
		assert.True(t, r.DispatchRun().IsEqual(plan.ID()))
	}
	f.requests.AssertExpectations(t)
	f.runs.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestPlanDispatchCommandHandler_NoPending(t *testing.T) {
	ctx := t.Context()
	f := newPlanDispatchFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("DeliveryRequestRepository").Return(f.requests).Once()
	f.uow.On("DispatchRunRepository").Return(f.runs).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.requests.On("GetAllPending", ctx).Return([]*delivery.Request{}, nil).Once()

	_, err := f.handler.Handle(ctx, commands.NewPlanDispatchCommand())

	require.ErrorIs(t, err, commands.ErrNoPendingRequests)
	f.runs.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishDispatchPlanned", mock.Anything, mock.Anything)
}

func TestPlanDispatchCommandHandler_ConcurrentChange(t *testing.T) {
	ctx := t.Context()
	f := newPlanDispatchFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("DeliveryRequestRepository").Return(f.requests).Once()
	f.uow.On("DispatchRunRepository").Return(f.runs).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.requests.On("GetAllPending", ctx).Return(pendingBatch(t), nil).Once()
	f.runs.On("Add", ctx, mock.Anything).Return(nil).Once()
	f.requests.On("MarkDispatched", ctx, mock.Anything, mock.Anything).
		Return(ports.ErrRequestsChangedConcurrently).Once()

	_, err := f.handler.Handle(ctx, commands.NewPlanDispatchCommand())

	require.ErrorIs(t, err, ports.ErrRequestsChangedConcurrently)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishDispatchPlanned", mock.Anything, mock.Anything)
}

func TestPlanDispatchCommandHandler_PublishFailureKeepsRun(t *testing.T) {
	ctx := t.Context()
	f := newPlanDispatchFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("DeliveryRequestRepository").Return(f.requests).Once()
	f.uow.On("DispatchRunRepository").Return(f.runs).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.requests.On("GetAllPending", ctx).Return(pendingBatch(t), nil).Once()
	f.runs.On("Add", ctx, mock.Anything).Return(nil).Once()
	f.requests.On("MarkDispatched", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	f.publisher.On("PublishDispatchPlanned", ctx, mock.Anything).Return(errors.New("broker down")).Once()

	plan, err := f.handler.Handle(ctx, commands.NewPlanDispatchCommand())

	require.NoError(t, err)
	assert.Equal(t, 2, plan.Len())
	f.publisher.AssertExpectations(t)
}

func TestPlanDispatchCommandHandler_GetPendingError(t *testing.T) {
	ctx := t.Context()
	f := newPlanDispatchFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("DeliveryRequestRepository").Return(f.requests).Once()
	f.uow.On("DispatchRunRepository").Return(f.runs).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.requests.On("GetAllPending", ctx).Return(nil, errors.New("connection refused")).Once()

	_, err := f.handler.Handle(ctx, commands.NewPlanDispatchCommand())

	require.EqualError(t, err, "connection refused")
}

func TestPlanDispatchCommandHandler_NotConstructed(t *testing.T) {
	f := newPlanDispatchFixture()

	_, err := f.handler.Handle(t.Context(), commands.PlanDispatchCommand{})

	require.ErrorIs(t, err, commands.ErrPlanDispatchCommandIsNotConstructed)
	f.factory.AssertNotCalled(t, "Create")
}
