package commands_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/application/usecases/commands"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/delivery"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/dispatch"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDeliveryRequestRepository struct{ mock.Mock }

func (m *MockDeliveryRequestRepository) Add(ctx context.Context, r *delivery.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockDeliveryRequestRepository) Update(ctx context.Context, r *delivery.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockDeliveryRequestRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Request, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*delivery.Request)
	return r, args.Error(1)
}

func (m *MockDeliveryRequestRepository) GetAllPending(ctx context.Context) ([]*delivery.Request, error) {
	args := m.Called(ctx)
	rs, _ := args.Get(0).([]*delivery.Request)
	return rs, args.Error(1)
}

func (m *MockDeliveryRequestRepository) MarkDispatched(ctx context.Context, runID kernel.UUID, ids []kernel.UUID) error {
	args := m.Called(ctx, runID, ids)
	return args.Error(0)
}

type MockDispatchRunRepository struct{ mock.Mock }

func (m *MockDispatchRunRepository) Add(ctx context.Context, plan dispatch.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockDispatchRunRepository) Get(ctx context.Context, id kernel.UUID) (dispatch.Plan, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dispatch.Plan), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DeliveryRequestRepository() ports.DeliveryRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRequestRepository)
}

func (m *MockUoW) DispatchRunRepository() ports.DispatchRunRepository {
	args := m.Called()
	return args.Get(0).(ports.DispatchRunRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// MockRequestUoWFactory hands out the same MockUoW through the narrower
// RequestUoW view.
type MockRequestUoWFactory struct{ mock.Mock }

func (m *MockRequestUoWFactory) Create() commands.RequestUoW {
	args := m.Called()
	return args.Get(0).(commands.RequestUoW)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishDispatchPlanned(ctx context.Context, plan dispatch.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
