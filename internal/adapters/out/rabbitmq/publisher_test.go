package rabbitmq_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/adapters/out/rabbitmq"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/dispatch"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	return m.Called(name, kind, durable, autoDelete, internal, noWait, args).Error(0)
}

func (m *MockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func (m *MockChannel) Close() error {
	return m.Called().Error(0)
}

func declaredChannel() *MockChannel {
	ch := new(MockChannel)
	ch.On("ExchangeDeclare", "dispatch_topic", "topic", true, false, false, false, amqp.Table(nil)).Return(nil).Once()
	return ch
}

func twoStopPlan(t *testing.T) dispatch.Plan {
	t.Helper()

	near, err := dispatch.NewStop(1, kernel.NewUUID(), kernel.MustNewLocation(34.15, 73.2117), 0.41)
	require.NoError(t, err)
	far, err := dispatch.NewStop(2, kernel.NewUUID(), kernel.MustNewLocation(34.19, 73.2117), 4.86)
	require.NoError(t, err)

	plan, err := dispatch.NewPlan(kernel.NewUUID(), time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC), []dispatch.Stop{near, far})
	require.NoError(t, err)
	return plan
}

func TestNewDispatchEventPublisher_DeclaresExchange(t *testing.T) {
	ch := declaredChannel()

	_, err := rabbitmq.NewDispatchEventPublisher(ch)

	require.NoError(t, err)
	ch.AssertExpectations(t)
}

func TestNewDispatchEventPublisher_DeclareFailure(t *testing.T) {
	ch := new(MockChannel)
	ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("ACCESS_REFUSED"))

	_, err := rabbitmq.NewDispatchEventPublisher(ch)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "declare exchange dispatch_topic")
}

func TestPublishDispatchPlanned_SendsPersistentJSON(t *testing.T) {
	ch := declaredChannel()
	plan := twoStopPlan(t)

	var published amqp.Publishing
	ch.On("PublishWithContext", mock.Anything, "dispatch_topic", "dispatch.planned", false, false, mock.Anything).
		Run(func(args mock.Arguments) {
			published = args.Get(5).(amqp.Publishing)
		}).
		Return(nil).Once()

	publisher, err := rabbitmq.NewDispatchEventPublisher(ch)
	require.NoError(t, err)

	require.NoError(t, publisher.PublishDispatchPlanned(context.Background(), plan))
	ch.AssertExpectations(t)

	assert.Equal(t, amqp.Persistent, published.DeliveryMode)
	assert.Equal(t, "application/json", published.ContentType)
	assert.Equal(t, plan.ID().String(), published.MessageId)

	var event rabbitmq.DispatchPlanned
	require.NoError(t, json.Unmarshal(published.Body, &event))
	assert.Equal(t, plan.ID().String(), event.RunID)
	require.Len(t, event.Stops, 2)
	assert.Equal(t, 1, event.Stops[0].Sequence)
	assert.Equal(t, plan.Stops()[0].RequestID().String(), event.Stops[0].RequestID)
	assert.InDelta(t, 4.86, event.Stops[1].DistanceKm, 1e-12)
}

func TestPublishDispatchPlanned_BrokerError(t *testing.T) {
	ch := declaredChannel()
	ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(amqp.ErrClosed).Once()

	publisher, err := rabbitmq.NewDispatchEventPublisher(ch)
	require.NoError(t, err)

	err = publisher.PublishDispatchPlanned(context.Background(), twoStopPlan(t))

	require.ErrorIs(t, err, amqp.ErrClosed)
}

func TestPublishDispatchPlanned_UnconstructedPlan(t *testing.T) {
	ch := declaredChannel()
	publisher, err := rabbitmq.NewDispatchEventPublisher(ch)
	require.NoError(t, err)

	err = publisher.PublishDispatchPlanned(context.Background(), dispatch.Plan{})

	require.ErrorIs(t, err, dispatch.ErrPlanIsNotConstructed)
	ch.AssertNotCalled(t, "PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestClose_ClosesChannel(t *testing.T) {
	ch := declaredChannel()
	ch.On("Close").Return(nil).Once()
	publisher, err := rabbitmq.NewDispatchEventPublisher(ch)
	require.NoError(t, err)

	require.NoError(t, publisher.Close())
	ch.AssertExpectations(t)
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, rabbitmq.NoopPublisher{}.PublishDispatchPlanned(context.Background(), dispatch.Plan{}))
}
