// Package rabbitmq publishes dispatch events to a RabbitMQ topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/dispatch"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	Exchange              = "dispatch_topic"
	DispatchPlannedKey    = "dispatch.planned"
	defaultPublishTimeout = 5 * time.Second
)

var _ ports.DispatchEventPublisher = (*DispatchEventPublisher)(nil)

// Channel is the subset of *amqp.Channel the publisher uses.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// DispatchPlanned is the message body of a dispatch.planned event.
type DispatchPlanned struct {
	RunID     string        `json:"run_id"`
	CreatedAt time.Time     `json:"created_at"`
	Stops     []PlannedStop `json:"stops"`
}

type PlannedStop struct {
	Sequence   int     `json:"sequence"`
	RequestID  string  `json:"request_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance_km"`
}

// DispatchEventPublisher writes persistent JSON messages. Publishing is
// serialised because an amqp channel is not safe for concurrent use.
type DispatchEventPublisher struct {
	mu      sync.Mutex
	ch      Channel
	conn    *amqp.Connection
	timeout time.Duration
}

// Dial connects to url, opens a channel and declares the exchange.
func Dial(url string) (*DispatchEventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	p, err := NewDispatchEventPublisher(ch)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn

	return p, nil
}

// NewDispatchEventPublisher declares the durable topic exchange on ch.
func NewDispatchEventPublisher(ch Channel) (*DispatchEventPublisher, error) {
	if ch == nil {
		return nil, errors.New("rabbitmq channel is nil")
	}

	if err := ch.ExchangeDeclare(Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", Exchange, err)
	}

	return &DispatchEventPublisher{
		ch:      ch,
		timeout: defaultPublishTimeout,
	}, nil
}

func (p *DispatchEventPublisher) PublishDispatchPlanned(ctx context.Context, plan dispatch.Plan) error {
	if err := plan.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(NewDispatchPlanned(plan))
	if err != nil {
		return fmt.Errorf("marshal dispatch planned: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, Exchange, DispatchPlannedKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    plan.ID().String(),
		Timestamp:    time.Now().UTC(),
		Headers: amqp.Table{
			"x-source": "dispatch-planner",
		},
		Body: body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", DispatchPlannedKey, err)
	}

	return nil
}

func (p *DispatchEventPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errList []error
	if p.ch != nil {
		errList = append(errList, p.ch.Close())
	}
	if p.conn != nil {
		errList = append(errList, p.conn.Close())
	}
	return errors.Join(errList...)
}

func NewDispatchPlanned(plan dispatch.Plan) DispatchPlanned {
	stops := make([]PlannedStop, 0, plan.Len())
	for _, s := range plan.Stops() {
		stops = append(stops, PlannedStop{
			Sequence:   s.Sequence(),
			RequestID:  s.RequestID().String(),
			Latitude:   s.Destination().Latitude(),
			Longitude:  s.Destination().Longitude(),
			DistanceKm: s.DistanceKm(),
		})
	}

	return DispatchPlanned{
		RunID:     plan.ID().String(),
		CreatedAt: plan.CreatedAt(),
		Stops:     stops,
	}
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishDispatchPlanned(context.Context, dispatch.Plan) error {
	return nil
}
