package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/kiroween-labs/soul-harvest-vault/internal/config"
	"github.com/kiroween-labs/soul-harvest-vault/internal/observability/metrics"
)

// Publisher sends committed vault events to downstream consumers.
//
//go:generate mockery --name=Publisher --output=../../testutil/mocks --outpkg=mocks --filename=mock_publisher.go
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Shutdown()
}

// QueueManager publishes events to a durable topic exchange, routing each
// event by its type.
type QueueManager struct {
	mu             sync.Mutex
	conn           *amqp.Connection
	channel        *amqp.Channel
	exchange       string
	publishTimeout time.Duration
}

func NewQueueManager(cfg *config.QueueConfig) (*QueueManager, error) {
	conn, err := amqp.Dial(cfg.AMQPURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to queue: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open queue channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		cfg.Exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.Exchange, err)
	}

	return &QueueManager{
		conn:           conn,
		channel:        channel,
		exchange:       cfg.Exchange,
		publishTimeout: cfg.PublishTimeout,
	}, nil
}

func (qm *QueueManager) Publish(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event.Type(), err)
	}

	ctx, cancel := context.WithTimeout(ctx, qm.publishTimeout)
	defer cancel()

	// amqp channels are not safe for concurrent publishing
	qm.mu.Lock()
	defer qm.mu.Unlock()

	err = qm.channel.PublishWithContext(ctx, qm.exchange, RoutingKey(event), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID(),
		Timestamp:    time.Now(),
		Type:         string(event.Type()),
		Body:         body,
	})
	if err != nil {
		metrics.RecordQueueSendError()
		return fmt.Errorf("failed to publish %s event: %w", event.Type(), err)
	}

	log.Ctx(ctx).Debug().
		Str("event_type", string(event.Type())).
		Str("event_id", event.ID()).
		Msg("event published")
	return nil
}

// Shutdown gracefully stops the interaction with the queue, ensuring all resources are properly released.
func (qm *QueueManager) Shutdown() {
	log.Info().Msg("Shutting down queue manager")

	qm.mu.Lock()
	defer qm.mu.Unlock()

	if err := qm.channel.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close queue channel")
	}
	if err := qm.conn.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close queue connection")
	}
}

// RoutingKey is "vault.<event type>".
func RoutingKey(event Event) string {
	return "vault." + string(event.Type())
}

// NoopPublisher drops every event. It is used when no queue is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event Event) error {
	log.Ctx(ctx).Debug().Str("event_type", string(event.Type())).Msg("queue disabled, dropping event")
	return nil
}

func (NoopPublisher) Shutdown() {}
