package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/clothing-store/internal/config"
	"github.com/aaravmahajanofficial/clothing-store/internal/models"
	"github.com/segmentio/kafka-go"
)

const EventTypeOrderPlaced = "order.placed"

// publishBatchTimeout bounds how long a synchronous write waits for more
// messages before flushing; checkout publishes one message at a time.
const publishBatchTimeout = 10 * time.Millisecond

// Publisher announces committed orders to downstream consumers.
type Publisher interface {
	PublishOrderPlaced(ctx context.Context, event *models.OrderPlacedEvent) error
	Close() error
}

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	writer messageWriter
}

// NewPublisher returns a Kafka-backed publisher, or one that only logs when no brokers are configured.
func NewPublisher(cfg *config.Kafka) Publisher {

	if len(cfg.Brokers) == 0 {
		slog.Info("Kafka brokers not configured, order events will only be logged")
		return noopPublisher{}
	}

	return NewPublisherWithWriter(newKafkaWriter(cfg))
}

func newKafkaWriter(cfg *config.Kafka) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           publishBatchTimeout,
		AllowAutoTopicCreation: true,
	}
}

func NewPublisherWithWriter(w messageWriter) Publisher {
	return &kafkaPublisher{writer: w}
}

func (p *kafkaPublisher) PublishOrderPlaced(ctx context.Context, event *models.OrderPlacedEvent) error {

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", EventTypeOrderPlaced, err)
	}

	msg := kafka.Message{
		// keyed by order so every event of one order lands on one partition
		Key:   []byte(event.OrderID.String()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventTypeOrderPlaced)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", EventTypeOrderPlaced, err)
	}

	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type noopPublisher struct{}

func (noopPublisher) PublishOrderPlaced(ctx context.Context, event *models.OrderPlacedEvent) error {
	slog.Debug("Order event not published", slog.String("orderId", event.OrderID.String()))
	return nil
}

func (noopPublisher) Close() error {
	return nil
}
