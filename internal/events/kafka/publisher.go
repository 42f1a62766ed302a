// Package kafka publishes notification events to the message bus.
// Delivery is at-least-once from the producer's point of view and
// fire-and-forget from the caller's: services log a failed publish and
// never roll back the write that triggered it.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"Murmur/internal/core/notifications"
)

const writeTimeout = 5 * time.Second

// Publisher implements notifications.Sink over a Kafka topic.
// The event kind doubles as the message key, so events of one kind
// keep their relative order within a partition.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a publisher for the given brokers and topic.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafkago.LeastBytes{},
			RequiredAcks: kafkago.RequireOne,
			Async:        false,
		},
		logger: logger,
	}
}

// Publish marshals the payload and writes one message to the topic.
func (p *Publisher) Publish(ctx context.Context, kind notifications.EventKind, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", kind, err)
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(kind),
		Value: value,
		Time:  time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to write %s event: %w", kind, err)
	}

	p.logger.Debug("notification published", "kind", kind)
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
