// Package kafka publishes committed status changes to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"backoffice/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// StatusEventPublisher writes one JSON message per event, keyed by entity id so
// that changes of a single order or purchase stay in partition order.
type StatusEventPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewWriter builds the producer used in production. Hash balancing keeps one
// key on one partition.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}
}

func NewStatusEventPublisher(writer messageWriter, logger *slog.Logger) *StatusEventPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatusEventPublisher{writer: writer, logger: logger.With("component", "kafka-publisher")}
}

func (p *StatusEventPublisher) Publish(ctx context.Context, events ...ports.StatusChangedEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		value, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", e.EventID, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.EntityID),
			Value: value,
			Time:  e.OccurredAt,
			Headers: []kafka.Header{
				{Key: "event-type", Value: []byte("status-changed")},
				{Key: "entity-type", Value: []byte(e.EntityType)},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d status events: %w", len(msgs), err)
	}

	p.logger.DebugContext(ctx, "status events published", slog.Int("count", len(msgs)))
	return nil
}

// NopPublisher drops events. It is used when no broker is configured.
type NopPublisher struct {
	logger *slog.Logger
}

func NewNopPublisher(logger *slog.Logger) *NopPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &NopPublisher{logger: logger}
}

func (p *NopPublisher) Publish(ctx context.Context, events ...ports.StatusChangedEvent) error {
	p.logger.DebugContext(ctx, "status events dropped, no broker configured", slog.Int("count", len(events)))
	return nil
}
