package events

import (
	"context"
	"encoding/json"
	"fmt"
	"orbital/internal/ledger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name MessageWriter . MessageWriter
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes ledger events to a single topic, keyed so that every
// event about the same transaction or contract lands on one partition.
type KafkaPublisher struct {
	logs   *zap.SugaredLogger
	writer MessageWriter
}

// NewKafkaWriter returns a hash balanced writer for topic on brokers.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
}

func NewKafkaPublisher(logger *zap.SugaredLogger, writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{
		logs:   logger,
		writer: writer,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event ledger.Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Kind, err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Key()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(event.Kind)},
		},
	})
	if err != nil {
		return fmt.Errorf("write %s event: %w", event.Kind, err)
	}

	p.logs.Debugw("ledger event published", "kind", event.Kind, "key", event.Key())
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops every event. It is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ledger.Event) error { return nil }
func (NopPublisher) Close() error                                { return nil }
