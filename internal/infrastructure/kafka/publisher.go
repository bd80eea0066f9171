package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"localmarket/internal/domain/entity"
	"localmarket/pkg/config"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes request status events to Kafka, keyed by request id so every
// change of one request lands on the same partition.
type Publisher struct {
	writer messageWriter
}

func NewPublisher(cfg config.KafkaConfig) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.RequestTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

func (p *Publisher) PublishRequestStatus(ctx context.Context, event entity.RequestStatusChanged) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.RequestID),
		Value: data,
		Time:  event.OccurredAt,
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
