package kafka

import (
	"context"
	"errors"
	"log/slog"

	"github.com/segmentio/kafka-go"
)

// MessageHandler processes one message. A returned error is logged and the
// message is still committed; handlers own their retry policy.
type MessageHandler interface {
	Handle(ctx context.Context, key, value []byte) error
}

type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, topic, groupID string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    topic,
			GroupID:  groupID,
			MinBytes: 1,
			MaxBytes: 10e6,
		}),
	}
}

// Consume blocks until ctx is cancelled.
func (c *Consumer) Consume(ctx context.Context, handler MessageHandler) {
	topic := c.reader.Config().Topic
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				slog.Info("Kafka consumer stopped", "topic", topic)
				return
			}
			slog.Error("failed to read Kafka message", "topic", topic, "error", err)
			continue
		}

		slog.Debug("Kafka message received", "topic", msg.Topic, "key", string(msg.Key), "offset", msg.Offset)

		if err := handler.Handle(ctx, msg.Key, msg.Value); err != nil {
			slog.Error("failed to handle Kafka message", "topic", msg.Topic, "key", string(msg.Key), "error", err)
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
