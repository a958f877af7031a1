package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/profile-directory/internal/config"
	"github.com/khoahotran/profile-directory/internal/domain/submission"
	"github.com/khoahotran/profile-directory/pkg/logger"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventHandler processes one decoded submission event.
type EventHandler func(ctx context.Context, e submission.Event) error

type KafkaConsumer struct {
	reader messageReader
	logger logger.Logger
}

// NewKafkaConsumer joins cfg.Kafka.GroupID on both submission topics.
func NewKafkaConsumer(cfg config.Config, log logger.Logger) (*KafkaConsumer, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Kafka.Brokers,
		GroupID:     cfg.Kafka.GroupID,
		GroupTopics: []string{TopicContactSubmissions, TopicBookingSubmissions},
		MinBytes:    10e3,
		MaxBytes:    10e6,
	})

	return &KafkaConsumer{reader: reader, logger: log}, nil
}

// Run consumes until ctx is cancelled. Undecodable messages are committed and
// skipped. A handler failure stops Run before anything is committed past the
// failed offset, so the group resumes from it on restart.
func (c *KafkaConsumer) Run(ctx context.Context, handle EventHandler) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			c.logger.Error("Failed to read message from Kafka", err)
			return err
		}

		c.logger.Debug("Received message", zap.String("topic", msg.Topic), zap.String("key", string(msg.Key)))

		e, err := DecodeEvent(msg.Value)
		if err != nil {
			c.logger.Warn("Skipping malformed submission event", zap.String("topic", msg.Topic), zap.Int64("offset", msg.Offset), zap.Error(err))
			c.commit(ctx, msg)
			continue
		}

		if err := handle(ctx, e); err != nil {
			c.logger.Error("Failed to process submission event", err,
				zap.String("event_id", e.ID.String()),
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
			)
			return fmt.Errorf("process %s offset %d: %w", msg.Topic, msg.Offset, err)
		}

		c.commit(ctx, msg)
	}
}

func (c *KafkaConsumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		c.logger.Error("Failed to commit message", err, zap.String("topic", msg.Topic), zap.Int64("offset", msg.Offset))
	}
}

func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
