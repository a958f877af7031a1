package event

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/profile-directory/internal/config"
	"github.com/khoahotran/profile-directory/internal/domain/submission"
	"github.com/khoahotran/profile-directory/pkg/logger"
)

const (
	TopicContactSubmissions = "contact.submissions"
	TopicBookingSubmissions = "booking.submissions"
)

// messageWriter is the subset of *kafka.Writer the producer needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducerClient struct {
	ContactWriter messageWriter
	BookingWriter messageWriter
	logger        logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	// writer 'contact.submissions'
	contactWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicContactSubmissions,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	// writer 'booking.submissions'
	bookingWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicBookingSubmissions,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka Producers successfully.", zap.Strings("brokers", brokers))

	return &KafkaProducerClient{
		ContactWriter: contactWriter,
		BookingWriter: bookingWriter,
		logger:        log,
	}, nil
}

// Submit publishes the event to the topic matching its type, keyed by event id.
func (c *KafkaProducerClient) Submit(ctx context.Context, e submission.Event) error {
	var w messageWriter
	switch e.Type {
	case submission.EventTypeContact:
		w = c.ContactWriter
	case submission.EventTypeBooking:
		w = c.BookingWriter
	default:
		return fmt.Errorf("no topic for event type %q", e.Type)
	}

	value, err := EncodeEvent(e)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(e.ID.String()),
		Value: value,
		Headers: []kafka.Header{
			{Key: HeaderEventType, Value: []byte(e.Type)},
		},
	}
	if err := w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write %s event to kafka: %w", e.Type, err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ContactWriter != nil {
		if err := c.ContactWriter.Close(); err != nil {
			c.logger.Warn("Close contact writer failed", zap.Error(err))
		}
	}
	if c.BookingWriter != nil {
		if err := c.BookingWriter.Close(); err != nil {
			c.logger.Warn("Close booking writer failed", zap.Error(err))
		}
	}
	c.logger.Info("Closed Kafka Producers")
}
