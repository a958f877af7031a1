package event

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/profile-directory/internal/domain/submission"
)

type publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisPublisher fans submission events out over Redis pub/sub.
// Nothing is stored; subscribers that are offline miss the event.
type RedisPublisher struct {
	client  publisher
	channel string
}

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) Submit(ctx context.Context, e submission.Event) error {
	value, err := EncodeEvent(e)
	if err != nil {
		return err
	}
	if err := p.client.Publish(ctx, p.channel, value).Err(); err != nil {
		return fmt.Errorf("publish %s event to redis channel %s: %w", e.Type, p.channel, err)
	}
	return nil
}
