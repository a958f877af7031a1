package event

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/khoahotran/profile-directory/adapters/persistence"
	"github.com/khoahotran/profile-directory/internal/application/service"
	"github.com/khoahotran/profile-directory/internal/config"
	"github.com/khoahotran/profile-directory/pkg/logger"
)

// NewNotifier builds the notifier selected by cfg.Notifier.Driver.
// The returned close func releases its connections and is never nil.
func NewNotifier(ctx context.Context, cfg config.Config, log logger.Logger) (service.Notifier, func(), error) {
	switch cfg.Notifier.Driver {
	case "", config.NotifierLog:
		return NewLogNotifier(log), func() {}, nil

	case config.NotifierKafka:
		client, err := NewKafkaProducerClient(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return client, client.Close, nil

	case config.NotifierRedis:
		rdb, err := persistence.NewRedisClient(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := rdb.Close(); err != nil {
				log.Warn("Close Redis client failed", zap.Error(err))
			}
		}
		return NewRedisPublisher(rdb, cfg.Redis.Channel), closeFn, nil

	default:
		return nil, nil, fmt.Errorf("unknown notifier driver %q", cfg.Notifier.Driver)
	}
}
