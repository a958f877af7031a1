package service

import (
	"context"

	"github.com/khoahotran/profile-directory/internal/domain/submission"
)

// Notifier hands a submission to whatever delivers it (log, Kafka, Redis).
type Notifier interface {
	Submit(ctx context.Context, event submission.Event) error
}
