package event

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/profile-directory/internal/domain/submission"
	"github.com/khoahotran/profile-directory/pkg/logger"
)

// LogNotifier is the default notifier: it only records that an event would be delivered.
type LogNotifier struct {
	logger logger.Logger
}

func NewLogNotifier(log logger.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) Submit(_ context.Context, e submission.Event) error {
	n.logger.Info("Submission queued for delivery",
		zap.String("event_id", e.ID.String()),
		zap.String("event_type", string(e.Type)),
		zap.Time("submitted_at", e.SubmittedAt),
	)
	return nil
}
