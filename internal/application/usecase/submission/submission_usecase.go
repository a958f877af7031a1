package submission

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/profile-directory/internal/application/service"
	"github.com/khoahotran/profile-directory/internal/domain/submission"
	"github.com/khoahotran/profile-directory/pkg/apperror"
	"github.com/khoahotran/profile-directory/pkg/logger"
)

const notifyTimeout = 10 * time.Second

type SubmissionUseCase struct {
	notifier     service.Notifier
	logger       logger.Logger
	now          func() time.Time
	newBookingID func() (string, error)
	inflight     sync.WaitGroup
}

func NewSubmissionUseCase(notifier service.Notifier, log logger.Logger) *SubmissionUseCase {
	return &SubmissionUseCase{
		notifier:     notifier,
		logger:       log,
		now:          func() time.Time { return time.Now().UTC() },
		newBookingID: submission.NewBookingID,
	}
}

type SubmitContactInput struct {
	Contact submission.Contact
}

type SubmitContactOutput struct {
	SubmittedAt time.Time
}

func (uc *SubmissionUseCase) SubmitContact(ctx context.Context, input SubmitContactInput) (*SubmitContactOutput, error) {
	at := uc.now()
	c := input.Contact

	uc.logger.Info("Contact form submission",
		zap.String("name", c.Name),
		zap.String("email", c.Email),
		zap.String("phone", c.Phone),
		zap.String("message", c.Message),
		zap.String("profile_id", c.ProfileID),
	)

	uc.dispatch(ctx, submission.NewContactEvent(c, at))
	return &SubmitContactOutput{SubmittedAt: at}, nil
}

type SubmitBookingInput struct {
	Booking submission.Booking
}

type SubmitBookingOutput struct {
	BookingID   string
	SubmittedAt time.Time
}

func (uc *SubmissionUseCase) SubmitBooking(ctx context.Context, input SubmitBookingInput) (*SubmitBookingOutput, error) {
	id, err := uc.newBookingID()
	if err != nil {
		return nil, apperror.NewInternal("booking id generation failed", err)
	}
	at := uc.now()
	b := input.Booking
	b.ID = id

	uc.logger.Info("Booking submission",
		zap.String("booking_id", b.ID),
		zap.String("customer_name", b.CustomerName),
		zap.String("phone_number", b.PhoneNumber),
		zap.String("country", b.Country),
		zap.String("state", b.State),
		zap.String("girl_name", b.GirlName),
		zap.String("platform", b.Platform),
	)

	uc.dispatch(ctx, submission.NewBookingEvent(b, at))
	return &SubmitBookingOutput{BookingID: id, SubmittedAt: at}, nil
}

// dispatch hands the event to the notifier in the background. A delivery
// failure is logged and never reaches the submitter.
func (uc *SubmissionUseCase) dispatch(ctx context.Context, event submission.Event) {
	uc.inflight.Add(1)
	go func() {
		defer uc.inflight.Done()

		notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()

		if err := uc.notifier.Submit(notifyCtx, event); err != nil {
			uc.logger.Error("Failed to deliver submission event", err,
				zap.String("event_id", event.ID.String()),
				zap.String("event_type", string(event.Type)),
			)
		}
	}()
}

// Wait blocks until every background notification has finished.
func (uc *SubmissionUseCase) Wait() {
	uc.inflight.Wait()
}

// ProcessEvent is the consumer side: it validates a received event and records it.
// Actual delivery (email, SMS) is not implemented.
func (uc *SubmissionUseCase) ProcessEvent(_ context.Context, event submission.Event) error {
	if err := event.Validate(); err != nil {
		return fmt.Errorf("invalid submission event: %w", err)
	}

	fields := []zap.Field{
		zap.String("event_id", event.ID.String()),
		zap.String("event_type", string(event.Type)),
		zap.Time("submitted_at", event.SubmittedAt),
	}
	switch event.Type {
	case submission.EventTypeContact:
		fields = append(fields, zap.String("name", event.Contact.Name), zap.String("email", event.Contact.Email))
	case submission.EventTypeBooking:
		fields = append(fields, zap.String("booking_id", event.Booking.ID), zap.String("customer_name", event.Booking.CustomerName))
	}
	uc.logger.Info("Processed submission event", fields...)
	return nil
}
