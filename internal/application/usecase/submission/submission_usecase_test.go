package submission

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/khoahotran/profile-directory/internal/domain/submission"
	"github.com/khoahotran/profile-directory/pkg/logger"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []submission.Event
	err    error
}

func (n *recordingNotifier) Submit(_ context.Context, e submission.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
	return n.err
}

func newObservedUseCase(n *recordingNotifier) (*SubmissionUseCase, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	uc := NewSubmissionUseCase(n, logger.FromZap(zap.New(core)))
	uc.now = func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) }
	return uc, logs
}

func TestSubmitContact(t *testing.T) {
	n := &recordingNotifier{}
	uc, logs := newObservedUseCase(n)

	out, err := uc.SubmitContact(context.Background(), SubmitContactInput{Contact: submission.Contact{
		Name: "Ann", Email: "ann@example.com", Message: "Hi", ProfileID: "3",
	}})
	require.NoError(t, err)
	uc.Wait()

	assert.Equal(t, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), out.SubmittedAt)
	assert.Equal(t, 1, logs.FilterMessage("Contact form submission").Len())

	require.Len(t, n.events, 1)
	assert.Equal(t, submission.EventTypeContact, n.events[0].Type)
	assert.Equal(t, "ann@example.com", n.events[0].Contact.Email)
}

func TestSubmitBooking(t *testing.T) {
	n := &recordingNotifier{}
	uc, _ := newObservedUseCase(n)

	out, err := uc.SubmitBooking(context.Background(), SubmitBookingInput{Booking: submission.Booking{
		CustomerName: "Raj", PhoneNumber: "123", GirlName: "Ava",
	}})
	require.NoError(t, err)
	uc.Wait()

	assert.True(t, strings.HasPrefix(out.BookingID, submission.BookingIDPrefix))
	require.Len(t, n.events, 1)
	assert.Equal(t, out.BookingID, n.events[0].Booking.ID)
}

func TestSubmitBooking_IDGenerationFailure(t *testing.T) {
	uc, _ := newObservedUseCase(&recordingNotifier{})
	uc.newBookingID = func() (string, error) { return "", errors.New("entropy exhausted") }

	_, err := uc.SubmitBooking(context.Background(), SubmitBookingInput{})
	assert.Error(t, err)
}

func TestSubmit_NotifierFailureIsLoggedNotReturned(t *testing.T) {
	n := &recordingNotifier{err: errors.New("broker down")}
	uc, logs := newObservedUseCase(n)

	_, err := uc.SubmitContact(context.Background(), SubmitContactInput{Contact: submission.Contact{Name: "a", Email: "b", Message: "c"}})
	require.NoError(t, err)
	uc.Wait()

	assert.Equal(t, 1, logs.FilterMessage("Failed to deliver submission event").Len())
}

func TestSubmit_NotifierOutlivesCancelledRequest(t *testing.T) {
	n := &recordingNotifier{}
	uc, _ := newObservedUseCase(n)

	ctx, cancel := context.WithCancel(context.Background())
	_, err := uc.SubmitContact(ctx, SubmitContactInput{Contact: submission.Contact{Name: "a", Email: "b", Message: "c"}})
	cancel()
	require.NoError(t, err)
	uc.Wait()

	assert.Len(t, n.events, 1)
}

func TestProcessEvent(t *testing.T) {
	uc, logs := newObservedUseCase(&recordingNotifier{})
	now := time.Now()

	require.NoError(t, uc.ProcessEvent(context.Background(), submission.NewBookingEvent(submission.Booking{ID: "BK1"}, now)))
	assert.Equal(t, 1, logs.FilterMessage("Processed submission event").Len())

	assert.Error(t, uc.ProcessEvent(context.Background(), submission.Event{Type: submission.EventTypeContact}))
}
