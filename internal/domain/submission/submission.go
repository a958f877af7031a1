package submission

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTypeContact EventType = "contact"
	EventTypeBooking EventType = "booking"
)

// BookingIDPrefix marks booking identifiers handed back to customers.
const BookingIDPrefix = "BK"

type Contact struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message"`
	ProfileID string `json:"profileId,omitempty"`
}

type Booking struct {
	ID           string `json:"bookingId"`
	CustomerName string `json:"customerName"`
	PhoneNumber  string `json:"phoneNumber"`
	Country      string `json:"country,omitempty"`
	State        string `json:"state,omitempty"`
	GirlName     string `json:"girlName"`
	Platform     string `json:"platform,omitempty"`
}

// Event is what gets handed to a notifier. Exactly one of Contact or Booking is set.
type Event struct {
	ID          uuid.UUID `json:"id"`
	Type        EventType `json:"type"`
	SubmittedAt time.Time `json:"submittedAt"`
	Contact     *Contact  `json:"contact,omitempty"`
	Booking     *Booking  `json:"booking,omitempty"`
}

func NewContactEvent(c Contact, at time.Time) Event {
	return Event{ID: uuid.New(), Type: EventTypeContact, SubmittedAt: at, Contact: &c}
}

func NewBookingEvent(b Booking, at time.Time) Event {
	return Event{ID: uuid.New(), Type: EventTypeBooking, SubmittedAt: at, Booking: &b}
}

// Validate checks the event carries the payload its type announces.
func (e Event) Validate() error {
	switch e.Type {
	case EventTypeContact:
		if e.Contact == nil {
			return fmt.Errorf("contact event %s has no contact payload", e.ID)
		}
	case EventTypeBooking:
		if e.Booking == nil {
			return fmt.Errorf("booking event %s has no booking payload", e.ID)
		}
	default:
		return fmt.Errorf("unknown event type %q", e.Type)
	}
	return nil
}

// NewBookingID returns "BK" followed by a UUIDv7 in compact upper-case hex.
// UUIDv7 embeds the millisecond timestamp, so ids still sort by submission time.
func NewBookingID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate booking id: %w", err)
	}
	return BookingIDPrefix + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")), nil
}
