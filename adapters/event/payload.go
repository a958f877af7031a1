package event

import (
	"encoding/json"
	"fmt"

	"github.com/khoahotran/profile-directory/internal/domain/submission"
)

// HeaderEventType carries the submission type so consumers can route without decoding.
const HeaderEventType = "event-type"

func EncodeEvent(e submission.Event) ([]byte, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal %s event: %w", e.Type, err)
	}
	return b, nil
}

func DecodeEvent(b []byte) (submission.Event, error) {
	var e submission.Event
	if err := json.Unmarshal(b, &e); err != nil {
		return submission.Event{}, fmt.Errorf("unmarshal submission event: %w", err)
	}
	if err := e.Validate(); err != nil {
		return submission.Event{}, err
	}
	return e, nil
}
