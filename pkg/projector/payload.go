package projector

import (
	"encoding/json"
	"fmt"

	"github.com/missionloop/groundcontrol/pkg/eventlog"
)

// payloadError marks a malformed event payload. The registry dead-letters
// these instead of aborting the event's transaction.
type payloadError struct {
	eventType string
	cause     error
}

func (e *payloadError) Error() string {
	return fmt.Sprintf("bad %s payload: %v", e.eventType, e.cause)
}

func (e *payloadError) Unwrap() error { return e.cause }

func badPayload(eventType string, cause error) error {
	return &payloadError{eventType: eventType, cause: cause}
}

func badPayloadf(eventType, format string, args ...any) error {
	return &payloadError{eventType: eventType, cause: fmt.Errorf(format, args...)}
}

// decodeData unmarshals the envelope's data document into out, classifying
// failures as payload errors.
func decodeData(env *eventlog.Envelope, out any) error {
	if len(env.Data) == 0 {
		return badPayloadf(env.EventType, "missing data document")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return badPayload(env.EventType, err)
	}
	return nil
}
