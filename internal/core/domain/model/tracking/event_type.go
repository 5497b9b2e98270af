package tracking

import (
	"fmt"

	"citrustrack/internal/pkg/errs"
)

// EventType represents the kind of a tracking event.
// It is a closed enumeration; each kind has its own required attributes,
// validated by the Event constructor.
type EventType int

const (
	// EventTypeUnknown represents an invalid or undefined event type.
	// This value (0) helps catch uninitialized EventType values.
	EventTypeUnknown EventType = iota

	// EventTypeLocationUpdate records where the shipment was observed.
	// Requires a location name or a geo point.
	EventTypeLocationUpdate

	// EventTypeTemperatureAlert records a cold-chain temperature reading
	// outside the acceptable band. Requires a temperature.
	EventTypeTemperatureAlert

	// EventTypeStatusChange advances the shipment lifecycle.
	// Requires a valid target status.
	EventTypeStatusChange
)

// getEventTypeStrings returns the wire representation for every EventType.
func getEventTypeStrings() map[EventType]string {
	return map[EventType]string{
		EventTypeUnknown:          "unknown",
		EventTypeLocationUpdate:   "location_update",
		EventTypeTemperatureAlert: "temperature_alert",
		EventTypeStatusChange:     "status_change",
	}
}

// getValidEventTypeStrings returns only the valid EventType values.
func getValidEventTypeStrings() map[EventType]string {
	//nolint:exhaustive // EventTypeUnknown is intentionally excluded as it's invalid
	return map[EventType]string{
		EventTypeLocationUpdate:   "location_update",
		EventTypeTemperatureAlert: "temperature_alert",
		EventTypeStatusChange:     "status_change",
	}
}

// EventTypeFromString parses the wire representation of an event type.
func EventTypeFromString(s string) (EventType, error) {
	for eventType, str := range getValidEventTypeStrings() {
		if str == s {
			return eventType, nil
		}
	}
	return EventTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"event_type",
		fmt.Errorf("%q is not a valid event type", s),
	)
}

// Validate checks if the EventType is one of the valid kinds.
func (t EventType) Validate() error {
	if _, ok := getValidEventTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("event_type", fmt.Errorf("%d is not a valid event type", t))
	}
	return nil
}

// String returns the wire representation of the event type.
// Implements fmt.Stringer; safe to call on any value.
func (t EventType) String() string {
	if str, ok := getEventTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
