package shipment

import (
	"fmt"

	"citrustrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a forward-only state machine: the tracking ledger may
// re-assert the current status or advance it, but never move it backward.
//
// State ordering:
//
//	created -> in_transit -> arrived -> delivered
//
// Status is a value object that validates transitions and provides the wire
// representation used in storage and API responses.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusCreated is the initial status assigned at shipment creation.
	StatusCreated

	// StatusInTransit indicates the shipment has left the port of loading.
	StatusInTransit

	// StatusArrived indicates the shipment reached its destination port.
	StatusArrived

	// StatusDelivered is the terminal status. Shipments are never deleted;
	// delivered is as far as the lifecycle goes.
	StatusDelivered
)

// getStatusStrings returns the wire representation for every Status value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusCreated:   "created",
		StatusInTransit: "in_transit",
		StatusArrived:   "arrived",
		StatusDelivered: "delivered",
	}
}

// getValidStatusStrings returns only the valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusCreated:   "created",
		StatusInTransit: "in_transit",
		StatusArrived:   "arrived",
		StatusDelivered: "delivered",
	}
}

// StatusFromString parses the wire representation of a status.
// Returns an error for anything outside the closed set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the valid lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer; safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateAdvanceTo checks whether the status may transition to next without
// performing the transition. Re-asserting the current status is allowed;
// moving backward is not.
func (s Status) ValidateAdvanceTo(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if next < s {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot move status backward from %s to %s", s.String(), next.String()),
		)
	}
	return nil
}

// Advance transitions the status to next.
//
// Valid transitions keep the ordering created <= in_transit <= arrived <=
// delivered; equal-status re-assertions succeed and regressions fail.
//
// Returns:
//   - (next, nil) on a valid transition
//   - (0, error) if next is invalid or lower than the current status
func (s Status) Advance(next Status) (Status, error) {
	if err := s.ValidateAdvanceTo(next); err != nil {
		return 0, err
	}

	return next, nil
}
