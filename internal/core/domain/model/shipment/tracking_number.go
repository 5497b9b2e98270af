package shipment

import (
	"fmt"
	"regexp"

	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/pkg/errs"
)

// TrackingNumberPrefix is the fixed prefix of public tracking numbers.
const TrackingNumberPrefix = "CIT"

// ErrTrackingNumberIsNotConstructed is returned when validating a zero-value
// TrackingNumber.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking number must be created via NewTrackingNumber or TrackingNumberFromString")

var trackingNumberPattern = regexp.MustCompile(`^CIT-[0-9A-Z]{8}$`)

// TrackingNumber is the public, human-facing shipment code of the form
// "CIT-XXXXXXXX". It is globally unique (enforced by storage) and immutable
// once assigned to a shipment. Anonymous callers use it for public tracking.
type TrackingNumber struct {
	value string
}

// NewTrackingNumber generates a fresh random tracking number.
// Uniqueness is enforced at persistence time; on a collision the caller
// generates a new number and retries once.
func NewTrackingNumber() TrackingNumber {
	return TrackingNumber{value: kernel.NewCode(TrackingNumberPrefix)}
}

// TrackingNumberFromString parses and validates an externally supplied
// tracking number.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	if !trackingNumberPattern.MatchString(s) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"tracking_number",
			fmt.Errorf("%q does not match the CIT-XXXXXXXX format", s),
		)
	}
	return TrackingNumber{value: s}, nil
}

// String returns the tracking number in its wire form.
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate returns an error for the zero value.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return ErrTrackingNumberIsNotConstructed
	}
	return nil
}
