package document

import (
	"fmt"
	"regexp"

	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/pkg/errs"
)

// InvoiceNumberPrefix is the fixed prefix of commercial invoice numbers.
const InvoiceNumberPrefix = "INV"

// ErrInvoiceNumberIsNotConstructed is returned when validating a zero-value
// InvoiceNumber.
var ErrInvoiceNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"invoice number must be created via NewInvoiceNumber or InvoiceNumberFromString")

var invoiceNumberPattern = regexp.MustCompile(`^INV-[0-9A-Z]{8}$`)

// InvoiceNumber is the human-facing commercial invoice code of the form
// "INV-XXXXXXXX". It is globally unique (enforced by storage) and immutable.
type InvoiceNumber struct {
	value string
}

// NewInvoiceNumber generates a fresh random invoice number.
// Uniqueness is enforced at persistence time; on a collision the caller
// generates a new number and retries once.
func NewInvoiceNumber() InvoiceNumber {
	return InvoiceNumber{value: kernel.NewCode(InvoiceNumberPrefix)}
}

// InvoiceNumberFromString parses and validates a stored invoice number.
func InvoiceNumberFromString(s string) (InvoiceNumber, error) {
	if !invoiceNumberPattern.MatchString(s) {
		return InvoiceNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"invoice_number",
			fmt.Errorf("%q does not match the INV-XXXXXXXX format", s),
		)
	}
	return InvoiceNumber{value: s}, nil
}

// String returns the invoice number in its wire form.
func (n InvoiceNumber) String() string {
	return n.value
}

// IsEqual compares two invoice numbers.
func (n InvoiceNumber) IsEqual(other InvoiceNumber) bool {
	return n.value == other.value
}

// Validate returns an error for the zero value.
func (n InvoiceNumber) Validate() error {
	if n.value == "" {
		return ErrInvoiceNumberIsNotConstructed
	}
	return nil
}
