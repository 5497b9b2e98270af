package document

import (
	"errors"
	"fmt"
	"time"

	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/shipment"
	"citrustrack/internal/pkg/errs"
)

// InvoiceTitle is the fixed header of every commercial invoice.
const InvoiceTitle = "COMMERCIAL INVOICE"

// originCountry is baked into the domain: the system serves South African
// citrus exporters, so every invoice origin reads "<port>, South Africa".
const originCountry = "South Africa"

// invoiceDateLayout is the date format printed on invoices.
const invoiceDateLayout = "2006-01-02"

// ErrDocumentIsNotConstructed is returned when a Document instance was not
// created through NewCommercialInvoice or RestoreDocument.
var ErrDocumentIsNotConstructed = errors.New("Document must be created via NewCommercialInvoice or RestoreDocument")

// Type represents the kind of a trade document.
type Type int

const (
	// TypeUnknown represents an invalid or undefined document type.
	TypeUnknown Type = iota

	// TypeCommercialInvoice is currently the only generated document kind.
	TypeCommercialInvoice
)

// getValidTypeStrings returns only the valid Type values.
func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[Type]string{
		TypeCommercialInvoice: "commercial_invoice",
	}
}

// Validate checks if the Type is a valid document kind.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("doc_type", fmt.Errorf("%d is not a valid document type", t))
	}
	return nil
}

// String returns the wire representation of the document type.
func (t Type) String() string {
	if str, ok := getValidTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Status represents the lifecycle state of a document. Generated documents
// are immutable, so "generated" is currently the only state; the enum keeps
// the set extensible (e.g. a future "voided").
type Status int

const (
	// StatusUnknown represents an invalid or undefined document status.
	StatusUnknown Status = iota

	// StatusGenerated is assigned at generation time.
	StatusGenerated
)

// getValidStatusStrings returns only the valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusGenerated: "generated",
	}
}

// Validate checks if the Status is a valid document status.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("doc_status", fmt.Errorf("%d is not a valid document status", s))
	}
	return nil
}

// String returns the wire representation of the document status.
func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// InvoiceContent is the fixed-shape, point-in-time snapshot printed on a
// commercial invoice. It is persisted verbatim and never recomputed from
// later shipment state.
type InvoiceContent struct {
	Title         string `json:"title"`
	InvoiceNumber string `json:"invoice_number"`
	Date          string `json:"date"`
	ExporterName  string `json:"exporter_name"`
	ImporterName  string `json:"importer_name"`
	Product       string `json:"product"`
	Quantity      string `json:"quantity"`
	Destination   string `json:"destination"`
	Origin        string `json:"origin"`
	HSCode        string `json:"hs_code"`
}

// BuildInvoiceContent derives invoice content deterministically from a
// shipment snapshot. Given the same shipment state, number and date, the
// output is identical.
func BuildInvoiceContent(sh *shipment.Shipment, number InvoiceNumber, issuedAt time.Time) InvoiceContent {
	details := sh.Details()

	product := details.Product
	if details.Variety != "" {
		product = fmt.Sprintf("%s (%s)", details.Product, details.Variety)
	}

	destination := details.DestinationCountry
	if details.DestinationPort != "" {
		destination = fmt.Sprintf("%s, %s", details.DestinationPort, details.DestinationCountry)
	}

	return InvoiceContent{
		Title:         InvoiceTitle,
		InvoiceNumber: number.String(),
		Date:          issuedAt.Format(invoiceDateLayout),
		ExporterName:  details.ExporterName,
		ImporterName:  details.ImporterName,
		Product:       product,
		Quantity:      fmt.Sprintf("%d cartons", details.QuantityCartons),
		Destination:   destination,
		Origin:        fmt.Sprintf("%s, %s", details.PortOfLoading, originCountry),
		HSCode:        HSCodeForProduct(details.Product),
	}
}

// Document is an immutable generated trade document belonging to exactly
// one shipment. Repeated generation for the same shipment yields distinct
// documents with distinct invoice numbers.
type Document struct {
	id             kernel.UUID
	shipmentID     kernel.UUID
	docType        Type
	documentNumber InvoiceNumber
	status         Status
	content        InvoiceContent
	createdAt      time.Time

	isConstructed bool
}

// NewCommercialInvoice generates a commercial invoice document from the
// current state of the given shipment. issuedAt is both the document's
// creation timestamp and the invoice date.
func NewCommercialInvoice(
	id kernel.UUID,
	sh *shipment.Shipment,
	number InvoiceNumber,
	issuedAt time.Time,
) (*Document, error) {
	if err := sh.Validate(); err != nil {
		return nil, err
	}

	doc := &Document{
		docType:       TypeCommercialInvoice,
		status:        StatusGenerated,
		content:       BuildInvoiceContent(sh, number, issuedAt),
		createdAt:     issuedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		doc.setID(id),
		doc.setShipmentID(sh.ID()),
		doc.setDocumentNumber(number),
	); err != nil {
		return nil, err
	}

	return doc, nil
}

// RestoreDocument reconstructs a Document from persistence.
// Used only by repository implementations.
func RestoreDocument(
	id kernel.UUID,
	shipmentID kernel.UUID,
	docType Type,
	number InvoiceNumber,
	status Status,
	content InvoiceContent,
	createdAt time.Time,
) (*Document, error) {
	doc := &Document{
		content:       content,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		doc.setID(id),
		doc.setShipmentID(shipmentID),
		doc.setDocumentNumber(number),
		doc.setType(docType),
		doc.setStatus(status),
	); err != nil {
		return nil, err
	}

	return doc, nil
}

// Validate ensures the Document instance was properly constructed.
func (d *Document) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDocumentIsNotConstructed
	}

	return nil
}

// IsEqual compares two documents by their unique identifiers.
func (d *Document) IsEqual(other *Document) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the document's unique identifier.
func (d *Document) ID() kernel.UUID {
	return d.id
}

// ShipmentID returns the id of the shipment this document belongs to.
func (d *Document) ShipmentID() kernel.UUID {
	return d.shipmentID
}

// Type returns the document kind.
func (d *Document) Type() Type {
	return d.docType
}

// DocumentNumber returns the human-facing invoice number.
func (d *Document) DocumentNumber() InvoiceNumber {
	return d.documentNumber
}

// Status returns the document status.
func (d *Document) Status() Status {
	return d.status
}

// Content returns the immutable content snapshot.
func (d *Document) Content() InvoiceContent {
	return d.content
}

// CreatedAt returns the generation timestamp.
func (d *Document) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Document) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Document) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	d.shipmentID = shipmentID
	return nil
}

func (d *Document) setDocumentNumber(number InvoiceNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	d.documentNumber = number
	return nil
}

func (d *Document) setType(docType Type) error {
	if err := docType.Validate(); err != nil {
		return err
	}
	d.docType = docType
	return nil
}

func (d *Document) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
