package http

import (
	"time"

	"citrustrack/internal/core/application/usecases/queries"
	"citrustrack/internal/core/domain/model/document"
	"citrustrack/internal/core/domain/model/shipment"
	"citrustrack/internal/core/domain/model/tracking"

	"github.com/shopspring/decimal"
)

// CreateShipmentRequest is the payload for registering a shipment. The id,
// tracking number and status are assigned server-side and never accepted
// from the client.
type CreateShipmentRequest struct {
	ExporterName       string           `json:"exporter_name" validate:"required"`
	ImporterName       string           `json:"importer_name" validate:"required"`
	Product            string           `json:"product" validate:"required"`
	Variety            string           `json:"variety"`
	QuantityCartons    int              `json:"quantity_cartons" validate:"required,gt=0"`
	WeightKg           *decimal.Decimal `json:"weight_kg,omitempty"`
	DestinationCountry string           `json:"destination_country" validate:"required"`
	DestinationPort    string           `json:"destination_port"`
	PortOfLoading      string           `json:"port_of_loading"`
	VesselName         string           `json:"vessel_name"`
	ContainerNumber    string           `json:"container_number"`
}

func (r CreateShipmentRequest) toDetails() shipment.Details {
	return shipment.Details{
		ExporterName:       r.ExporterName,
		ImporterName:       r.ImporterName,
		Product:            r.Product,
		Variety:            r.Variety,
		QuantityCartons:    r.QuantityCartons,
		WeightKg:           r.WeightKg,
		DestinationCountry: r.DestinationCountry,
		DestinationPort:    r.DestinationPort,
		PortOfLoading:      r.PortOfLoading,
		VesselName:         r.VesselName,
		ContainerNumber:    r.ContainerNumber,
	}
}

// AppendEventRequest is the payload for appending one tracking event.
// Which fields are required depends on the event type; occurred_at is
// assigned server-side.
type AppendEventRequest struct {
	EventType   string   `json:"event_type" validate:"required"`
	Location    string   `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Temperature *float64 `json:"temperature"`
	Description string   `json:"description"`
	NewStatus   string   `json:"new_status"`
}

// ShipmentResponse is the JSON shape of a shipment.
type ShipmentResponse struct {
	ID                 string           `json:"id"`
	TrackingNumber     string           `json:"tracking_number"`
	OwnerID            string           `json:"owner_id"`
	Status             string           `json:"status"`
	ExporterName       string           `json:"exporter_name"`
	ImporterName       string           `json:"importer_name"`
	Product            string           `json:"product"`
	Variety            string           `json:"variety,omitempty"`
	QuantityCartons    int              `json:"quantity_cartons"`
	WeightKg           *decimal.Decimal `json:"weight_kg,omitempty"`
	DestinationCountry string           `json:"destination_country"`
	DestinationPort    string           `json:"destination_port,omitempty"`
	PortOfLoading      string           `json:"port_of_loading"`
	VesselName         string           `json:"vessel_name,omitempty"`
	ContainerNumber    string           `json:"container_number,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

func shipmentFromReadModel(m queries.ShipmentResponse) ShipmentResponse {
	return ShipmentResponse{
		ID:                 m.ID.String(),
		TrackingNumber:     m.TrackingNumber,
		OwnerID:            m.OwnerID.String(),
		Status:             m.Status,
		ExporterName:       m.ExporterName,
		ImporterName:       m.ImporterName,
		Product:            m.Product,
		Variety:            m.Variety,
		QuantityCartons:    m.QuantityCartons,
		WeightKg:           m.WeightKg,
		DestinationCountry: m.DestinationCountry,
		DestinationPort:    m.DestinationPort,
		PortOfLoading:      m.PortOfLoading,
		VesselName:         m.VesselName,
		ContainerNumber:    m.ContainerNumber,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func shipmentFromAggregate(sh *shipment.Shipment) ShipmentResponse {
	details := sh.Details()

	return ShipmentResponse{
		ID:                 sh.ID().String(),
		TrackingNumber:     sh.TrackingNumber().String(),
		OwnerID:            sh.OwnerID().String(),
		Status:             sh.Status().String(),
		ExporterName:       details.ExporterName,
		ImporterName:       details.ImporterName,
		Product:            details.Product,
		Variety:            details.Variety,
		QuantityCartons:    details.QuantityCartons,
		WeightKg:           details.WeightKg,
		DestinationCountry: details.DestinationCountry,
		DestinationPort:    details.DestinationPort,
		PortOfLoading:      details.PortOfLoading,
		VesselName:         details.VesselName,
		ContainerNumber:    details.ContainerNumber,
		CreatedAt:          sh.CreatedAt(),
		UpdatedAt:          sh.UpdatedAt(),
	}
}

// TrackingEventResponse is the JSON shape of one tracking ledger entry.
type TrackingEventResponse struct {
	ID          string    `json:"id"`
	ShipmentID  string    `json:"shipment_id"`
	EventType   string    `json:"event_type"`
	Location    string    `json:"location,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Temperature *float64  `json:"temperature,omitempty"`
	Description string    `json:"description,omitempty"`
	NewStatus   string    `json:"new_status,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func trackingEventFromReadModel(m queries.TrackingEventResponse) TrackingEventResponse {
	return TrackingEventResponse{
		ID:          m.ID.String(),
		ShipmentID:  m.ShipmentID.String(),
		EventType:   m.EventType,
		Location:    m.Location,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		Temperature: m.Temperature,
		Description: m.Description,
		NewStatus:   m.NewStatus,
		OccurredAt:  m.OccurredAt,
	}
}

func trackingEventFromAggregate(event *tracking.Event) TrackingEventResponse {
	attributes := event.Attributes()

	resp := TrackingEventResponse{
		ID:          event.ID().String(),
		ShipmentID:  event.ShipmentID().String(),
		EventType:   event.Type().String(),
		Location:    attributes.Location,
		Temperature: attributes.Temperature,
		Description: attributes.Description,
		OccurredAt:  event.OccurredAt(),
	}

	if attributes.Geo != nil {
		latitude := attributes.Geo.Latitude()
		longitude := attributes.Geo.Longitude()
		resp.Latitude = &latitude
		resp.Longitude = &longitude
	}

	if newStatus, ok := event.ImpliesStatusChange(); ok {
		resp.NewStatus = newStatus.String()
	}

	return resp
}

// CurrentStateResponse is the JSON shape of a shipment's derived state.
type CurrentStateResponse struct {
	Status      string     `json:"status"`
	Location    string     `json:"location,omitempty"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
	Temperature *float64   `json:"temperature,omitempty"`
	LastEventAt *time.Time `json:"last_event_at,omitempty"`
}

func currentStateFromReadModel(m queries.CurrentStateResponse) CurrentStateResponse {
	return CurrentStateResponse{
		Status:      m.Status,
		Location:    m.Location,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		Temperature: m.Temperature,
		LastEventAt: m.LastEventAt,
	}
}

// TrackShipmentResponse is the public tracking view. It carries no owner id
// and no commercial details.
type TrackShipmentResponse struct {
	TrackingNumber string                  `json:"tracking_number"`
	Status         string                  `json:"status"`
	CurrentState   CurrentStateResponse    `json:"current_state"`
	History        []TrackingEventResponse `json:"history"`
}

func trackShipmentFromReadModel(m queries.TrackShipmentResponse) TrackShipmentResponse {
	history := make([]TrackingEventResponse, len(m.History))
	for i, event := range m.History {
		history[i] = trackingEventFromReadModel(event)
	}

	return TrackShipmentResponse{
		TrackingNumber: m.TrackingNumber,
		Status:         m.Status,
		CurrentState:   currentStateFromReadModel(m.CurrentState),
		History:        history,
	}
}

// DocumentResponse is the JSON shape of one generated trade document.
type DocumentResponse struct {
	ID             string                  `json:"id"`
	ShipmentID     string                  `json:"shipment_id"`
	DocType        string                  `json:"doc_type"`
	DocumentNumber string                  `json:"document_number"`
	Status         string                  `json:"status"`
	Content        document.InvoiceContent `json:"content"`
	CreatedAt      time.Time               `json:"created_at"`
}

func documentFromReadModel(m queries.DocumentResponse) DocumentResponse {
	return DocumentResponse{
		ID:             m.ID.String(),
		ShipmentID:     m.ShipmentID.String(),
		DocType:        m.DocType,
		DocumentNumber: m.DocumentNumber,
		Status:         m.Status,
		Content:        m.Content,
		CreatedAt:      m.CreatedAt,
	}
}

func documentFromAggregate(doc *document.Document) DocumentResponse {
	return DocumentResponse{
		ID:             doc.ID().String(),
		ShipmentID:     doc.ShipmentID().String(),
		DocType:        doc.Type().String(),
		DocumentNumber: doc.DocumentNumber().String(),
		Status:         doc.Status().String(),
		Content:        doc.Content(),
		CreatedAt:      doc.CreatedAt(),
	}
}

// ErrorResponse is the JSON shape of every error the API returns.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
