// Package http exposes the shipment tracking API over REST. All routes
// except the public tracking endpoint resolve the caller from identity
// headers and delegate authorization to the application layer.
package http

import (
	"context"
	"net/http"

	"citrustrack/internal/core/application/usecases/commands"
	"citrustrack/internal/core/application/usecases/queries"
	"citrustrack/internal/core/domain/model/document"
	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/shipment"
	"citrustrack/internal/core/domain/model/tracking"
	"citrustrack/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CreateShipmentHandler registers a shipment with a server-generated
// tracking number.
type CreateShipmentHandler interface {
	Handle(ctx context.Context, cmd commands.CreateShipmentCommand) (*shipment.Shipment, error)
}

// AppendTrackingEventHandler appends one event to a shipment's ledger.
type AppendTrackingEventHandler interface {
	Handle(ctx context.Context, cmd commands.AppendTrackingEventCommand) (*tracking.Event, error)
}

// GenerateInvoiceHandler generates a commercial invoice for a shipment.
type GenerateInvoiceHandler interface {
	Handle(ctx context.Context, cmd commands.GenerateInvoiceCommand) (*document.Document, error)
}

// GetShipmentHandler retrieves one shipment read model.
type GetShipmentHandler interface {
	Handle(ctx context.Context, query queries.GetShipmentQuery) (queries.ShipmentResponse, error)
}

// ListShipmentsHandler lists the shipments visible to the caller.
type ListShipmentsHandler interface {
	Handle(ctx context.Context, query queries.ListShipmentsQuery) ([]queries.ShipmentResponse, error)
}

// ListTrackingEventsHandler lists a shipment's tracking history.
type ListTrackingEventsHandler interface {
	Handle(ctx context.Context, query queries.ListTrackingEventsQuery) ([]queries.TrackingEventResponse, error)
}

// GetCurrentStateHandler derives a shipment's current state.
type GetCurrentStateHandler interface {
	Handle(ctx context.Context, query queries.GetCurrentStateQuery) (queries.CurrentStateResponse, error)
}

// ListDocumentsHandler lists a shipment's generated documents.
type ListDocumentsHandler interface {
	Handle(ctx context.Context, query queries.ListDocumentsQuery) ([]queries.DocumentResponse, error)
}

// TrackShipmentHandler serves the public tracking view.
type TrackShipmentHandler interface {
	Handle(ctx context.Context, query queries.TrackShipmentQuery) (queries.TrackShipmentResponse, error)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createShipmentHandler  CreateShipmentHandler
	appendEventHandler     AppendTrackingEventHandler
	generateInvoiceHandler GenerateInvoiceHandler

	getShipmentHandler     GetShipmentHandler
	listShipmentsHandler   ListShipmentsHandler
	listEventsHandler      ListTrackingEventsHandler
	getCurrentStateHandler GetCurrentStateHandler
	listDocumentsHandler   ListDocumentsHandler
	trackShipmentHandler   TrackShipmentHandler

	validate *validator.Validate
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler CreateShipmentHandler,
	appendEventHandler AppendTrackingEventHandler,
	generateInvoiceHandler GenerateInvoiceHandler,
	getShipmentHandler GetShipmentHandler,
	listShipmentsHandler ListShipmentsHandler,
	listEventsHandler ListTrackingEventsHandler,
	getCurrentStateHandler GetCurrentStateHandler,
	listDocumentsHandler ListDocumentsHandler,
	trackShipmentHandler TrackShipmentHandler,
) *Server {
	return &Server{
		createShipmentHandler:  createShipmentHandler,
		appendEventHandler:     appendEventHandler,
		generateInvoiceHandler: generateInvoiceHandler,
		getShipmentHandler:     getShipmentHandler,
		listShipmentsHandler:   listShipmentsHandler,
		listEventsHandler:      listEventsHandler,
		getCurrentStateHandler: getCurrentStateHandler,
		listDocumentsHandler:   listDocumentsHandler,
		trackShipmentHandler:   trackShipmentHandler,
		validate:               validator.New(),
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments", s.ListShipments)
	api.GET("/shipments/:id", s.GetShipment)
	api.POST("/shipments/:id/events", s.AppendTrackingEvent)
	api.GET("/shipments/:id/events", s.ListTrackingEvents)
	api.GET("/shipments/:id/state", s.GetCurrentState)
	api.POST("/shipments/:id/documents", s.GenerateInvoice)
	api.GET("/shipments/:id/documents", s.ListDocuments)
	api.GET("/track/:trackingNumber", s.TrackShipment)
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	caller, err := principalFromRequest(ctx)
	if err != nil {
		return writeUnauthorized(ctx, err)
	}

	var req CreateShipmentRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err = s.validate.Struct(req); err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCreateShipmentCommand(caller, req.toDetails())
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	sh, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, shipmentFromAggregate(sh))
}

// ListShipments handles GET /api/v1/shipments.
func (s *Server) ListShipments(ctx echo.Context) error {
	caller, err := principalFromRequest(ctx)
	if err != nil {
		return writeUnauthorized(ctx, err)
	}

	query, err := queries.NewListShipmentsQuery(caller)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	shipments, err := s.listShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ShipmentResponse, len(shipments))
	for i, sh := range shipments {
		response[i] = shipmentFromReadModel(sh)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipment handles GET /api/v1/shipments/:id.
func (s *Server) GetShipment(ctx echo.Context) error {
	caller, err := principalFromRequest(ctx)
	if err != nil {
		return writeUnauthorized(ctx, err)
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid shipment id")
	}

	query, err := queries.NewGetShipmentQuery(caller, shipmentID)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	sh, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentFromReadModel(sh))
}

// AppendTrackingEvent handles POST /api/v1/shipments/:id/events.
func (s *Server) AppendTrackingEvent(ctx echo.Context) error {
	caller, err := principalFromRequest(ctx)
	if err != nil {
		return writeUnauthorized(ctx, err)
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid shipment id")
	}

	var req AppendEventRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err = s.validate.Struct(req); err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	eventType, err := tracking.EventTypeFromString(req.EventType)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	attributes, err := buildEventAttributes(req)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAppendTrackingEventCommand(caller, shipmentID, eventType, attributes)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	event, err := s.appendEventHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, trackingEventFromAggregate(event))
}

// ListTrackingEvents handles GET /api/v1/shipments/:id/events.
func (s *Server) ListTrackingEvents(ctx echo.Context) error {
	caller, err := principalFromRequest(ctx)
	if err != nil {
		return writeUnauthorized(ctx, err)
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid shipment id")
	}

	query, err := queries.NewListTrackingEventsQuery(caller, shipmentID)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	events, err := s.listEventsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]TrackingEventResponse, len(events))
	for i, event := range events {
		response[i] = trackingEventFromReadModel(event)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCurrentState handles GET /api/v1/shipments/:id/state.
func (s *Server) GetCurrentState(ctx echo.Context) error {
	caller, err := principalFromRequest(ctx)
	if err != nil {
		return writeUnauthorized(ctx, err)
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid shipment id")
	}

	query, err := queries.NewGetCurrentStateQuery(caller, shipmentID)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	state, err := s.getCurrentStateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, currentStateFromReadModel(state))
}

// GenerateInvoice handles POST /api/v1/shipments/:id/documents.
func (s *Server) GenerateInvoice(ctx echo.Context) error {
	caller, err := principalFromRequest(ctx)
	if err != nil {
		return writeUnauthorized(ctx, err)
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid shipment id")
	}

	cmd, err := commands.NewGenerateInvoiceCommand(caller, shipmentID)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	doc, err := s.generateInvoiceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, documentFromAggregate(doc))
}

// ListDocuments handles GET /api/v1/shipments/:id/documents.
func (s *Server) ListDocuments(ctx echo.Context) error {
	caller, err := principalFromRequest(ctx)
	if err != nil {
		return writeUnauthorized(ctx, err)
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid shipment id")
	}

	query, err := queries.NewListDocumentsQuery(caller, shipmentID)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	documents, err := s.listDocumentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]DocumentResponse, len(documents))
	for i, doc := range documents {
		response[i] = documentFromReadModel(doc)
	}

	return ctx.JSON(http.StatusOK, response)
}

// TrackShipment handles GET /api/v1/track/:trackingNumber. The endpoint is
// public: knowing the tracking number is the capability.
func (s *Server) TrackShipment(ctx echo.Context) error {
	query, err := queries.NewTrackShipmentQuery(ctx.Param("trackingNumber"))
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	result, err := s.trackShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, trackShipmentFromReadModel(result))
}

func buildEventAttributes(req AppendEventRequest) (tracking.Attributes, error) {
	attributes := tracking.Attributes{
		Location:    req.Location,
		Temperature: req.Temperature,
		Description: req.Description,
	}

	if (req.Latitude == nil) != (req.Longitude == nil) {
		return tracking.Attributes{}, errs.NewValueIsRequiredError("latitude and longitude")
	}
	if req.Latitude != nil {
		geo, err := kernel.NewGeoPoint(*req.Latitude, *req.Longitude)
		if err != nil {
			return tracking.Attributes{}, err
		}
		attributes.Geo = &geo
	}

	if req.NewStatus != "" {
		newStatus, err := shipment.StatusFromString(req.NewStatus)
		if err != nil {
			return tracking.Attributes{}, err
		}
		attributes.NewStatus = newStatus
	}

	return attributes, nil
}
