package queries_test

import (
	"context"
	"testing"
	"time"

	"citrustrack/internal/adapters/out/postgres/shipmentrepo"
	"citrustrack/internal/adapters/out/postgres/trackingrepo"
	"citrustrack/internal/core/application/usecases/queries"
	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/principal"
	"citrustrack/internal/core/domain/model/shipment"
	"citrustrack/internal/core/domain/model/tracking"
	"citrustrack/internal/core/domain/services"
	"citrustrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ListTrackingEventsQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.ListTrackingEventsQueryHandler
	shipmentRepo *shipmentrepo.GormShipmentRepository
	eventRepo    *trackingrepo.GormTrackingEventRepository
}

func (suite *ListTrackingEventsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&trackingrepo.TrackingEventDTO{},
	))

	suite.handler = queries.NewListTrackingEventsQueryHandler(db, services.NewAccessPolicy())
	suite.shipmentRepo = shipmentrepo.NewGormShipmentRepository(db, mockAggregateTracker{})
	suite.eventRepo = trackingrepo.NewGormTrackingEventRepository(db, mockAggregateTracker{})
}

func (suite *ListTrackingEventsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ListTrackingEventsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments, tracking_events").Error)
}

func (suite *ListTrackingEventsQueryHandlerTestSuite) seedShipment(ownerID kernel.UUID) *shipment.Shipment {
	sh, err := shipment.NewShipment(
		kernel.NewUUID(),
		ownerID,
		shipment.NewTrackingNumber(),
		shipment.Details{
			ExporterName:       "Cape Citrus Co",
			ImporterName:       "Hamburg Fruit GmbH",
			Product:            "Lemons",
			QuantityCartons:    500,
			DestinationCountry: "Germany",
		},
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.shipmentRepo.Add(context.Background(), sh))

	return sh
}

func (suite *ListTrackingEventsQueryHandlerTestSuite) seedEvent(
	shipmentID kernel.UUID,
	eventType tracking.EventType,
	attributes tracking.Attributes,
	occurredAt time.Time,
) *tracking.Event {
	event, err := tracking.NewEvent(kernel.NewUUID(), shipmentID, eventType, attributes, occurredAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.eventRepo.Add(context.Background(), event))

	return event
}

func (suite *ListTrackingEventsQueryHandlerTestSuite) TestHandle_Owner_EventsNewestFirst() {
	ownerID := kernel.NewUUID()
	sh := suite.seedShipment(ownerID)
	now := time.Now().UTC().Truncate(time.Microsecond)
	temperature := 6.5
	geo, err := kernel.NewGeoPoint(-29.8587, 31.0218)
	suite.Require().NoError(err)

	departed := suite.seedEvent(sh.ID(), tracking.EventTypeStatusChange, tracking.Attributes{
		Location:  "Port of Durban",
		NewStatus: shipment.StatusInTransit,
	}, now.Add(-2*time.Hour))
	located := suite.seedEvent(sh.ID(), tracking.EventTypeLocationUpdate, tracking.Attributes{
		Location: "Indian Ocean",
		Geo:      &geo,
	}, now.Add(-time.Hour))
	alert := suite.seedEvent(sh.ID(), tracking.EventTypeTemperatureAlert, tracking.Attributes{
		Temperature: &temperature,
		Description: "Reefer above setpoint",
	}, now)

	caller := mustPrincipal(ownerID, principal.RoleExporter)
	query, err := queries.NewListTrackingEventsQuery(caller, sh.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.True(alert.ID().IsEqual(result[0].ID))
	suite.Equal("temperature_alert", result[0].EventType)
	suite.Require().NotNil(result[0].Temperature)
	suite.InDelta(temperature, *result[0].Temperature, 0.001)
	suite.Equal("Reefer above setpoint", result[0].Description)
	suite.Empty(result[0].NewStatus)

	suite.True(located.ID().IsEqual(result[1].ID))
	suite.Equal("Indian Ocean", result[1].Location)
	suite.Require().NotNil(result[1].Latitude)
	suite.InDelta(-29.8587, *result[1].Latitude, 0.0001)
	suite.Require().NotNil(result[1].Longitude)
	suite.InDelta(31.0218, *result[1].Longitude, 0.0001)

	suite.True(departed.ID().IsEqual(result[2].ID))
	suite.Equal("status_change", result[2].EventType)
	suite.Equal("in_transit", result[2].NewStatus)
}

func (suite *ListTrackingEventsQueryHandlerTestSuite) TestHandle_EmptyLedger_ReturnsEmptySlice() {
	ownerID := kernel.NewUUID()
	sh := suite.seedShipment(ownerID)

	caller := mustPrincipal(ownerID, principal.RoleExporter)
	query, err := queries.NewListTrackingEventsQuery(caller, sh.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ListTrackingEventsQueryHandlerTestSuite) TestHandle_OtherExporter_Forbidden() {
	sh := suite.seedShipment(kernel.NewUUID())
	stranger := mustPrincipal(kernel.NewUUID(), principal.RoleExporter)

	query, err := queries.NewListTrackingEventsQuery(stranger, sh.ID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrAccessForbidden)
}

func (suite *ListTrackingEventsQueryHandlerTestSuite) TestHandle_MissingShipment_NotFound() {
	caller := mustPrincipal(kernel.NewUUID(), principal.RoleExporter)

	query, err := queries.NewListTrackingEventsQuery(caller, kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ListTrackingEventsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.ListTrackingEventsQuery{})

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, queries.ErrListTrackingEventsQueryIsNotConstructed)
}

func TestListTrackingEventsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListTrackingEventsQueryHandlerTestSuite))
}
