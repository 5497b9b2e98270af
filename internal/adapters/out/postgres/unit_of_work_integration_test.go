package postgres_test

import (
	"context"
	"testing"
	"time"

	"citrustrack/internal/adapters/out/postgres"
	"citrustrack/internal/adapters/out/postgres/documentrepo"
	"citrustrack/internal/adapters/out/postgres/shipmentrepo"
	"citrustrack/internal/adapters/out/postgres/trackingrepo"
	"citrustrack/internal/core/application/usecases/commands"
	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/principal"
	"citrustrack/internal/core/domain/model/shipment"
	"citrustrack/internal/core/domain/model/tracking"
	"citrustrack/internal/core/domain/services"
	"citrustrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that the unit of work keeps the
// shipment registry and the tracking ledger consistent: either both writes
// of an operation land, or neither does.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&trackingrepo.TrackingEventDTO{},
		&documentrepo.DocumentDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments, tracking_events, documents").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestShipment() *shipment.Shipment {
	sh, err := shipment.NewShipment(
		kernel.NewUUID(),
		kernel.NewUUID(),
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
	return sh
}

func (suite *UnitOfWorkIntegrationTestSuite) creationEvent(sh *shipment.Shipment) *tracking.Event {
	event, err := tracking.NewEvent(
		kernel.NewUUID(),
		sh.ID(),
		tracking.EventTypeStatusChange,
		tracking.Attributes{
			Location:  sh.Details().PortOfLoading,
			NewStatus: shipment.StatusCreated,
		},
		sh.CreatedAt(),
	)
	suite.Require().NoError(err)
	return event
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsShipmentAndEventTogether() {
	ctx := context.Background()
	sh := suite.createTestShipment()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, sh))
	suite.Require().NoError(uow.TrackingEventRepository().Add(ctx, suite.creationEvent(sh)))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	restored, err := verify.ShipmentRepository().Get(ctx, sh.ID())
	suite.Require().NoError(err)
	suite.True(sh.IsEqual(restored))

	events, err := verify.TrackingEventRepository().GetAllByShipmentID(ctx, sh.ID())
	suite.Require().NoError(err)
	suite.Require().Len(events, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsBothWrites() {
	ctx := context.Background()
	sh := suite.createTestShipment()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, sh))
	suite.Require().NoError(uow.TrackingEventRepository().Add(ctx, suite.creationEvent(sh)))
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	_, err := verify.ShipmentRepository().Get(ctx, sh.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	events, err := verify.TrackingEventRepository().GetAllByShipmentID(ctx, sh.ID())
	suite.Require().NoError(err)
	suite.Empty(events)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())

	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.Rollback(context.Background())

	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFailedInsert_AbortsTransaction() {
	ctx := context.Background()
	sh := suite.createTestShipment()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, sh))
	suite.Require().NoError(uow.Commit(ctx))

	duplicate, err := shipment.RestoreShipment(
		kernel.NewUUID(),
		kernel.NewUUID(),
		sh.TrackingNumber(),
		sh.Details(),
		shipment.StatusCreated,
		sh.CreatedAt(),
		sh.UpdatedAt(),
	)
	suite.Require().NoError(err)

	second := suite.factory.Create()
	suite.Require().NoError(second.Begin(ctx))
	err = second.ShipmentRepository().Add(ctx, duplicate)
	suite.Require().ErrorIs(err, errs.ErrCodeCollision)
	suite.Require().NoError(second.Rollback(ctx))
}

// trackingUoWFactoryFunc adapts the suite's factory to the command layer.
type trackingUoWFactoryFunc func() commands.TrackingUoW

func (f trackingUoWFactoryFunc) Create() commands.TrackingUoW { return f() }

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentAppends_SerializeOnShipmentRow() {
	ctx := context.Background()
	sh := suite.createTestShipment()

	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.ShipmentRepository().Add(ctx, sh))
	suite.Require().NoError(seed.TrackingEventRepository().Add(ctx, suite.creationEvent(sh)))
	suite.Require().NoError(seed.Commit(ctx))

	owner, err := principal.NewPrincipal(sh.OwnerID(), principal.RoleExporter)
	suite.Require().NoError(err)

	// The first writer takes the shipment row lock and holds it while a
	// competing status_change append runs against the same shipment.
	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	locked, err := first.ShipmentRepository().GetForUpdate(ctx, sh.ID())
	suite.Require().NoError(err)

	cmd, err := commands.NewAppendTrackingEventCommand(
		owner, sh.ID(),
		tracking.EventTypeStatusChange,
		tracking.Attributes{Location: "Port Elizabeth", NewStatus: shipment.StatusArrived},
	)
	suite.Require().NoError(err)

	handler := commands.NewAppendTrackingEventCommandHandler(
		trackingUoWFactoryFunc(func() commands.TrackingUoW { return suite.factory.Create() }),
		services.NewAccessPolicy(),
	)

	competing := make(chan error, 1)
	go func() {
		_, handleErr := handler.Handle(ctx, cmd)
		competing <- handleErr
	}()

	select {
	case <-competing:
		suite.FailNow("competing append finished while the shipment row was locked")
	case <-time.After(300 * time.Millisecond):
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	suite.Require().NoError(locked.AdvanceStatus(shipment.StatusDelivered, now))
	deliveredEvent, err := tracking.NewEvent(
		kernel.NewUUID(),
		sh.ID(),
		tracking.EventTypeStatusChange,
		tracking.Attributes{Location: "Rotterdam", NewStatus: shipment.StatusDelivered},
		now,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(first.ShipmentRepository().Update(ctx, locked))
	suite.Require().NoError(first.TrackingEventRepository().Add(ctx, deliveredEvent))
	suite.Require().NoError(first.Commit(ctx))

	// The competing append resumes against the committed status and its
	// monotonicity check now sees delivered, not the stale created.
	err = <-competing
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)

	verify := suite.factory.Create()
	final, err := verify.ShipmentRepository().Get(ctx, sh.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.StatusDelivered, final.Status())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
