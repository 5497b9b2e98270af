package queries_test

import (
	"context"
	"testing"
	"time"

	"citrustrack/internal/adapters/out/postgres/shipmentrepo"
	"citrustrack/internal/core/application/usecases/queries"
	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/principal"
	"citrustrack/internal/core/domain/model/shipment"
	"citrustrack/internal/core/domain/services"
	"citrustrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetShipmentQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetShipmentQueryHandler
	shipmentRepo *shipmentrepo.GormShipmentRepository
}

func (suite *GetShipmentQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&shipmentrepo.ShipmentDTO{}))

	suite.handler = queries.NewGetShipmentQueryHandler(db, services.NewAccessPolicy())
	suite.shipmentRepo = shipmentrepo.NewGormShipmentRepository(db, mockAggregateTracker{})
}

func (suite *GetShipmentQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetShipmentQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments").Error)
}

func (suite *GetShipmentQueryHandlerTestSuite) seedShipment(ownerID kernel.UUID) *shipment.Shipment {
	weight := decimal.NewFromFloat(7250.500)

	sh, err := shipment.NewShipment(
		kernel.NewUUID(),
		ownerID,
		shipment.NewTrackingNumber(),
		shipment.Details{
			ExporterName:       "Cape Citrus Co",
			ImporterName:       "Hamburg Fruit GmbH",
			Product:            "Lemons",
			Variety:            "Eureka",
			QuantityCartons:    500,
			WeightKg:           &weight,
			DestinationCountry: "Germany",
			DestinationPort:    "Hamburg",
			VesselName:         "MSC Capella",
			ContainerNumber:    "MSCU1234567",
		},
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.shipmentRepo.Add(context.Background(), sh))

	return sh
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_Owner_MapsAllFields() {
	ownerID := kernel.NewUUID()
	sh := suite.seedShipment(ownerID)
	caller := mustPrincipal(ownerID, principal.RoleExporter)

	query, err := queries.NewGetShipmentQuery(caller, sh.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(sh.ID().IsEqual(result.ID))
	suite.Equal(sh.TrackingNumber().String(), result.TrackingNumber)
	suite.True(ownerID.IsEqual(result.OwnerID))
	suite.Equal("created", result.Status)
	suite.Equal("Cape Citrus Co", result.ExporterName)
	suite.Equal("Hamburg Fruit GmbH", result.ImporterName)
	suite.Equal("Lemons", result.Product)
	suite.Equal("Eureka", result.Variety)
	suite.Equal(500, result.QuantityCartons)
	suite.Require().NotNil(result.WeightKg)
	suite.True(sh.Details().WeightKg.Equal(*result.WeightKg))
	suite.Equal("Germany", result.DestinationCountry)
	suite.Equal("Hamburg", result.DestinationPort)
	suite.Equal(shipment.DefaultPortOfLoading, result.PortOfLoading)
	suite.Equal("MSC Capella", result.VesselName)
	suite.Equal("MSCU1234567", result.ContainerNumber)
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_Admin_ReadsAnyShipment() {
	sh := suite.seedShipment(kernel.NewUUID())
	admin := mustPrincipal(kernel.NewUUID(), principal.RoleAdmin)

	query, err := queries.NewGetShipmentQuery(admin, sh.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(sh.ID().IsEqual(result.ID))
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_OtherExporter_Forbidden() {
	sh := suite.seedShipment(kernel.NewUUID())
	stranger := mustPrincipal(kernel.NewUUID(), principal.RoleExporter)

	query, err := queries.NewGetShipmentQuery(stranger, sh.ID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrAccessForbidden)
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_MissingShipment_NotFoundBeforeAccessCheck() {
	stranger := mustPrincipal(kernel.NewUUID(), principal.RoleExporter)

	query, err := queries.NewGetShipmentQuery(stranger, kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.NotErrorIs(err, errs.ErrAccessForbidden)
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetShipmentQuery{})

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, queries.ErrGetShipmentQueryIsNotConstructed)
}

func TestGetShipmentQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetShipmentQueryHandlerTestSuite))
}
