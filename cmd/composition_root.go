package cmd

import (
	"citrustrack/internal/adapters/out/postgres"
	"citrustrack/internal/core/application/usecases/commands"
	"citrustrack/internal/core/application/usecases/queries"
	"citrustrack/internal/core/domain/services"

	"gorm.io/gorm"
)

// CompositionRoot wires application use cases to their infrastructure
// dependencies. Command handlers get transactional unit of work factories;
// query handlers read the database directly.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	policy     services.AccessPolicy
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     services.NewAccessPolicy(),
	}
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateAppendTrackingEventCommandHandler() commands.AppendTrackingEventCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAppendTrackingEventCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateGenerateInvoiceCommandHandler() commands.GenerateInvoiceCommandHandler {
	var f commands.DocumentUoWFactory = FuncDocumentUoWFactory(func() commands.DocumentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGenerateInvoiceCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListTrackingEventsQueryHandler() queries.ListTrackingEventsQueryHandler {
	return queries.NewListTrackingEventsQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetCurrentStateQueryHandler() queries.GetCurrentStateQueryHandler {
	return queries.NewGetCurrentStateQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateListDocumentsQueryHandler() queries.ListDocumentsQueryHandler {
	return queries.NewListDocumentsQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateTrackShipmentQueryHandler() queries.TrackShipmentQueryHandler {
	return queries.NewTrackShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStaleShipmentsQueryHandler() queries.GetStaleShipmentsQueryHandler {
	return queries.NewGetStaleShipmentsQueryHandler(c.gormDB)
}

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW {
	return f()
}

type FuncDocumentUoWFactory func() commands.DocumentUoW

func (f FuncDocumentUoWFactory) Create() commands.DocumentUoW {
	return f()
}
