package commands_test

import (
	"context"

	"citrustrack/internal/core/application/usecases/commands"
	"citrustrack/internal/core/domain/model/document"
	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/shipment"
	"citrustrack/internal/core/domain/model/tracking"
	"citrustrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, sh *shipment.Shipment) error {
	args := m.Called(ctx, sh)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, sh *shipment.Shipment) error {
	args := m.Called(ctx, sh)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if sh, ok := args.Get(0).(*shipment.Shipment); ok {
		return sh, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShipmentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if sh, ok := args.Get(0).(*shipment.Shipment); ok {
		return sh, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShipmentRepository) GetByTrackingNumber(
	ctx context.Context,
	trackingNumber shipment.TrackingNumber,
) (*shipment.Shipment, error) {
	args := m.Called(ctx, trackingNumber)
	if sh, ok := args.Get(0).(*shipment.Shipment); ok {
		return sh, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockTrackingEventRepository struct{ mock.Mock }

func (m *MockTrackingEventRepository) Add(ctx context.Context, event *tracking.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockTrackingEventRepository) GetAllByShipmentID(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]*tracking.Event, error) {
	args := m.Called(ctx, shipmentID)
	if events, ok := args.Get(0).([]*tracking.Event); ok {
		return events, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDocumentRepository struct{ mock.Mock }

func (m *MockDocumentRepository) Add(ctx context.Context, doc *document.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepository) GetAllByShipmentID(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]*document.Document, error) {
	args := m.Called(ctx, shipmentID)
	if docs, ok := args.Get(0).([]*document.Document); ok {
		return docs, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockTrackingUoW struct{ mock.Mock }

func (m *MockTrackingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTrackingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTrackingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTrackingUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockTrackingUoW) TrackingEventRepository() ports.TrackingEventRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingEventRepository)
}

type MockTrackingUoWFactory struct{ mock.Mock }

func (m *MockTrackingUoWFactory) Create() commands.TrackingUoW {
	args := m.Called()
	return args.Get(0).(commands.TrackingUoW)
}

type MockDocumentUoW struct{ mock.Mock }

func (m *MockDocumentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDocumentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDocumentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDocumentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockDocumentUoW) DocumentRepository() ports.DocumentRepository {
	args := m.Called()
	return args.Get(0).(ports.DocumentRepository)
}

type MockDocumentUoWFactory struct{ mock.Mock }

func (m *MockDocumentUoWFactory) Create() commands.DocumentUoW {
	args := m.Called()
	return args.Get(0).(commands.DocumentUoW)
}
