package commands_test

import (
	"testing"

	"citrustrack/internal/core/application/usecases/commands"
	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/principal"
	"citrustrack/internal/core/domain/model/tracking"
	"citrustrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppendTrackingEventCommand_ValidInput(t *testing.T) {
	caller := exporterPrincipal(t)
	shipmentID := kernel.NewUUID()

	cmd, err := commands.NewAppendTrackingEventCommand(
		caller, shipmentID,
		tracking.EventTypeLocationUpdate,
		tracking.Attributes{Location: "Durban"},
	)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, shipmentID.IsEqual(cmd.ShipmentID()))
	assert.Equal(t, tracking.EventTypeLocationUpdate, cmd.EventType())
	assert.Equal(t, "Durban", cmd.Attributes().Location)
}

func TestNewAppendTrackingEventCommand_InvalidEventType(t *testing.T) {
	_, err := commands.NewAppendTrackingEventCommand(
		exporterPrincipal(t), kernel.NewUUID(),
		tracking.EventTypeUnknown,
		tracking.Attributes{Location: "Durban"},
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewAppendTrackingEventCommand_InvalidShipmentID(t *testing.T) {
	var zeroID kernel.UUID

	_, err := commands.NewAppendTrackingEventCommand(
		exporterPrincipal(t), zeroID,
		tracking.EventTypeLocationUpdate,
		tracking.Attributes{Location: "Durban"},
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewAppendTrackingEventCommand_UnconstructedCaller(t *testing.T) {
	var nobody principal.Principal

	_, err := commands.NewAppendTrackingEventCommand(
		nobody, kernel.NewUUID(),
		tracking.EventTypeLocationUpdate,
		tracking.Attributes{Location: "Durban"},
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, principal.ErrPrincipalIsNotConstructed)
}
